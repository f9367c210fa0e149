package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// MessageIDPrefix prefixes the decimal code in message identifiers.
const MessageIDPrefix = "SCERR"

// ErrorCode identifies a platform or application error. It has no structure
// beyond its numeric value.
type ErrorCode uint32

// String returns the code in uppercase hexadecimal, e.g. "0x3E9".
func (c ErrorCode) String() string {
	return fmt.Sprintf("0x%X", uint32(c))
}

// MessageID returns the identifier under which the code's message is stored
// in message files, e.g. "SCERR1001".
func (c ErrorCode) MessageID() string {
	return MessageIDPrefix + strconv.FormatUint(uint64(c), 10)
}

// ParseErrorCode accepts "0x"-prefixed hexadecimal, "SCERR"-prefixed decimal
// and plain decimal notations.
func ParseErrorCode(s string) (ErrorCode, error) {
	s = strings.TrimSpace(s)
	base := 10
	digits := s
	switch {
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		base, digits = 16, s[2:]
	case len(s) > len(MessageIDPrefix) && strings.EqualFold(s[:len(MessageIDPrefix)], MessageIDPrefix):
		digits = s[len(MessageIDPrefix):]
	}
	v, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrInvalidCode, s, err)
	}
	return ErrorCode(v), nil
}
