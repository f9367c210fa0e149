package domain

import (
	"fmt"
	"strings"
)

// Severity of an error code.
type Severity uint8

const (
	SeveritySuccess       Severity = 0x0
	SeverityInformational Severity = 0x1
	SeverityWarning       Severity = 0x2
	SeverityError         Severity = 0x3
)

var severityNames = [...]string{"Success", "Informational", "Warning", "Error"}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return fmt.Sprintf("Severity(%d)", uint8(s))
}

// ParseSeverity parses a severity name, ignoring case.
func ParseSeverity(name string) (Severity, error) {
	name = strings.TrimSpace(name)
	for i, n := range severityNames {
		if strings.EqualFold(n, name) {
			return Severity(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSeverity, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(b []byte) error {
	v, err := ParseSeverity(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
