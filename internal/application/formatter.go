package application

import (
	"fmt"

	"scerr/internal/domain"
	"scerr/internal/ports/input"
	"scerr/internal/ports/output"
	"scerr/pkg/wide"
)

const (
	// fallbackThreshold is the smallest writable length (capacity minus the
	// terminator) for which the generic message is written. It is a legacy
	// constant kept bit-for-bit: it is not the fallback's actual length, so
	// smaller buffers get an empty string even when the fallback would fit.
	fallbackThreshold = 23

	fallbackFormat = "Error code=0x%X."

	// DefaultCapacity is the buffer size front-ends format into.
	DefaultCapacity = 512
)

var _ input.FormatUseCase = (*Formatter)(nil)

// Formatter renders error codes using an injected message table, falling
// back to a generic message. It never fails: every path leaves a terminated
// (possibly empty) string in the buffer. A Formatter holds no mutable state
// and may be shared between goroutines given distinct buffers.
type Formatter struct {
	table output.MessageTable
}

// NewFormatter creates a Formatter. A nil table resolves nothing.
func NewFormatter(table output.MessageTable) *Formatter {
	return &Formatter{table: table}
}

// Format writes the message for code into buf[:capacity] followed by a NUL
// and returns the number of code units written before the NUL.
//
// capacity counts the terminator. A capacity below 1 writes nothing and
// returns 0; a capacity above len(buf) is clamped to len(buf).
func (f *Formatter) Format(code domain.ErrorCode, buf []uint16, capacity int) int {
	if capacity > len(buf) {
		capacity = len(buf)
	}
	if capacity < 1 {
		return 0
	}

	avail := capacity - 1
	n := 0
	if text, ok := f.lookup(code, avail); ok {
		n = wide.Copy(buf[:avail], text)
	} else if avail >= fallbackThreshold {
		n = wide.Copy(buf[:avail], fmt.Sprintf(fallbackFormat, uint32(code)))
	}

	buf[n] = 0
	return n
}

// Message formats code into a fresh buffer of the given capacity and returns
// the result as a string.
func (f *Formatter) Message(code domain.ErrorCode, capacity int) string {
	if capacity < 1 {
		return ""
	}
	buf := make([]uint16, capacity)
	n := f.Format(code, buf, capacity)
	return wide.String(buf[:n])
}

// ErrorMessage formats the code carried by err. Errors without a code yield
// their own text, nil yields "".
func (f *Formatter) ErrorMessage(err error, capacity int) string {
	if err == nil {
		return ""
	}
	if code, ok := domain.CodeOf(err); ok {
		return f.Message(code, capacity)
	}
	return err.Error()
}

// lookup treats an empty table, a text that does not fit and a panicking
// table alike: as unresolved.
func (f *Formatter) lookup(code domain.ErrorCode, avail int) (text string, ok bool) {
	if f.table == nil || avail == 0 {
		return "", false
	}
	defer func() {
		if recover() != nil {
			text, ok = "", false
		}
	}()

	text, ok = f.table.Lookup(code, avail)
	if !ok || wide.Len(text)+1 > avail {
		return "", false
	}
	return text, true
}
