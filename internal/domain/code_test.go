package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCode_String(t *testing.T) {
	assert.Equal(t, "0x5", ErrorCode(5).String())
	assert.Equal(t, "0x3E9", ErrorCode(1001).String())
	assert.Equal(t, "0xFFFFFFFF", ErrorCode(0xFFFFFFFF).String())
}

func TestErrorCode_MessageID(t *testing.T) {
	assert.Equal(t, "SCERR1001", ErrorCode(1001).MessageID())
	assert.Equal(t, "SCERR0", ErrorCode(0).MessageID())
}

func TestParseErrorCode(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    ErrorCode
		wantErr bool
	}{
		{"decimal", "1001", 1001, false},
		{"hex lower prefix", "0x3e9", 1001, false},
		{"hex upper prefix", "0X3E9", 1001, false},
		{"message id", "SCERR4002", 4002, false},
		{"message id lower", "scerr7", 7, false},
		{"surrounding spaces", "  42 ", 42, false},
		{"max uint32", "0xFFFFFFFF", 0xFFFFFFFF, false},
		{"overflow", "0x100000000", 0, true},
		{"negative", "-1", 0, true},
		{"empty", "", 0, true},
		{"bare prefix", "0x", 0, true},
		{"garbage", "abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseErrorCode(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidCode))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeverity(t *testing.T) {
	s, err := ParseSeverity("warning")
	require.NoError(t, err)
	assert.Equal(t, SeverityWarning, s)
	assert.Equal(t, "Warning", s.String())
	assert.Equal(t, "Severity(9)", Severity(9).String())

	_, err = ParseSeverity("fatal")
	assert.ErrorIs(t, err, ErrUnknownSeverity)

	var u Severity
	require.NoError(t, u.UnmarshalText([]byte("Error")))
	assert.Equal(t, SeverityError, u)
}

func TestCodeOf(t *testing.T) {
	base := NewCodedError(1001, errors.New("disk full"))
	wrapped := fmt.Errorf("save: %w", base)

	code, ok := CodeOf(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrorCode(1001), code)
	assert.Equal(t, "SCERR1001: disk full", base.Error())

	_, ok = CodeOf(errors.New("plain"))
	assert.False(t, ok)
	_, ok = CodeOf(nil)
	assert.False(t, ok)
}
