package discord

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scerr/internal/domain"
	"scerr/internal/domain/entities"
	"scerr/internal/ports/input"
)

func TestBuildErrorCodeEmbed_Unknown(t *testing.T) {
	embed := BuildErrorCodeEmbed(input.Description{Code: 0x42, Message: "Error code=0x42."})

	assert.Equal(t, unknownTitle, embed.Title)
	assert.Equal(t, "Error code=0x42.", embed.Description)
	assert.Equal(t, embedColor, embed.Color)
	assert.Equal(t, "SCERR66 • 66 • 0x42", embed.Footer.Text)
	assert.Empty(t, embed.Fields)
}

func TestBuildErrorCodeEmbed_Known(t *testing.T) {
	entry := entities.Entry{
		Facility: entities.Facility{Name: "Database", Code: 4},
		Name:     "ScErrTransactionConflict",
		Code:     2,
		Severity: domain.SeverityWarning,
		Remarks:  []string{"Restart the transaction.", strings.Repeat("r", 2000)},
	}
	embed := BuildErrorCodeEmbed(input.Description{Code: 4002, Message: "Conflict.", Entry: &entry})

	assert.Equal(t, "ScErrTransactionConflict", embed.Title)
	assert.Equal(t, 0xFEE75C, embed.Color)
	require.Len(t, embed.Fields, 3)
	assert.Equal(t, "Warning", embed.Fields[0].Value)
	assert.Equal(t, "Database (0x4)", embed.Fields[1].Value)
	assert.True(t, strings.HasPrefix(embed.Fields[2].Value, "Restart the transaction."))
	assert.Equal(t, maxRemarks, utf8.RuneCountInString(embed.Fields[2].Value))
}

func TestBuildErrorCodeEmbed_TruncatesRemarksOnRuneBoundary(t *testing.T) {
	entry := entities.Entry{
		Name:     "ScErrLongRemarks",
		Severity: domain.SeverityError,
		Remarks:  []string{strings.Repeat("é", 600), strings.Repeat("é", 600)},
	}
	embed := BuildErrorCodeEmbed(input.Description{Code: 1, Entry: &entry})

	remarks := embed.Fields[len(embed.Fields)-1].Value
	assert.True(t, utf8.ValidString(remarks))
	assert.Equal(t, maxRemarks, utf8.RuneCountInString(remarks))
	assert.True(t, strings.HasSuffix(remarks, "é…"))
}
