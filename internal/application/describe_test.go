package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scerr/internal/domain"
	"scerr/internal/domain/entities"
	"scerr/internal/ports/output"
)

type fakeTables map[string]fakeTable

func (f fakeTables) Table(locale string) output.MessageTable {
	if t, ok := f[locale]; ok {
		return t
	}
	return f["en"]
}

func TestDescribe(t *testing.T) {
	entry, err := entities.NewEntry(entities.Facility{Name: "Generic", Code: 1}, "ScErrCancelled", 1, domain.SeverityWarning, "Cancelled.", nil)
	require.NoError(t, err)
	catalog, err := entities.NewCatalog([]entities.Entry{entry})
	require.NoError(t, err)

	tables := fakeTables{
		"en": {knownCode: "Cancelled."},
		"fr": {knownCode: "Annulé."},
	}
	svc := NewDescribeService(catalog, tables, 0)

	d := svc.Describe("fr", knownCode)
	assert.Equal(t, "Annulé.", d.Message)
	require.NotNil(t, d.Entry)
	assert.Equal(t, "ScErrCancelled", d.Entry.Name)

	d = svc.Describe("", knownCode)
	assert.Equal(t, "Cancelled.", d.Message)

	d = svc.Describe("en", 0x42)
	assert.Equal(t, "Error code=0x42.", d.Message)
	assert.Nil(t, d.Entry)
}

func TestDescribe_WithoutTables(t *testing.T) {
	svc := NewDescribeService(nil, nil, 16)
	d := svc.Describe("en", knownCode)
	assert.Equal(t, "", d.Message)
	assert.Nil(t, d.Entry)
}
