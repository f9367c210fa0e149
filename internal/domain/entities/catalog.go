package entities

import (
	"fmt"

	"scerr/internal/domain"
)

// Catalog is an ordered, read-only set of error code definitions.
type Catalog struct {
	entries []Entry
	byCode  map[domain.ErrorCode]int
}

// NewCatalog indexes entries by their published code. Two entries resolving
// to the same code are rejected.
func NewCatalog(entries []Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Entry, len(entries)),
		byCode:  make(map[domain.ErrorCode]int, len(entries)),
	}
	copy(c.entries, entries)
	for i, e := range c.entries {
		code := e.CodeWithFacility()
		if j, ok := c.byCode[code]; ok {
			return nil, fmt.Errorf("%w: %s (%s and %s)", domain.ErrDuplicateCode, code.MessageID(), c.entries[j].Name, e.Name)
		}
		c.byCode[code] = i
	}
	return c, nil
}

// Entries returns a copy of the catalog entries in definition order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len reports the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Lookup returns the entry published under code.
func (c *Catalog) Lookup(code domain.ErrorCode) (Entry, bool) {
	i, ok := c.byCode[code]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Find is Lookup returning domain.ErrEntryNotFound for unknown codes.
func (c *Catalog) Find(code domain.ErrorCode) (Entry, error) {
	e, ok := c.Lookup(code)
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", domain.ErrEntryNotFound, code)
	}
	return e, nil
}
