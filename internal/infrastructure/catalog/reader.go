// Package catalog reads error-code definition files into an
// entities.Catalog.
//
// Two layouts are understood: the TOML layout used by the embedded default
// catalog, and the legacy XML layout where each <facility> element holds one
// child element per code:
//
//	<errorcodes>
//	  <facility name="Generic" hex="1">
//	    <code name="ScErrUnspecified" hex="1" severity="Error">
//	      <message>An unspecified error occurred.</message>
//	      <remarks><p>First paragraph.</p></remarks>
//	    </code>
//	  </facility>
//	</errorcodes>
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"

	"scerr/internal/domain"
	"scerr/internal/domain/entities"
)

//go:embed errorcodes.toml
var defaultCatalog []byte

var log = logrus.WithField("subsys", "catalog")

// Default returns the embedded catalog.
func Default() (*entities.Catalog, error) {
	return ReadTOML(bytes.NewReader(defaultCatalog))
}

// Load reads the catalog at path, picking the layout from the extension.
// An empty path loads the embedded catalog.
func Load(path string) (*entities.Catalog, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	var c *entities.Catalog
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		c, err = ReadTOML(f)
	case ".xml":
		c, err = ReadXML(f)
	default:
		return nil, fmt.Errorf("%w: unsupported catalog extension %q", domain.ErrInvalidCatalog, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	log.WithFields(logrus.Fields{"path": path, "entries": c.Len()}).Info("catalog loaded")
	return c, nil
}

type tomlCatalog struct {
	Facilities []tomlFacility `toml:"facility"`
}

type tomlFacility struct {
	Name  string     `toml:"name"`
	Hex   string     `toml:"hex"`
	Codes []tomlCode `toml:"code"`
}

type tomlCode struct {
	Name     string   `toml:"name"`
	Hex      string   `toml:"hex"`
	Severity string   `toml:"severity"`
	Message  string   `toml:"message"`
	Remarks  []string `toml:"remarks"`
}

// ReadTOML reads the TOML catalog layout.
func ReadTOML(r io.Reader) (*entities.Catalog, error) {
	var doc tomlCatalog
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err)
	}

	b := builder{}
	for _, f := range doc.Facilities {
		facility, err := b.facility(f.Name, f.Hex)
		if err != nil {
			return nil, err
		}
		for _, c := range f.Codes {
			if err := b.add(facility, c.Name, c.Hex, c.Severity, c.Message, c.Remarks); err != nil {
				return nil, err
			}
		}
	}
	return entities.NewCatalog(b.entries)
}

type xmlCatalog struct {
	Facilities []xmlFacility `xml:"facility"`
}

type xmlFacility struct {
	Name  string    `xml:"name,attr"`
	Hex   string    `xml:"hex,attr"`
	Codes []xmlCode `xml:",any"`
}

type xmlCode struct {
	Name     string    `xml:"name,attr"`
	Hex      string    `xml:"hex,attr"`
	Severity string    `xml:"severity,attr"`
	Message  *xmlText  `xml:"message"`
	Remarks  xmlRemark `xml:"remarks"`
}

type xmlRemark struct {
	Paragraphs []xmlText `xml:",any"`
}

// xmlText collects the character data of an element and all of its
// descendants.
type xmlText string

func (t *xmlText) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var sb strings.Builder
	for depth := 1; depth > 0; {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch tok := tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			sb.Write(tok)
		}
	}
	*t = xmlText(sb.String())
	return nil
}

// ReadXML reads the legacy XML catalog layout.
func ReadXML(r io.Reader) (*entities.Catalog, error) {
	var doc xmlCatalog
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err)
	}

	b := builder{}
	for _, f := range doc.Facilities {
		facility, err := b.facility(f.Name, f.Hex)
		if err != nil {
			return nil, err
		}
		for _, c := range f.Codes {
			if c.Message == nil {
				return nil, fmt.Errorf("%w: code %q has no message", domain.ErrInvalidCatalog, c.Name)
			}
			remarks := make([]string, 0, len(c.Remarks.Paragraphs))
			for _, p := range c.Remarks.Paragraphs {
				remarks = append(remarks, string(p))
			}
			if err := b.add(facility, c.Name, c.Hex, c.Severity, string(*c.Message), remarks); err != nil {
				return nil, err
			}
		}
	}
	return entities.NewCatalog(b.entries)
}

type builder struct {
	entries []entities.Entry
}

func (b *builder) facility(name, hex string) (entities.Facility, error) {
	code, err := strconv.ParseUint(strings.TrimSpace(hex), 16, 32)
	if err != nil {
		return entities.Facility{}, fmt.Errorf("%w: facility %q: bad hex %q", domain.ErrInvalidCatalog, name, hex)
	}
	return entities.NewFacility(name, uint32(code))
}

func (b *builder) add(f entities.Facility, name, hex, severity, message string, remarks []string) error {
	code, err := strconv.ParseUint(strings.TrimSpace(hex), 16, 16)
	if err != nil {
		return fmt.Errorf("%w: code %q: bad hex %q", domain.ErrInvalidCatalog, name, hex)
	}
	sev, err := domain.ParseSeverity(severity)
	if err != nil {
		return fmt.Errorf("code %q: %w", name, err)
	}
	for i := range remarks {
		remarks[i] = collapseSpace(remarks[i])
	}
	e, err := entities.NewEntry(f, name, uint16(code), sev, collapseSpace(message), remarks)
	if err != nil {
		return fmt.Errorf("code %q: %w", name, err)
	}
	b.entries = append(b.entries, e)
	return nil
}

// collapseSpace folds every whitespace run into a single space and trims
// the ends.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
