// Package codegen emits source code for a catalog.
package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"io"
	"strings"
	"text/template"

	"scerr/internal/domain/entities"
)

// ErrIdentCollision is returned when two entry names yield the same Go
// identifier.
var ErrIdentCollision = errors.New("duplicate generated identifier")

var goTemplate = template.Must(template.New("go").Parse(`// Code generated by scerr gen go. DO NOT EDIT.

package {{.Package}}

// ErrorCode identifies an error defined in the catalog.
type ErrorCode uint32

const (
{{- range .Entries}}
	{{- range .Doc}}
	{{if .}}// {{.}}{{else}}//{{end}}
	{{- end}}
	{{.Ident}} ErrorCode = {{.Code}} // {{.Hex}}, {{.Severity}}
{{- end}}
)
`))

type goEntry struct {
	Ident    string
	Code     uint32
	Hex      string
	Severity string
	Doc      []string
}

// WriteGo writes a Go file declaring one constant per catalog entry.
func WriteGo(w io.Writer, pkg string, catalog *entities.Catalog) error {
	entries := catalog.Entries()
	data := struct {
		Package string
		Entries []goEntry
	}{Package: pkg}

	seen := make(map[string]string, len(entries))
	for _, e := range entries {
		ident := exportedIdent(e.Name)
		if prev, ok := seen[ident]; ok {
			return fmt.Errorf("%w: %q and %q both map to identifier %s", ErrIdentCollision, prev, e.Name, ident)
		}
		seen[ident] = e.Name

		code := e.CodeWithFacility()
		doc := []string{fmt.Sprintf("%s: %s", e.Name, e.Description)}
		for _, r := range e.Remarks {
			doc = append(doc, "", r)
		}
		data.Entries = append(data.Entries, goEntry{
			Ident:    ident,
			Code:     uint32(code),
			Hex:      code.String(),
			Severity: e.Severity.String(),
			Doc:      doc,
		})
	}

	var buf bytes.Buffer
	if err := goTemplate.Execute(&buf, data); err != nil {
		return fmt.Errorf("render go constants: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format go constants: %w", err)
	}
	_, err = w.Write(src)
	return err
}

// exportedIdent turns an entry name into an exported Go identifier.
func exportedIdent(name string) string {
	var sb strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			sb.WriteRune(r)
		}
	}
	s := sb.String()
	if s == "" || (s[0] >= '0' && s[0] <= '9') || s[0] == '_' {
		s = "E" + s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
