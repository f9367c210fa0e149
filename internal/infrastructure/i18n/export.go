package i18n

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"

	"scerr/internal/domain/entities"
)

type messageRecord struct {
	Description string `toml:"description"`
	Other       string `toml:"other"`
}

// WriteMessageFile writes the catalog as a go-i18n TOML message file, one
// table per code in catalog order. Translators edit the "other" values of a
// copy named active.<lang>.toml.
func WriteMessageFile(w io.Writer, catalog *entities.Catalog) error {
	for i, e := range catalog.Entries() {
		b, err := toml.Marshal(map[string]messageRecord{
			e.CodeWithFacility().MessageID(): {
				Description: e.ConstantName(),
				Other:       e.Description,
			},
		})
		if err != nil {
			return fmt.Errorf("marshal %s: %w", e.Name, err)
		}
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := w.Write(b); err != nil {
			return err
		}
	}
	return nil
}
