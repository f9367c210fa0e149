package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	"scerr/internal/domain"
	"scerr/internal/domain/entities"
	"scerr/internal/ports/output"
	"scerr/pkg/wide"
)

//go:embed active.*.toml
var localeFS embed.FS

var log = logrus.WithField("subsys", "i18n")

// Ensure the go-i18n adapters implement the output ports.
var (
	_ output.MessageTables = (*Tables)(nil)
	_ output.MessageTable  = (*Table)(nil)
)

// Tables is the message table resource: catalog descriptions in the default
// locale, overlaid by translated message files and stored overrides. It is
// populated once at startup and read concurrently afterwards.
type Tables struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
}

// NewTables builds Tables for the given default locale (e.g. "en"), seeded
// with the catalog descriptions and the embedded active.*.toml files.
func NewTables(defaultLocale string, catalog *entities.Catalog) (*Tables, error) {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		log.WithError(err).WithField("locale", defaultLocale).Warn("invalid default locale, using English")
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	t := &Tables{
		bundle:          bundle,
		defaultLanguage: tag,
	}
	if catalog != nil {
		if err := t.addCatalog(catalog); err != nil {
			return nil, err
		}
	}

	files, err := fs.Glob(localeFS, "active.*.toml")
	if err != nil {
		return nil, err
	}
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			log.WithError(err).WithField("file", file).Warn("failed to load embedded message file")
		}
	}
	return t, nil
}

func (t *Tables) addCatalog(catalog *entities.Catalog) error {
	entries := catalog.Entries()
	msgs := make([]*i18n.Message, 0, len(entries))
	for _, e := range entries {
		msgs = append(msgs, &i18n.Message{
			ID:          e.CodeWithFacility().MessageID(),
			Description: e.ConstantName(),
			Other:       e.Description,
		})
	}
	if err := t.bundle.AddMessages(t.defaultLanguage, msgs...); err != nil {
		return fmt.Errorf("add catalog messages: %w", err)
	}
	return nil
}

// LoadDir loads every active.<lang>.toml file found in dir.
func (t *Tables) LoadDir(dir string) error {
	files, err := filepath.Glob(filepath.Join(dir, "active.*.toml"))
	if err != nil {
		return err
	}
	for _, file := range files {
		if _, err := t.bundle.LoadMessageFile(file); err != nil {
			return fmt.Errorf("load message file %s: %w", file, err)
		}
		log.WithField("file", file).Info("message file loaded")
	}
	return nil
}

// AddOverrides replaces message texts per locale, e.g. with rows read from
// the database.
func (t *Tables) AddOverrides(msgs []entities.LocalizedMessage) error {
	for _, m := range msgs {
		tag, err := language.Parse(m.Locale)
		if err != nil {
			return fmt.Errorf("%w %q for %s: %v", domain.ErrUnsupportedLanguage, m.Locale, m.Code.MessageID(), err)
		}
		if err := t.bundle.AddMessages(tag, &i18n.Message{ID: m.Code.MessageID(), Other: m.Text}); err != nil {
			return fmt.Errorf("add override %s/%s: %w", m.Locale, m.Code.MessageID(), err)
		}
	}
	if len(msgs) > 0 {
		log.WithField("count", len(msgs)).Info("message overrides applied")
	}
	return nil
}

// Languages lists the locales that have at least one message.
func (t *Tables) Languages() []language.Tag {
	return t.bundle.LanguageTags()
}

// Table returns a MessageTable preferring locale, then the default locale.
func (t *Tables) Table(locale string) output.MessageTable {
	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())

	return &Table{localizer: i18n.NewLocalizer(t.bundle, languages...)}
}

// Table resolves error codes for one locale preference list.
type Table struct {
	localizer *i18n.Localizer
}

// Lookup returns the localized text for code if it exists and, counted in
// UTF-16 code units, fits in maxChars together with a terminator.
func (t *Table) Lookup(code domain.ErrorCode, maxChars int) (string, bool) {
	if maxChars <= 0 {
		return "", false
	}
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{MessageID: code.MessageID()})
	if err != nil {
		// Missing in the preferred locale: go-i18n still hands back the
		// default-locale text alongside the error.
		var notFound *i18n.MessageNotFoundErr
		if !errors.As(err, &notFound) {
			return "", false
		}
	}
	if msg == "" || wide.Len(msg)+1 > maxChars {
		return "", false
	}
	return msg, true
}
