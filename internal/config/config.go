package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

const (
	defaultLocale   = "en"
	defaultCapacity = 512
)

type Config struct {
	CatalogPath    string
	Locale         string
	MessagesDir    string
	Capacity       int
	DatabaseURL    string
	MigrationsPath string

	// Discord, required by the bot only.
	Token   string
	GuildID string
}

// Load charge la configuration depuis les variables d'environnement et la valide.
func Load() (*Config, error) {
	// .env est optionnel lorsque les variables sont fournies par l'environnement (Docker, CI, etc.).
	_ = godotenv.Load()

	cfg := &Config{
		CatalogPath:    os.Getenv("SCERR_CATALOG"),
		Locale:         os.Getenv("SCERR_LOCALE"),
		MessagesDir:    os.Getenv("SCERR_MESSAGES_DIR"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MigrationsPath: os.Getenv("SCERR_MIGRATIONS"),
		Token:          os.Getenv("TOKEN"),
		GuildID:        os.Getenv("GUILD_ID"),
	}

	if raw := strings.TrimSpace(os.Getenv("SCERR_CAPACITY")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("config: SCERR_CAPACITY invalide (%q): %w", raw, err)
		}
		cfg.Capacity = n
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadBot is Load plus the Discord credentials check.
func LoadBot() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, fmt.Errorf("config: TOKEN est requis et ne peut pas être vide")
	}
	for _, r := range cfg.GuildID {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("config: GUILD_ID doit être un ID de serveur Discord (chiffres uniquement)")
		}
	}
	return cfg, nil
}

// validate applique les valeurs par défaut et les règles sur la configuration chargée.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Locale) == "" {
		c.Locale = defaultLocale
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("config: SCERR_LOCALE invalide (%q): %w", c.Locale, err)
	}

	if c.Capacity == 0 {
		c.Capacity = defaultCapacity
	}
	if c.Capacity < 1 {
		return fmt.Errorf("config: SCERR_CAPACITY doit être supérieur ou égal à 1 (%d)", c.Capacity)
	}

	// Vide: les migrations embarquées dans le binaire sont utilisées.
	c.MigrationsPath = strings.TrimSpace(c.MigrationsPath)

	if strings.TrimSpace(c.DatabaseURL) == "" {
		// La base de données est optionnelle: sans elle, aucune surcharge de message.
		return nil
	}
	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: DATABASE_URL invalide (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: DATABASE_URL invalide (%q): scheme ou host manquant", c.DatabaseURL)
	}

	return nil
}
