package negotiation

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the site-level negotiation configuration. Fields can be
// populated from environment variables via LoadConfig or set directly.
type Config struct {
	// DefaultLanguage is the langcode of the configured default language.
	DefaultLanguage string `env:"LANG_DEFAULT" envDefault:"en"`

	// QueryParam names the request parameter the session method reads.
	QueryParam string `env:"LANG_QUERY_PARAM" envDefault:"language"`

	// CookieName names the cookie the cookie method reads.
	CookieName string `env:"LANG_COOKIE_NAME" envDefault:"lang"`

	// URLSource selects how the URL method reads the language: "prefix"
	// or "domain".
	URLSource string `env:"LANG_URL_SOURCE" envDefault:"prefix"`

	// Prefixes maps langcodes to path prefixes, e.g. "en:,fr:fr,de:de".
	// The empty prefix is legal for exactly one language, normally the
	// default.
	Prefixes map[string]string `env:"LANG_PREFIXES" envSeparator:","`

	// Domains maps langcodes to hosts, e.g. "en:example.com,fr:fr.example.com".
	Domains map[string]string `env:"LANG_DOMAINS" envSeparator:","`
}

var loadEnvOnce sync.Once

// LoadConfig loads the negotiation configuration from environment
// variables, reading a .env file first when one exists.
func LoadConfig() (Config, error) {
	loadEnvOnce.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}
	return cfg, nil
}

// urlSource maps the configured URL source name onto URLSource, defaulting
// to prefix negotiation.
func (c Config) urlSource() URLSource {
	if c.URLSource == "domain" {
		return SourceDomain
	}
	return SourcePrefix
}
