package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	SQLite   *SQLiteConfig   `mapstructure:"sqlite"`
	Catalog  []CatalogEntry  `mapstructure:"catalog"`
	Venue    *VenueConfig    `mapstructure:"venue"`
}

type APIConfig struct {
	BaseURL            string        `mapstructure:"base_url"`
	Environment        string        `mapstructure:"environment"`
	Port               string        `mapstructure:"port"`
	AllowedCORSDomains []string      `mapstructure:"allowed_cors_domains"`
	SessionSigningKey  string        `mapstructure:"session_signing_key"`
	SessionTTL         time.Duration `mapstructure:"session_ttl"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
	SSLMode  string `mapstructure:"sslmode"`
}

func (c *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DB, c.SSLMode,
	)
}

type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}

// CatalogEntry seeds one ticket category and its total inventory.
type CatalogEntry struct {
	Name       string `mapstructure:"name"`
	UnitPrice  int    `mapstructure:"unit_price"`
	TotalCount int    `mapstructure:"total_count"`
}

type VenueConfig struct {
	Title       string             `mapstructure:"title"`
	Grandstands []GrandstandConfig `mapstructure:"grandstands"`
}

type GrandstandConfig struct {
	Name        string `mapstructure:"name"`
	Category    string `mapstructure:"category"`
	Description string `mapstructure:"description"`
}

func Load(path string) (*AppConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	conf := &AppConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	if err := conf.validate(); err != nil {
		return nil, err
	}

	// Catalog and prices are fixed once the store is seeded, so a reload is only reported.
	v.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Info("config file changed, restart to apply",
			zap.String("file", e.Name),
			zap.String("op", e.Op.String()),
		)
	})
	v.WatchConfig()

	return conf, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.environment", "development")
	v.SetDefault("api.port", "8080")
	v.SetDefault("api.base_url", "localhost:8080")
	v.SetDefault("api.session_ttl", 2*time.Hour)
	v.SetDefault("gin.mode", "debug")
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", "5432")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("sqlite.path", "ticket-desk.db")
	v.SetDefault("venue.title", "Choose the proper grandstand!")
}

// ValidateAPI checks the settings only the HTTP server needs.
func (c *AppConfig) ValidateAPI() error {
	if c.API == nil || c.API.SessionSigningKey == "" {
		return fmt.Errorf("api.session_signing_key is required")
	}
	if c.API.SessionTTL <= 0 {
		return fmt.Errorf("api.session_ttl must be positive")
	}

	return nil
}

func (c *AppConfig) validate() error {
	if len(c.Catalog) == 0 {
		return fmt.Errorf("catalog must contain at least one category")
	}

	seen := make(map[string]bool, len(c.Catalog))
	for _, entry := range c.Catalog {
		if entry.Name == "" {
			return fmt.Errorf("catalog entry without a name")
		}
		if seen[entry.Name] {
			return fmt.Errorf("catalog category %q is declared twice", entry.Name)
		}
		if entry.UnitPrice <= 0 || entry.TotalCount < 0 {
			return fmt.Errorf("catalog category %q has an invalid price or count", entry.Name)
		}
		seen[entry.Name] = true
	}

	if c.Venue != nil {
		for _, g := range c.Venue.Grandstands {
			if !seen[g.Category] {
				return fmt.Errorf("grandstand %q refers to unknown category %q", g.Name, g.Category)
			}
		}
	}

	return nil
}
