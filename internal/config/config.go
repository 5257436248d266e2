package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/memorist/memorist/internal/database"
)

type Config struct {
	Decks    DecksConfig     `mapstructure:"decks"`
	Database database.Config `mapstructure:"database"`
	Session  SessionConfig   `mapstructure:"session"`
}

type DecksConfig struct {
	Directory string `mapstructure:"directory" validate:"required"`
}

// SessionConfig bounds study session composition.
type SessionConfig struct {
	MaxCards        int  `mapstructure:"max_cards" validate:"min=1"`
	NewCardLimit    int  `mapstructure:"new_card_limit" validate:"min=0"`
	ReviewCardLimit int  `mapstructure:"review_card_limit" validate:"min=0"`
	IncludeNewCards bool `mapstructure:"include_new_cards"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/memorist")
	}

	v.SetDefault("decks.directory", "decks")
	v.SetDefault("database.driver", database.DriverSQLite)
	v.SetDefault("database.path", filepath.Join("data", "memorist.db"))
	v.SetDefault("session.max_cards", 20)
	v.SetDefault("session.new_card_limit", 10)
	v.SetDefault("session.review_card_limit", 15)
	v.SetDefault("session.include_new_cards", true)

	// Database credentials come from the environment only, never the file.
	if err := v.BindEnv("database.username", "MEMORIST_DB_USERNAME"); err != nil {
		return nil, fmt.Errorf("failed to bind MEMORIST_DB_USERNAME environment variable: %w", err)
	}
	if err := v.BindEnv("database.password", "MEMORIST_DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind MEMORIST_DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
