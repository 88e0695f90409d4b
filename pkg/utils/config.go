package utils

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Hash       HashConfig
	Validation ValidationConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type HashConfig struct {
	// Scheme selects the password digest: "sha256" (compatible with
	// digests already stored by the desktop client) or "bcrypt".
	Scheme string
}

type ValidationConfig struct {
	// CheckDebounce is how long the live checker waits after the last
	// keystroke before issuing a uniqueness query.
	CheckDebounce time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("HASH_SCHEME", HashSchemeSHA256)
	viper.SetDefault("CHECK_DEBOUNCE_MS", 300)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Hash: HashConfig{
			Scheme: viper.GetString("HASH_SCHEME"),
		},
		Validation: ValidationConfig{
			CheckDebounce: time.Duration(viper.GetInt("CHECK_DEBOUNCE_MS")) * time.Millisecond,
		},
	}

	return config, nil
}
