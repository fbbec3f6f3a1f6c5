package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultDatabasePath is used when TIPS_DB_PATH is not set.
const DefaultDatabasePath = "tip_data.db"

type Config struct {
	DatabasePath string
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load()
	path, ok := os.LookupEnv("TIPS_DB_PATH")
	if !ok {
		return &Config{DatabasePath: DefaultDatabasePath}, nil
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, ErrNoDatabasePath{}
	}
	return &Config{DatabasePath: path}, nil
}

type ErrNoDatabasePath struct{}

func (e ErrNoDatabasePath) Error() string {
	return "TIPS_DB_PATH is set but empty"
}
