package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/hiagosil/sistemalevelup/internal/storage"
)

// Config holds the runtime settings, read from environment variables with
// safe defaults.
type Config struct {
	DBPath string
	Quiet  bool
}

func Load() (Config, error) {
	dbPath := strings.TrimSpace(os.Getenv("LEVELUP_DB"))
	if dbPath == "" {
		p, err := storage.ResolveDBPath()
		if err != nil {
			return Config{}, err
		}
		dbPath = p
	}

	quiet := false
	if v := strings.TrimSpace(os.Getenv("LEVELUP_QUIET")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			quiet = b
		}
	}

	return Config{
		DBPath: dbPath,
		Quiet:  quiet,
	}, nil
}
