// Package config resolves server settings from defaults, a .env file, the
// environment and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"
)

// Config holds the server settings.
type Config struct {
	DBPath        string
	Addr          string
	UploadDir     string
	LogPath       string
	AdminUser     string
	AdminPassword string // used once, when the admin account is created
	RedisAddr     string // match notifications go to the log when empty
	RedisPassword string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DBPath:    "lostfound.sqlite3",
		Addr:      ":8080",
		UploadDir: "uploads",
		AdminUser: "admin",
	}
}

// Load reads envFile into the process environment, without overriding
// variables that are already set, and returns the defaults overlaid with the
// environment. A missing envFile is not an error.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}
	return FromEnv(os.Getenv), nil
}

// FromEnv returns the defaults overlaid with non-empty values from getenv.
func FromEnv(getenv func(string) string) Config {
	c := Default()

	set := func(dst *string, keys ...string) {
		for _, k := range keys {
			if v := getenv(k); v != "" {
				*dst = v
				return
			}
		}
	}
	set(&c.DBPath, "LOSTFOUND_DB")
	set(&c.UploadDir, "LOSTFOUND_UPLOAD_DIR")
	set(&c.LogPath, "LOSTFOUND_LOG")
	set(&c.AdminUser, "ADMIN_USERNAME")
	set(&c.AdminPassword, "ADMIN_PASSWORD")
	set(&c.RedisAddr, "REDIS_ADDR")
	set(&c.RedisPassword, "REDIS_PASSWORD")

	set(&c.Addr, "LOSTFOUND_ADDR")
	if getenv("LOSTFOUND_ADDR") == "" {
		if port := getenv("PORT"); port != "" {
			c.Addr = ":" + port
		}
	}

	return c
}

// BindFlags registers command-line flags on fs, defaulting to the current
// values of c so that flags take precedence over the environment.
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.StringVarP(&c.DBPath, "db", "d", c.DBPath, "SQLite database path")
	fs.StringVarP(&c.Addr, "addr", "a", c.Addr, "listen address")
	fs.StringVarP(&c.AdminUser, "user", "u", c.AdminUser, "admin username on first run")
	fs.StringVarP(&c.LogPath, "log", "l", c.LogPath, "log file path (default: stdout/stderr only)")
	fs.StringVar(&c.UploadDir, "uploads", c.UploadDir, "directory for uploaded photos")
	fs.StringVar(&c.RedisAddr, "redis", c.RedisAddr, "Redis address for match notifications")
}
