package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds the runtime configuration, loaded from environment variables
// with sensible defaults for local development.
type Config struct {
	AppPort     string
	DatabaseDSN string
	// AuthUsers maps basic-auth usernames to their plaintext passwords as
	// configured. They are bcrypt-hashed before any request is served.
	AuthUsers map[string]string
}

// Load reads configuration via Viper. AUTH_USERS is a comma-separated list of
// user:password pairs; malformed pairs are skipped.
func Load() Config {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=products port=5432 sslmode=disable")
	viper.SetDefault("AUTH_USERS", "user:password,admin:adminpass")
	viper.AutomaticEnv()

	return Config{
		AppPort:     viper.GetString("APP_PORT"),
		DatabaseDSN: viper.GetString("DATABASE_DSN"),
		AuthUsers:   parseUsers(viper.GetString("AUTH_USERS")),
	}
}

func parseUsers(raw string) map[string]string {
	users := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		username, password, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok || username == "" || password == "" {
			continue
		}
		users[username] = password
	}
	return users
}
