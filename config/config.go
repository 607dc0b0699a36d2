package config

import (
	"log"
	"os"
	"strconv"

	"github.com/Hoff08/barbeariateste/pkg/constant"
)

type ProviderConfig struct {
	Enabled  bool
	ClientID string
}

type Config struct {
	Env                string
	Port               string
	DBURL              string
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessExpiryMin    int
	RefreshExpiryMin   int
	SweepIntervalMin   int
	Google             ProviderConfig
	Apple              ProviderConfig
}

func Load() *Config {
	return &Config{
		Env:                getEnv("ENV", "development"),
		Port:               getEnv("PORT", "3000"),
		DBURL:              mustGetEnv("DB_URL"),
		AccessTokenSecret:  mustGetEnv("ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret: mustGetEnv("REFRESH_TOKEN_SECRET"),
		AccessExpiryMin:    getEnvAsInt("ACCESS_TOKEN_EXPIRY", constant.DefaultAccessExpiryMin),
		RefreshExpiryMin:   getEnvAsInt("REFRESH_TOKEN_EXPIRY", constant.DefaultRefreshExpiryMin),
		SweepIntervalMin:   getEnvAsInt("SESSION_SWEEP_INTERVAL", constant.DefaultSweepIntervalMin),
		Google: ProviderConfig{
			Enabled:  getEnvAsBool("GOOGLE_AUTH_ENABLED", false),
			ClientID: getEnv("GOOGLE_CLIENT_ID", ""),
		},
		Apple: ProviderConfig{
			Enabled:  getEnvAsBool("APPLE_AUTH_ENABLED", false),
			ClientID: getEnv("APPLE_CLIENT_ID", ""),
		},
	}
}

// IsDevelopment reports whether the process runs in development mode.
// Synthetic provider identities are only ever wired up in this mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}

func getEnvAsBool(key string, defaultVal bool) bool {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %t", key, defaultVal)
		return defaultVal
	}
	return val
}
