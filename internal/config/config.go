package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/yukikurage/store-management-api/internal/constants"
)

type Config struct {
	AppEnv   string
	Port     string
	GinMode  string
	LogLevel string

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// Load reads configuration from an optional .env file and the environment.
// Environment variables take precedence over the file.
func Load() *Config {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // the file is optional

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return &Config{
		AppEnv:   getEnv(v, "APP_ENV", "development"),
		Port:     getEnv(v, "PORT", "8080"),
		GinMode:  getEnv(v, "GIN_MODE", "debug"),
		LogLevel: getEnv(v, "LOG_LEVEL", "info"),

		DBDriver:   getEnv(v, "DB_DRIVER", "mysql"),
		DBHost:     getEnv(v, "DB_HOST", "localhost"),
		DBPort:     getEnv(v, "DB_PORT", "3306"),
		DBUser:     getEnv(v, "DB_USER", "storeuser"),
		DBPassword: getEnv(v, "DB_PASSWORD", "storepassword"),
		DBName:     getEnv(v, "DB_NAME", "store_management"),
		DBSSLMode:  getEnv(v, "DB_SSLMODE", "disable"),

		JWTSecret:       getEnv(v, "JWT_SECRET", "default-secret-key-change-me"),
		AccessTokenTTL:  getDuration(v, "ACCESS_TOKEN_TTL", constants.DefaultAccessTokenTTL),
		RefreshTokenTTL: getDuration(v, "REFRESH_TOKEN_TTL", constants.DefaultRefreshTokenTTL),
	}
}

func getEnv(v *viper.Viper, key, defaultValue string) string {
	value := v.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getDuration(v *viper.Viper, key string, defaultValue time.Duration) time.Duration {
	if !v.IsSet(key) {
		return defaultValue
	}
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}
