package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort string `mapstructure:"APP_PORT"`
	Env     string `mapstructure:"ENV"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`

	// Admin panel access.
	AdminPasscode       string `mapstructure:"ADMIN_PASSCODE"`
	AdminSessionMinutes int    `mapstructure:"ADMIN_SESSION_MINUTES"`

	// Booking wizard session lifetime.
	WizardSessionMinutes int `mapstructure:"WIZARD_SESSION_MINUTES"`

	// Simulated calendar sync delay, in milliseconds.
	CalendarSyncDelayMs int `mapstructure:"CALENDAR_SYNC_DELAY_MS"`

	MaxRequestsPerMin int      `mapstructure:"MAX_REQUESTS_PER_MIN"`
	AllowedOrigins    []string `mapstructure:"ALLOWED_ORIGINS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("ADMIN_PASSCODE", "")
	viper.SetDefault("ADMIN_SESSION_MINUTES", 720)
	viper.SetDefault("WIZARD_SESSION_MINUTES", 30)
	viper.SetDefault("CALENDAR_SYNC_DELAY_MS", 1500)
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:5173"})

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// AdminSessionTTL returns the lifetime of an authenticated admin session.
func AdminSessionTTL() time.Duration {
	return time.Duration(AppConfig.AdminSessionMinutes) * time.Minute
}

// WizardSessionTTL returns how long an in-progress booking draft is kept.
func WizardSessionTTL() time.Duration {
	return time.Duration(AppConfig.WizardSessionMinutes) * time.Minute
}
