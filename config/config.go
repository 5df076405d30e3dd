package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr       string `mapstructure:"REDIS_ADDR"`
	RedisPassword   string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB    int    `mapstructure:"REDIS_CACHE_DB"`
	RedisReminderDB int    `mapstructure:"REDIS_REMINDER_DB"`

	// Scheduling configuration.
	DefaultWindowDays   int `mapstructure:"DEFAULT_WINDOW_DAYS"`   // availability window when no date is pinned
	LeadTimeMinutes     int `mapstructure:"LEAD_TIME_MINUTES"`     // minimum notice before a slot today can be booked
	CollaboratorTimeout int `mapstructure:"COLLABORATOR_TIMEOUT"`  // seconds, per doctor/appointment store call
	ListingCacheTTL     int `mapstructure:"LISTING_CACHE_TTL"`     // seconds, cached appointment listings
	ReminderLeadMinutes int `mapstructure:"REMINDER_LEAD_MINUTES"` // how long before a slot the reminder fires
	ReminderConcurrency int `mapstructure:"REMINDER_CONCURRENCY"`  // asynq worker concurrency
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
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_REMINDER_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DEFAULT_WINDOW_DAYS", 14)
	viper.SetDefault("LEAD_TIME_MINUTES", 30)
	viper.SetDefault("COLLABORATOR_TIMEOUT", 5)
	viper.SetDefault("LISTING_CACHE_TTL", 300)
	viper.SetDefault("REMINDER_LEAD_MINUTES", 60)
	viper.SetDefault("REMINDER_CONCURRENCY", 10)

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
