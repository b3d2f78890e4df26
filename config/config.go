package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisJobDB     int    `mapstructure:"REDIS_JOB_DB"`

	// Stripe secret key for invoice payments.
	StripeKey string `mapstructure:"STRIPE_KEY"`

	// Booking-creation session lifetime in minutes.
	SessionTTLMinutes int `mapstructure:"SESSION_TTL_MINUTES"`

	// Fallback garage opening hours (minutes from midnight) used when a
	// garage has no explicit business hours for a weekday.
	DefaultOpenMinute  int `mapstructure:"DEFAULT_OPEN_MINUTE"`
	DefaultCloseMinute int `mapstructure:"DEFAULT_CLOSE_MINUTE"`

	// VAT rate applied when issuing invoices, e.g. 0.20 for 20%.
	VATRate float64 `mapstructure:"VAT_RATE"`
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
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_JOB_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "garagehub")
	viper.SetDefault("STRIPE_KEY", "")
	viper.SetDefault("SESSION_TTL_MINUTES", 30)
	viper.SetDefault("DEFAULT_OPEN_MINUTE", 8*60)
	viper.SetDefault("DEFAULT_CLOSE_MINUTE", 18*60)
	viper.SetDefault("VAT_RATE", 0.20)

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
