package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort      string `mapstructure:"APP_PORT"`
	Env          string `mapstructure:"ENV"`
	LogLevel     string `mapstructure:"LOG_LEVEL"`
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Upstream GraphQL API serving the package catalog and booking history.
	GraphAPIURL string `mapstructure:"GRAPH_API_URL"`

	MaxRequestsPerMin int `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration (chatbot session context).
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisContextDB int    `mapstructure:"REDIS_CONTEXT_DB"`

	// Recommendation engine knobs.
	MaxRecommendations int  `mapstructure:"MAX_RECOMMENDATIONS"`
	WeightByRating     bool `mapstructure:"RECOMMEND_WEIGHT_BY_RATING"`
	UseBoosts          bool `mapstructure:"RECOMMEND_USE_BOOSTS"`
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
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "voyago")
	viper.SetDefault("GRAPH_API_URL", "http://localhost:4000/api")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CONTEXT_DB", 0)
	viper.SetDefault("MAX_RECOMMENDATIONS", 4)
	viper.SetDefault("RECOMMEND_WEIGHT_BY_RATING", false)
	viper.SetDefault("RECOMMEND_USE_BOOSTS", true)

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
