package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Supplier feed
	FeedURL        string
	FeedHeaderRows int

	// Direct-fulfillment marketplace
	DirectBaseURL  string
	DirectClientID string
	DirectAPIKey   string

	// Dropship marketplace
	DropshipBaseURL     string
	DropshipToken       string
	DropshipCampaignID  string
	DropshipWarehouseID string

	// Run reporting (optional)
	ReportDatabaseURL string

	// Kafka (optional)
	KafkaBrokers string
	KafkaTopic   string

	// Environment
	Env      string
	LogLevel string
}

func Load() (*Config, error) {
	// Load .env file
	godotenv.Load()

	cfg := &Config{
		FeedURL:             getEnv("FEED_URL", ""),
		FeedHeaderRows:      getEnvAsInt("FEED_HEADER_ROWS", 17),
		DirectBaseURL:       getEnv("DIRECT_BASE_URL", ""),
		DirectClientID:      getEnv("DIRECT_CLIENT_ID", ""),
		DirectAPIKey:        getEnv("DIRECT_API_KEY", ""),
		DropshipBaseURL:     getEnv("DROPSHIP_BASE_URL", ""),
		DropshipToken:       getEnv("DROPSHIP_TOKEN", ""),
		DropshipCampaignID:  getEnv("DROPSHIP_CAMPAIGN_ID", ""),
		DropshipWarehouseID: getEnv("DROPSHIP_WAREHOUSE_ID", ""),
		ReportDatabaseURL:   getEnv("REPORT_DATABASE_URL", ""),
		KafkaBrokers:        getEnv("KAFKA_BROKERS", ""),
		KafkaTopic:          getEnv("KAFKA_TOPIC", "sync-events"),
		Env:                 getEnv("ENV", "development"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
	}

	for key, value := range map[string]string{
		"FEED_URL":              cfg.FeedURL,
		"DIRECT_BASE_URL":       cfg.DirectBaseURL,
		"DIRECT_CLIENT_ID":      cfg.DirectClientID,
		"DIRECT_API_KEY":        cfg.DirectAPIKey,
		"DROPSHIP_BASE_URL":     cfg.DropshipBaseURL,
		"DROPSHIP_TOKEN":        cfg.DropshipToken,
		"DROPSHIP_CAMPAIGN_ID":  cfg.DropshipCampaignID,
		"DROPSHIP_WAREHOUSE_ID": cfg.DropshipWarehouseID,
	} {
		if value == "" {
			return nil, fmt.Errorf("missing required environment variable %s", key)
		}
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
