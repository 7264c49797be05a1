package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// AppConfig holds all process configuration, loaded once at startup.
// There is no hot reload.
type AppConfig struct {
	// Slack credentials (always required)
	SlackBotToken      string
	SlackSigningSecret string

	// AllowedChannelID is the single channel commands are accepted from and
	// notifications are posted to
	AllowedChannelID string

	Port               string // Optional with default "8080"
	CORSAllowedOrigins string // Optional with default "*"
	Environment        string

	// Optional error alerting
	SlackAlertWebhookURL string
	ServerLogsURL        string
}

func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("⚠️ Could not load .env file, continuing with system env vars")
	}

	slackBotToken, err := getEnvRequired("SLACK_BOT_TOKEN")
	if err != nil {
		return nil, err
	}

	slackSigningSecret, err := getEnvRequired("SLACK_SIGNING_SECRET")
	if err != nil {
		return nil, err
	}

	allowedChannelID, err := getEnvRequired("ALLOWED_CHANNEL_ID")
	if err != nil {
		return nil, err
	}

	return &AppConfig{
		SlackBotToken:      slackBotToken,
		SlackSigningSecret: slackSigningSecret,
		AllowedChannelID:   allowedChannelID,

		Port:               getEnvWithDefault("PORT", "8080"),
		CORSAllowedOrigins: getEnvWithDefault("CORS_ALLOWED_ORIGINS", "*"),
		Environment:        getEnvWithDefault("ENVIRONMENT", "dev"),

		SlackAlertWebhookURL: os.Getenv("SLACK_ALERT_WEBHOOK_URL"),
		ServerLogsURL:        getEnvWithDefault("SERVER_LOGS_URL", ""),
	}, nil
}

func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set", key)
	}
	return value, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
