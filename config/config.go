package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var (
	PORT        string
	APP_URL     string
	CORS_ORIGIN string

	STRIPE_SECRET_KEY     string
	STRIPE_WEBHOOK_SECRET string

	SMTP_HOST string
	SMTP_PORT string
	SMTP_USER string
	SMTP_PASS string

	MAIL_FROM    string
	ADMIN_EMAILS []string

	ORG_NAME string
	ORG_EIN  string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	APP_URL = getEnv("APP_URL", "http://localhost:5173")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", APP_URL)

	STRIPE_SECRET_KEY = mustEnv("STRIPE_SECRET_KEY")
	// Optional: the webhook route is only registered when this is set.
	STRIPE_WEBHOOK_SECRET = getEnv("STRIPE_WEBHOOK_SECRET", "")

	SMTP_HOST = mustEnv("SMTP_HOST")
	SMTP_PORT = getEnv("SMTP_PORT", "587")
	SMTP_USER = mustEnv("SMTP_USER")
	SMTP_PASS = mustEnv("SMTP_PASS")

	MAIL_FROM = getEnv("MAIL_FROM", "noreply@receipt.stonypointsolarcar.org")
	ADMIN_EMAILS = splitList(getEnv("ADMIN_NOTIFY_EMAILS",
		"president@stonypointsolarcar.org,treasurer@stonypointsolarcar.org"))

	ORG_NAME = getEnv("ORG_NAME", "Stony Point Solar Car Team")
	ORG_EIN = getEnv("ORG_EIN", "746002018")
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
