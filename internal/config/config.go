package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds application configuration
type Config struct {
	Port             string
	LogLevel         string
	QuotesURL        string
	Watchlist        []string
	DigestCron       string
	DigestRecipients map[string]string // user ID -> email address
	SMTPHost         string
	SMTPPort         string
	SMTPUsername     string
	SMTPPassword     string
	SenderEmail      string
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		LogLevel:     getEnv("LOG_LEVEL", "INFO"),
		QuotesURL:    getEnv("QUOTES_URL", "https://quotes.financialking.io/api/quote"),
		DigestCron:   getEnv("DIGEST_CRON", "0 8 * * *"),
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SenderEmail:  getEnv("SENDER_EMAIL", "noreply@financialking.io"),
	}

	if cfg.QuotesURL == "" {
		return nil, fmt.Errorf("QUOTES_URL is required")
	}

	cfg.Watchlist = splitList(getEnv("WATCHLIST", "AAPL,MSFT,GOOG,AMZN,TSLA,NVDA,META,INTC,AMD,CSCO"))

	recipients, err := parseRecipients(getEnv("DIGEST_RECIPIENTS", ""))
	if err != nil {
		return nil, err
	}
	cfg.DigestRecipients = recipients

	return cfg, nil
}

// DigestEnabled reports whether the budget digest job can run
func (c *Config) DigestEnabled() bool {
	return c.SMTPHost != "" && len(c.DigestRecipients) > 0
}

// parseRecipients parses "user1:a@b.com,user2:c@d.com" pairs
func parseRecipients(raw string) (map[string]string, error) {
	recipients := make(map[string]string)
	for _, pair := range splitList(raw) {
		userID, addr, found := strings.Cut(pair, ":")
		if !found || userID == "" || addr == "" {
			return nil, fmt.Errorf("invalid DIGEST_RECIPIENTS entry: %q", pair)
		}
		recipients[userID] = addr
	}
	return recipients, nil
}

func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
