package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port         string
	DBDriver     string // sqlite|mysql
	DBPath       string
	DBDSN        string
	SecretKey    string
	SessionTTL   time.Duration
	CookieSecure bool
	UploadDir    string
	MaxUploadMB  int
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getInt := func(k string, def int) int {
		n, err := strconv.Atoi(get(k, ""))
		if err != nil || n <= 0 {
			return def
		}
		return n
	}
	cfg := AppConfig{
		Port:         get("PORT", "5001"),
		DBDriver:     get("DB_DRIVER", "sqlite"),
		DBPath:       get("DB_PATH", "farmintel.db"),
		DBDSN:        get("DB_DSN", ""),
		SecretKey:    get("SECRET_KEY", "farmintel-secret-key-change-in-production"),
		SessionTTL:   time.Duration(getInt("SESSION_TTL_HOURS", 12)) * time.Hour,
		CookieSecure: get("COOKIE_SECURE", "false") == "true",
		UploadDir:    get("UPLOAD_DIR", "static/uploads"),
		MaxUploadMB:  getInt("MAX_UPLOAD_MB", 16),
	}
	log.Printf("[cfg] %+v", cfg.Masked())
	return cfg
}

// Masked returns a copy safe for logging.
func (c AppConfig) Masked() AppConfig {
	if c.SecretKey != "" {
		c.SecretKey = "***"
	}
	if c.DBDSN != "" {
		c.DBDSN = "***"
	}
	return c
}

// BodyLimit renders MaxUploadMB in the form echo's BodyLimit middleware expects.
func (c AppConfig) BodyLimit() string {
	return strconv.Itoa(c.MaxUploadMB) + "M"
}
