package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port            string
	DBPath          string
	BaseURL         string
	JWTSecret       string
	TokenTTLHours   int
	RedisAddr       string
	ArticleDomains  string
	ArticleMaxBytes int
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
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	cfg := AppConfig{
		Port:            get("PORT", "8080"),
		DBPath:          get("DB_PATH", "agritrust.db"),
		BaseURL:         get("BASE_URL", "https://agritrust.com"),
		JWTSecret:       get("JWT_SECRET", "dev-secret-change-me"),
		TokenTTLHours:   getInt("TOKEN_TTL_HOURS", 72),
		RedisAddr:       get("REDIS_ADDR", ""),
		ArticleDomains:  get("ARTICLE_ALLOWED_DOMAINS", ""),
		ArticleMaxBytes: getInt("ARTICLE_MAX_BYTES", 1500000),
	}
	log.Printf("[cfg] port=%s db=%s base_url=%s redis=%q", cfg.Port, cfg.DBPath, cfg.BaseURL, cfg.RedisAddr)
	return cfg
}
