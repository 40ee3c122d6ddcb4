package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.yaml.in/yaml/v4"
)

type Config struct {
	Port        string `yaml:"port"`
	DatabaseURL string `yaml:"database_url"`
	RedisURL    string `yaml:"redis_url"`
	LogMode     string `yaml:"log_mode"`
	CORSOrigins string `yaml:"cors_origins"`

	JWTSecret     string `yaml:"jwt_secret"`
	JWTIssuer     string `yaml:"jwt_issuer"`
	JWTTTLMinutes int    `yaml:"jwt_ttl_minutes"`
	BcryptCost    int    `yaml:"bcrypt_cost"`

	OpenRouterAPIKey   string `yaml:"openrouter_api_key"`
	OpenRouterBase     string `yaml:"openrouter_base_url"`
	OpenRouterModel    string `yaml:"openrouter_model"`
	OpenRouterAppTitle string `yaml:"openrouter_app_title"`
	OpenRouterReferer  string `yaml:"openrouter_referer"`
	LLMTimeoutSeconds  int    `yaml:"llm_timeout_seconds"`

	StreakTimezone  string `yaml:"streak_timezone"`
	ChatRequireAuth bool   `yaml:"chat_require_auth"`
}

// Defaults returns the configuration used when nothing else is provided.
func Defaults() Config {
	return Config{
		Port:               "8000",
		LogMode:            "dev",
		CORSOrigins:        "*",
		JWTSecret:          "dev-secret-change",
		JWTIssuer:          "prepai",
		JWTTTLMinutes:      5 * 24 * 60,
		BcryptCost:         10,
		OpenRouterBase:     "https://openrouter.ai/api/v1",
		OpenRouterModel:    "google/gemini-flash-1.5",
		OpenRouterAppTitle: "PrepAI",
		LLMTimeoutSeconds:  60,
		StreakTimezone:     "UTC",
	}
}

// Load builds the configuration: defaults, then the YAML file named by
// CONFIG_FILE (if any), then environment variables (optionally from .env).
func Load() (Config, error) {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}
	cfg.mergeEnv()
	return cfg, cfg.Validate()
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv() {
	c.Port = getEnv("PORT", c.Port)
	c.DatabaseURL = getEnv("DATABASE_URL", c.DatabaseURL)
	c.RedisURL = getEnv("REDIS_URL", c.RedisURL)
	c.LogMode = getEnv("LOG_MODE", c.LogMode)
	c.CORSOrigins = getEnv("CORS_ORIGINS", c.CORSOrigins)
	c.JWTSecret = getEnv("JWT_SECRET", c.JWTSecret)
	c.JWTIssuer = getEnv("JWT_ISSUER", c.JWTIssuer)
	c.JWTTTLMinutes = getEnvInt("JWT_TTL_MINUTES", c.JWTTTLMinutes)
	c.BcryptCost = getEnvInt("BCRYPT_COST", c.BcryptCost)
	c.OpenRouterAPIKey = getEnv("OPENROUTER_API_KEY", c.OpenRouterAPIKey)
	c.OpenRouterBase = getEnv("OPENROUTER_BASE_URL", c.OpenRouterBase)
	c.OpenRouterModel = getEnv("OPENROUTER_MODEL", c.OpenRouterModel)
	c.OpenRouterAppTitle = getEnv("OPENROUTER_APP_TITLE", c.OpenRouterAppTitle)
	c.OpenRouterReferer = getEnv("OPENROUTER_REFERER", c.OpenRouterReferer)
	c.LLMTimeoutSeconds = getEnvInt("LLM_TIMEOUT_SECONDS", c.LLMTimeoutSeconds)
	c.StreakTimezone = getEnv("STREAK_TIMEZONE", c.StreakTimezone)
	c.ChatRequireAuth = getEnvBool("CHAT_REQUIRE_AUTH", c.ChatRequireAuth)
}

// Validate rejects values the server cannot start with.
func (c Config) Validate() error {
	if c.JWTTTLMinutes <= 0 {
		return fmt.Errorf("JWT_TTL_MINUTES must be positive, got %d", c.JWTTTLMinutes)
	}
	if c.BcryptCost < 4 || c.BcryptCost > 14 {
		return fmt.Errorf("BCRYPT_COST must be between 4 and 14, got %d", c.BcryptCost)
	}
	if _, err := time.LoadLocation(c.StreakTimezone); err != nil {
		return fmt.Errorf("STREAK_TIMEZONE: %w", err)
	}
	return nil
}

// Location returns the timezone calendar days are counted in.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.StreakTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c Config) JWTTTL() time.Duration { return time.Duration(c.JWTTTLMinutes) * time.Minute }

func (c Config) LLMTimeout() time.Duration { return time.Duration(c.LLMTimeoutSeconds) * time.Second }

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return def
}
