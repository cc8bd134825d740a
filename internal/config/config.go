package config

import (
	"os"
	"strconv"
	"time"
)

// Config FamilyMed 客户端配置
type Config struct {
	API struct {
		BaseURL string
		Timeout time.Duration
	}
	Log struct {
		Level  string
		Format string
	}
}

func Load() *Config {
	cfg := &Config{}
	cfg.API.BaseURL = getEnv("API_BASE_URL", "http://localhost:8080")
	cfg.API.Timeout = time.Duration(parseInt(getEnv("API_TIMEOUT_SECONDS", "30"), 30)) * time.Second

	// Console logging by default: this is an interactive client, JSON is for when
	// the output is collected (e.g. kiosk deployments).
	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "console")

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
