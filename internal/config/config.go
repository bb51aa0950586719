// Package config loads runtime settings from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port             int
	CORSAllowOrigins []string

	// DynamoDB table for persisted score rows; empty disables persistence.
	ScoresTable string
}

func Load() *Config {
	return &Config{
		Port:             EnvInt("PORT", 8080),
		CORSAllowOrigins: splitCSV(Getenv("CORS_ALLOW_ORIGINS", "*")),
		ScoresTable:      os.Getenv("SCORES_TABLE_NAME"),
	}
}

func Getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func EnvInt(k string, def int) int {
	if v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(k))); err == nil {
		return v
	}
	return def
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
