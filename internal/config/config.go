package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// Provider names accepted in VISION_PROVIDER.
const (
	ProviderAzureOpenAI = "azure_openai"
	ProviderGemini      = "gemini"
)

type Config struct {
	Host               string
	Port               string
	RequestTimeout     time.Duration
	UpstreamTimeout    time.Duration
	ArchiveTimeout     time.Duration
	MaxRequestBodySize int64

	// Vision provider selection and credentials. Credentials may be absent
	// at startup; their absence is reported per request and on /health.
	Provider              string
	AzureOpenAIKey        string
	AzureOpenAIEndpoint   string
	AzureOpenAIDeployment string
	GeminiAPIKey          string
	GeminiModel           string

	// Optional Azure Blob archival of analyzed images.
	StorageAccount   string
	StorageKey       string
	StorageContainer string

	// Optional local OCR of the coin legend.
	LegendOCR bool
}

func (c *Config) ServerAddress() string {
	return net.JoinHostPort(strings.TrimSpace(c.Host), strings.TrimSpace(c.Port))
}

// ArchiveConfigured reports whether blob archival credentials are present.
func (c *Config) ArchiveConfigured() bool {
	return c.StorageAccount != "" && c.StorageKey != "" && c.StorageContainer != ""
}

func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Host:               getEnvOrDefault("HOST", "0.0.0.0"),
		Port:               getEnvOrDefault("PORT", "8080"),
		RequestTimeout:     parseDurationOrDefault("REQUEST_TIMEOUT", 120*time.Second),
		UpstreamTimeout:    parseDurationOrDefault("UPSTREAM_TIMEOUT", 90*time.Second),
		ArchiveTimeout:     parseDurationOrDefault("ARCHIVE_TIMEOUT", 30*time.Second),
		MaxRequestBodySize: parseIntOrDefault("MAX_REQUEST_BODY_SIZE", 10*1024*1024), // 10MB

		Provider:              getEnvOrDefault("VISION_PROVIDER", ProviderAzureOpenAI),
		AzureOpenAIKey:        os.Getenv("AZURE_OPENAI_API_KEY"),
		AzureOpenAIEndpoint:   strings.TrimRight(os.Getenv("AZURE_OPENAI_ENDPOINT"), "/"),
		AzureOpenAIDeployment: getEnvOrDefault("AZURE_OPENAI_DEPLOYMENT_NAME", "gpt-4o"),
		GeminiAPIKey:          os.Getenv("GEMINI_API_KEY"),
		GeminiModel:           getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),

		StorageAccount:   os.Getenv("AZURE_STORAGE_ACCOUNT"),
		StorageKey:       os.Getenv("AZURE_STORAGE_KEY"),
		StorageContainer: os.Getenv("AZURE_STORAGE_CONTAINER"),

		LegendOCR: os.Getenv("LEGEND_OCR") == "true",
	}

	p, err := strconv.Atoi(strings.TrimSpace(cfg.Port))
	if err != nil || p < 1 || p > 65535 {
		return nil, fmt.Errorf("invalid PORT: %q", cfg.Port)
	}
	if cfg.MaxRequestBodySize <= 0 {
		return nil, fmt.Errorf("MAX_REQUEST_BODY_SIZE must be > 0 (got %d)", cfg.MaxRequestBodySize)
	}
	if cfg.RequestTimeout <= 0 || cfg.UpstreamTimeout <= 0 || cfg.ArchiveTimeout <= 0 {
		return nil, fmt.Errorf("timeouts must be > 0 (got request=%s, upstream=%s, archive=%s)",
			cfg.RequestTimeout, cfg.UpstreamTimeout, cfg.ArchiveTimeout)
	}
	switch cfg.Provider {
	case ProviderAzureOpenAI, ProviderGemini:
	default:
		return nil, fmt.Errorf("invalid VISION_PROVIDER: %q", cfg.Provider)
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(strings.TrimSpace(value)); err == nil && duration > 0 {
			return duration
		}
	}
	return defaultValue
}

func parseIntOrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
