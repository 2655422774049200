package config

import (
	"errors"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Dataset  DatasetConfig
	Web      WebConfig
	CORS     CORSConfig
	Log      LogConfig
	Insights InsightsConfig
	Export   ExportConfig
}

// DatasetConfig points at the activity dataset parsed once at startup.
type DatasetConfig struct {
	File string
}

// WebConfig controls static front-end serving for unmatched routes.
type WebConfig struct {
	StaticDir string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// InsightsConfig gates the natural-language insight endpoint.
type InsightsConfig struct {
	Enabled bool
}

// ExportConfig toggles the activity export endpoint.
type ExportConfig struct {
	Enabled bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Dataset = DatasetConfig{File: v.GetString("DATASET_FILE")}
	cfg.Web = WebConfig{StaticDir: v.GetString("STATIC_DIR")}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Insights = InsightsConfig{Enabled: v.GetBool("ENABLE_INSIGHTS")}
	cfg.Export = ExportConfig{Enabled: v.GetBool("ENABLE_EXPORT")}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("DATASET_FILE", "./data/teacher_activities.json")
	v.SetDefault("STATIC_DIR", "./public")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("ENABLE_INSIGHTS", true)
	v.SetDefault("ENABLE_EXPORT", false)
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
