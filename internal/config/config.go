package config

import (
	"os"
	"strconv"

	"dashboard/quality"
)

// Config конфигурация сервера
type Config struct {
	// Сервер
	Port      string `json:"port"`
	StaticDir string `json:"static_dir"`

	// Загрузка файлов
	MaxUploadSizeMB int     `json:"max_upload_size_mb"`
	UploadRateLimit float64 `json:"upload_rate_limit"` // запросов в секунду на эндпоинт загрузки

	// База истории отчетов
	ReportsDBPath string `json:"reports_db_path"`

	// Логирование
	LogLevel string `json:"log_level"`

	// Параметры расчета метрик
	CompletenessWeight float64 `json:"completeness_weight"`
	ConsistencyWeight  float64 `json:"consistency_weight"`
	ValidFallbackRatio float64 `json:"valid_fallback_ratio"`
}

// LoadConfig загружает конфигурацию из переменных окружения
// со значениями по умолчанию
func LoadConfig() (*Config, error) {
	defaults := quality.DefaultPolicy()

	cfg := &Config{
		Port:      getEnv("PORT", "8050"),
		StaticDir: getEnv("STATIC_DIR", "./static/"),

		MaxUploadSizeMB: getEnvInt("MAX_UPLOAD_SIZE_MB", 32),
		UploadRateLimit: getEnvFloat("UPLOAD_RATE_LIMIT", 5),

		ReportsDBPath: getEnv("REPORTS_DB_PATH", "reports.db"),

		LogLevel: getEnv("LOG_LEVEL", "INFO"),

		CompletenessWeight: getEnvFloat("METRIC_COMPLETENESS_WEIGHT", defaults.CompletenessWeight),
		ConsistencyWeight:  getEnvFloat("METRIC_CONSISTENCY_WEIGHT", defaults.ConsistencyWeight),
		ValidFallbackRatio: getEnvFloat("METRIC_VALID_FALLBACK_RATIO", defaults.ValidFallbackRatio),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MetricsPolicy собирает параметры расчета метрик из конфигурации
func (c *Config) MetricsPolicy() quality.Policy {
	return quality.Policy{
		CompletenessWeight: c.CompletenessWeight,
		ConsistencyWeight:  c.ConsistencyWeight,
		ValidFallbackRatio: c.ValidFallbackRatio,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
