package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	var errors []string

	// Валидация порта
	if c.Port == "" {
		errors = append(errors, "port is required")
	} else {
		port, err := strconv.Atoi(c.Port)
		if err != nil {
			errors = append(errors, fmt.Sprintf("invalid port: %s", c.Port))
		} else if port < 1 || port > 65535 {
			errors = append(errors, fmt.Sprintf("port must be between 1 and 65535, got %d", port))
		}
	}

	// Валидация лимитов загрузки
	if c.MaxUploadSizeMB < 1 {
		errors = append(errors, "max upload size must be at least 1 MB")
	}
	if c.UploadRateLimit <= 0 {
		errors = append(errors, "upload rate limit must be positive")
	}

	// Валидация пути к базе отчетов
	if c.ReportsDBPath == "" {
		errors = append(errors, "reports database path is required")
	}

	// Валидация параметров метрик
	if c.CompletenessWeight < 0 || c.CompletenessWeight > 1 {
		errors = append(errors, fmt.Sprintf("completeness weight must be in [0,1], got %v", c.CompletenessWeight))
	}
	if c.ConsistencyWeight < 0 || c.ConsistencyWeight > 1 {
		errors = append(errors, fmt.Sprintf("consistency weight must be in [0,1], got %v", c.ConsistencyWeight))
	}
	if c.ValidFallbackRatio < 0 || c.ValidFallbackRatio > 1 {
		errors = append(errors, fmt.Sprintf("valid fallback ratio must be in [0,1], got %v", c.ValidFallbackRatio))
	}

	// Валидация уровня логирования
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level: %s", c.LogLevel))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errors, "; "))
	}
	return nil
}
