package config

import (
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if cfg.Port != "8050" {
		t.Errorf("Expected default port 8050, got %s", cfg.Port)
	}
	if cfg.MaxUploadSizeMB != 32 {
		t.Errorf("Expected default max upload size 32, got %d", cfg.MaxUploadSizeMB)
	}
	if cfg.CompletenessWeight != 0.6 || cfg.ConsistencyWeight != 0.4 {
		t.Errorf("Expected default weights 0.6/0.4, got %v/%v", cfg.CompletenessWeight, cfg.ConsistencyWeight)
	}
	if cfg.ValidFallbackRatio != 0.9 {
		t.Errorf("Expected default fallback ratio 0.9, got %v", cfg.ValidFallbackRatio)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("METRIC_COMPLETENESS_WEIGHT", "0.7")
	t.Setenv("METRIC_CONSISTENCY_WEIGHT", "0.3")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Expected port override 9090, got %s", cfg.Port)
	}
	if cfg.CompletenessWeight != 0.7 || cfg.ConsistencyWeight != 0.3 {
		t.Errorf("Expected weight overrides 0.7/0.3, got %v/%v", cfg.CompletenessWeight, cfg.ConsistencyWeight)
	}

	policy := cfg.MetricsPolicy()
	if policy.CompletenessWeight != 0.7 {
		t.Errorf("MetricsPolicy() did not pick up override: %v", policy)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.Port = "not-a-port" }},
		{"port out of range", func(c *Config) { c.Port = "99999" }},
		{"zero upload size", func(c *Config) { c.MaxUploadSizeMB = 0 }},
		{"negative rate limit", func(c *Config) { c.UploadRateLimit = -1 }},
		{"weight above 1", func(c *Config) { c.CompletenessWeight = 1.5 }},
		{"negative ratio", func(c *Config) { c.ValidFallbackRatio = -0.1 }},
		{"empty db path", func(c *Config) { c.ReportsDBPath = "" }},
		{"bad log level", func(c *Config) { c.LogLevel = "VERBOSE" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := LoadConfig()
			if err != nil {
				t.Fatalf("LoadConfig() failed: %v", err)
			}
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("Expected validation error")
			}
		})
	}
}
