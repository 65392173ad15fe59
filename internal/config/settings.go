package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Settings holds the serve-mode configuration. Values come from three layers,
// each overriding the previous one: built-in defaults, an optional YAML file
// (HALFTONE_CONFIG, falling back to ./halftone.yaml when present), and
// environment variables.
type Settings struct {
	Port          int    `yaml:"port" validate:"min=1,max=65535"`
	DataDir       string `yaml:"data_dir" validate:"required"`
	DefaultKernel string `yaml:"default_kernel" validate:"required"`

	// MaxUploadKB bounds the request body accepted by the render endpoint.
	MaxUploadKB int `yaml:"max_upload_kb" validate:"min=1"`

	// Token-bucket rate limit applied per client address.
	RateLimitPerSecond float64 `yaml:"rate_limit_per_second" validate:"gt=0"`
	RateLimitBurst     int     `yaml:"rate_limit_burst" validate:"min=1"`

	// History controls the sqlite render-job log.
	History          bool   `yaml:"history"`
	HistoryRetention string `yaml:"history_retention" validate:"omitempty"`
}

// DefaultSettings returns the built-in serve-mode defaults.
func DefaultSettings() Settings {
	return Settings{
		Port:               8000,
		DataDir:            "./data",
		DefaultKernel:      "floyd-steinberg",
		MaxUploadKB:        10240,
		RateLimitPerSecond: 5,
		RateLimitBurst:     10,
		History:            true,
		HistoryRetention:   "30d",
	}
}

// LoadSettings resolves the serve-mode configuration from defaults, the
// optional YAML file and the environment, then validates it.
func LoadSettings() (Settings, error) {
	s := DefaultSettings()

	path := Get("HALFTONE_CONFIG", "")
	if path == "" {
		if _, err := os.Stat("halftone.yaml"); err == nil {
			path = "halftone.yaml"
		}
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Settings{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Settings{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	s.Port = GetInt("PORT", s.Port)
	s.DataDir = Get("DATA_DIR", s.DataDir)
	s.DefaultKernel = Get("DEFAULT_KERNEL", s.DefaultKernel)
	s.MaxUploadKB = GetInt("MAX_UPLOAD_KB", s.MaxUploadKB)
	s.RateLimitPerSecond = GetFloat("RATE_LIMIT_PER_SECOND", s.RateLimitPerSecond)
	s.RateLimitBurst = GetInt("RATE_LIMIT_BURST", s.RateLimitBurst)
	s.History = GetBool("HISTORY", s.History)
	s.HistoryRetention = Get("HISTORY_RETENTION", s.HistoryRetention)

	if err := validator.New().Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			return Settings{}, fmt.Errorf("invalid setting %s: failed %q constraint", f.Field(), f.Tag())
		}
		return Settings{}, fmt.Errorf("invalid settings: %w", err)
	}

	if s.HistoryRetention != "" {
		if _, err := ParseDuration(s.HistoryRetention); err != nil {
			return Settings{}, fmt.Errorf("invalid history_retention %q: %w", s.HistoryRetention, err)
		}
	}

	return s, nil
}

// Retention returns the parsed history retention window, or zero when history
// rows are kept forever.
func (s Settings) Retention() time.Duration {
	if s.HistoryRetention == "" {
		return 0
	}
	d, err := ParseDuration(s.HistoryRetention)
	if err != nil {
		return 0
	}
	return d
}
