package config

import (
	"os"
	"strconv"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Environment string `env:"ENV" envDefault:"development"`
	Search      struct {
		Dimension   int     `env:"SEARCH_DIMENSION" envDefault:"2"`
		LowerBound  float64 `env:"SEARCH_LOWER_BOUND" envDefault:"-10"`
		UpperBound  float64 `env:"SEARCH_UPPER_BOUND" envDefault:"10"`
		SampleCount int     `env:"SEARCH_SAMPLE_COUNT" envDefault:"20000"`
		Objective   string  `env:"SEARCH_OBJECTIVE" envDefault:"sphere"`
		Seed        int64   `env:"SEARCH_SEED" envDefault:"0"`
	}
	Logging struct {
		Level  string `env:"LOG_LEVEL" envDefault:"info"`
		Format string `env:"LOG_FORMAT" envDefault:"json"`
		Output string `env:"LOG_OUTPUT" envDefault:"stderr"`
	}
	Render struct {
		Enabled    bool          `env:"RENDER_ENABLED" envDefault:"true"`
		OutputDir  string        `env:"RENDER_OUTPUT_DIR" envDefault:"out"`
		GridSize   int           `env:"RENDER_GRID_SIZE" envDefault:"200"`
		FrameDelay time.Duration `env:"RENDER_FRAME_DELAY" envDefault:"500ms"`
	}
	Report struct {
		CSVPath string `env:"REPORT_CSV_PATH" envDefault:""`
	}
}

func Load() (*Config, error) {
	cfg := &Config{}

	// Parse environment variables
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	// Set default logging level based on environment
	if cfg.Environment == "development" && cfg.Logging.Level == "" {
		cfg.Logging.Level = "debug"
	}

	// Ensure the render output directory exists
	if cfg.Render.Enabled {
		if err := os.MkdirAll(cfg.Render.OutputDir, 0755); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// GetEnv returns the value of the environment variable or the default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetEnvAsInt returns the value of the environment variable as int or the default value
func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// GetEnvAsBool returns the value of the environment variable as bool or the default value
func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
