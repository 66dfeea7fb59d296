package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the runtime settings of the CLI shell and the experiment
// runner. Values come from defaults, an optional config file and OTHELLO_*
// environment variables, in increasing priority.
type Config struct {
	Depth      int    `mapstructure:"depth"`       // Search depth in plies
	LogLevel   string `mapstructure:"log_level"`   // zerolog level name
	ResultsDir string `mapstructure:"results_dir"` // Experiment CSV output directory
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("depth", 5)
	v.SetDefault("log_level", "warn")
	v.SetDefault("results_dir", "results")

	v.SetEnvPrefix("othello")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.Depth <= 0 {
		return nil, fmt.Errorf("depth must be positive, got %d", cfg.Depth)
	}

	return &cfg, nil
}
