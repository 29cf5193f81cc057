package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level usagelens configuration.
type Config struct {
	SourceDir    string             `mapstructure:"source_dir"`
	UsageCommand string             `mapstructure:"usage_command"`
	UsageArgs    []string           `mapstructure:"usage_args"`
	Language     string             `mapstructure:"language"`
	ToolWeights  map[string]float64 `mapstructure:"tool_weights"`
	Thresholds   Thresholds         `mapstructure:"thresholds"`
	Output       Output             `mapstructure:"output"`
}

// Thresholds defines tunable analysis thresholds.
type Thresholds struct {
	HighCostPerHour  float64 `mapstructure:"high_cost_per_hour"`
	TrendSensitivity float64 `mapstructure:"trend_sensitivity"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied. A missing config file is
// not an error.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("source_dir", DefaultSourceDir)
	v.SetDefault("usage_command", DefaultUsageCommand)
	v.SetDefault("usage_args", DefaultUsageArgs)
	v.SetDefault("language", DefaultLanguage)
	v.SetDefault("thresholds.high_cost_per_hour", DefaultThresholds.HighCostPerHour)
	v.SetDefault("thresholds.trend_sensitivity", DefaultThresholds.TrendSensitivity)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(expandPath(DefaultConfigDir))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.SourceDir = expandPath(cfg.SourceDir)

	return &cfg, nil
}

// DBPath returns the full path to the SQLite snapshot database.
func DBPath() string {
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}
