package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI      UIConfig
	Data    DataConfig
	Export  ExportConfig
	Log     LogConfig
	Metrics MetricsConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Currency     string
	CompactWidth int `mapstructure:"compact_width"`
}

// DataConfig sizes the generated sample data set. Seed 0 draws a new data
// set on every start.
type DataConfig struct {
	Seed         int64
	Transactions int
	Payouts      int
	Settlements  int
	Reports      int
}

// ExportConfig holds the export target directory.
type ExportConfig struct {
	Dir string
}

type LogConfig struct {
	Path  string
	Level string
}

// MetricsConfig holds the optional textfile path; empty disables output.
type MetricsConfig struct {
	Textfile string
}

// Load reads configuration from .env, file and env. Env var overrides use
// prefix PAYNEX_.
func Load() (Config, error) {
	// a missing .env is the normal case
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("ui.currency", "MYR")
	v.SetDefault("ui.compact_width", 100)
	v.SetDefault("data.seed", 0)
	v.SetDefault("data.transactions", 50)
	v.SetDefault("data.payouts", 30)
	v.SetDefault("data.settlements", 20)
	v.SetDefault("data.reports", 30)
	v.SetDefault("export.dir", ".")
	v.SetDefault("log.path", filepath.Join(os.TempDir(), "paynex.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("metrics.textfile", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("PAYNEX_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "paynex"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PAYNEX")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// an explicit PAYNEX_CONFIG must exist and parse
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.CompactWidth <= 0 {
		return Config{}, fmt.Errorf("ui.compact_width must be positive, got %d", c.UI.CompactWidth)
	}
	for key, n := range map[string]int{
		"data.transactions": c.Data.Transactions,
		"data.payouts":      c.Data.Payouts,
		"data.settlements":  c.Data.Settlements,
		"data.reports":      c.Data.Reports,
	} {
		if n < 0 {
			return Config{}, fmt.Errorf("%s must not be negative, got %d", key, n)
		}
	}
	return c, nil
}
