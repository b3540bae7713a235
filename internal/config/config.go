package config

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Config struct {
	Environment string           `mapstructure:"environment"`
	LogLevel    string           `mapstructure:"log_level"`
	Engine      EngineConfig     `mapstructure:"engine"`
	Divination  DivinationConfig `mapstructure:"divination"`
}

// EngineConfig tunes the chart engine. Thresholds are the support scores at
// which a Day Master counts as strong, on the 100-point slot scale.
type EngineConfig struct {
	StrengthThresholdInSeason    float64 `mapstructure:"strength_threshold_in_season"`
	StrengthThresholdOutOfSeason float64 `mapstructure:"strength_threshold_out_of_season"`
	ReportPartialTrines          bool    `mapstructure:"report_partial_trines"`
}

type DivinationConfig struct {
	DefaultQuestion string `mapstructure:"default_question"`
	SelfCheckCasts  int    `mapstructure:"self_check_casts"`
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath(".")

	// Set default values
	setDefaults()

	// Enable environment variable support
	viper.SetEnvPrefix("TIANJI")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		// Config file not found, use defaults and environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Normalize environment to lowercase for consistent comparison
	config.Environment = strings.ToLower(config.Environment)

	if config.Engine.StrengthThresholdInSeason <= 0 || config.Engine.StrengthThresholdOutOfSeason <= 0 {
		return nil, fmt.Errorf("strength thresholds must be positive, got %.1f (in season) and %.1f (out of season)",
			config.Engine.StrengthThresholdInSeason, config.Engine.StrengthThresholdOutOfSeason)
	}
	if config.Divination.SelfCheckCasts <= 0 {
		return nil, fmt.Errorf("divination self-check casts must be positive, got %d", config.Divination.SelfCheckCasts)
	}

	return &config, nil
}

// IsDevelopment reports whether the configured environment is development.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Thresholds returns the strength verdict cutoffs as decimals, in-season
// first.
func (c EngineConfig) Thresholds() (decimal.Decimal, decimal.Decimal) {
	return decimal.NewFromFloat(c.StrengthThresholdInSeason), decimal.NewFromFloat(c.StrengthThresholdOutOfSeason)
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment", "development")
	viper.SetDefault("log_level", "info")

	// Engine
	viper.SetDefault("engine.strength_threshold_in_season", 38.0)
	viper.SetDefault("engine.strength_threshold_out_of_season", 48.0)
	viper.SetDefault("engine.report_partial_trines", true)

	// Divination
	viper.SetDefault("divination.default_question", "所问何事")
	viper.SetDefault("divination.self_check_casts", 1000)
}
