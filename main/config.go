package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the pool scenario shared by the quote and swap commands.
// Prices are token1-per-token0; amounts are in whole token units with the
// 18-decimal convention.
type Config struct {
	PriceLow     float64
	PriceHigh    float64
	PriceCurrent float64
	Amount0      float64
	Amount1      float64
	AmountIn     float64
	Sell         string
	JSON         bool
	LogLevel     string
}

// Load merges config file, environment variables, and flags into Config.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CLMM")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	// defaults reproduce the classic 4545-5500 walkthrough
	v.SetDefault("price-low", 4545.0)
	v.SetDefault("price-high", 5500.0)
	v.SetDefault("price-current", 5000.0)
	v.SetDefault("amount0", 1.0)
	v.SetDefault("amount1", 5000.0)
	v.SetDefault("amount-in", 42.0)
	v.SetDefault("sell", "asset1")
	v.SetDefault("json", false)
	v.SetDefault("log-level", "info")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		PriceLow:     v.GetFloat64("price-low"),
		PriceHigh:    v.GetFloat64("price-high"),
		PriceCurrent: v.GetFloat64("price-current"),
		Amount0:      v.GetFloat64("amount0"),
		Amount1:      v.GetFloat64("amount1"),
		AmountIn:     v.GetFloat64("amount-in"),
		Sell:         v.GetString("sell"),
		JSON:         v.GetBool("json"),
		LogLevel:     v.GetString("log-level"),
	}

	if cfg.PriceLow <= 0 || cfg.PriceHigh <= 0 || cfg.PriceCurrent <= 0 {
		return Config{}, fmt.Errorf("prices must be positive")
	}
	if cfg.Amount0 < 0 || cfg.Amount1 < 0 {
		return Config{}, fmt.Errorf("deposit amounts must not be negative")
	}
	if cfg.Sell != "asset0" && cfg.Sell != "asset1" {
		return Config{}, fmt.Errorf("sell must be asset0 or asset1")
	}

	return cfg, nil
}
