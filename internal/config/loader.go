package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Load reads config.yaml from the given search paths and overlays
// WALLET_GATE_* environment variables on top.
func Load(searchPaths ...string) (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range searchPaths {
		v.AddConfigPath(p)
	}
	if len(searchPaths) == 0 {
		v.AddConfigPath(".")
		v.AddConfigPath("/config")
	}

	v.SetEnvPrefix("WALLET_GATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// env-only runs are fine, a missing file is not
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("unable to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to unmarshal config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "local")
	v.SetDefault("app.name", "go-wallet-gate")
	v.SetDefault("app.http_port", 9567)
	v.SetDefault("app.http_timeout", 15*time.Second)
	v.SetDefault("app.graceful_timeout", 5*time.Second)
	v.SetDefault("app.log_level", "info")

	v.SetDefault("gate_config.handler_timeout_session", 15*time.Second)

	v.SetDefault("commit_config.bank_delay", time.Second)
	v.SetDefault("commit_config.mobile_delay", 500*time.Millisecond)
	v.SetDefault("commit_config.generic_delay", 2*time.Second)
	v.SetDefault("commit_config.bank_fee", "0.25")
	v.SetDefault("commit_config.trade_fee", "2.95")
	v.SetDefault("commit_config.conversion_fee", "2.50")
	v.SetDefault("commit_config.network_fee", "0.001")

	v.SetDefault("market_data.base_url", "https://marketdata.fintechlabs.io")
	v.SetDefault("market_data.timeout", 10*time.Second)
	v.SetDefault("market_data.retry_count", 2)
	v.SetDefault("market_data.retry_wait_time", 200)
	v.SetDefault("market_data.quote_ttl", 30*time.Second)
	v.SetDefault("market_data.poll_interval", 5*time.Second)

	v.SetDefault("wallet.timeout", 10*time.Second)
	v.SetDefault("wallet.retry_count", 1)
	v.SetDefault("wallet.retry_wait_time", 200)

	v.SetDefault("exponential_backoff.max_retries", 3)
	v.SetDefault("exponential_backoff.initial_interval", 500*time.Millisecond)
	v.SetDefault("exponential_backoff.max_backoff_time", 30*time.Second)
	v.SetDefault("exponential_backoff.backoff_multiplier", 1.5)

	v.SetDefault("balance_seed", map[string]string{
		"checking": "12450.75",
		"savings":  "48920.00",
		"crypto":   "3.2451",
	})
}
