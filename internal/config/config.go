package config

import (
	"time"
)

type (
	Config struct {
		App        App              `json:"app" mapstructure:"app"`
		Redis      Redis            `json:"redis" mapstructure:"redis"`
		SecretKey  string           `json:"secret_key" mapstructure:"secret_key"`
		Wallet     WalletConfig     `json:"wallet" mapstructure:"wallet"`
		MarketData MarketDataConfig `json:"market_data" mapstructure:"market_data"`

		GateConfig         GateConfig               `json:"gate_config" mapstructure:"gate_config"`
		CommitConfig       CommitConfig             `json:"commit_config" mapstructure:"commit_config"`
		BalanceSeed        map[string]string        `json:"balance_seed" mapstructure:"balance_seed"`
		ExponentialBackoff ExponentialBackOffConfig `json:"exponential_backoff" mapstructure:"exponential_backoff"`
	}

	App struct {
		Env             string        `json:"env" mapstructure:"env"`
		HTTPPort        int           `json:"http_port" mapstructure:"http_port"`
		HTTPTimeout     time.Duration `json:"http_timeout" mapstructure:"http_timeout"`
		GracefulTimeout time.Duration `json:"graceful_timeout" mapstructure:"graceful_timeout"`
		Name            string        `json:"name" mapstructure:"name"`
		LogLevel        string        `json:"log_level" mapstructure:"log_level"`
	}

	Redis struct {
		Host     string `json:"host" mapstructure:"host"`
		Port     string `json:"port" mapstructure:"port"`
		Password string `json:"password" mapstructure:"password"`
		Db       int    `json:"db" mapstructure:"db"`
		Enabled  bool   `json:"enabled" mapstructure:"enabled"`
	}

	// GateConfig tunes the confirmation gate.
	GateConfig struct {
		// HandlerTimeoutSession bounds the confirm endpoint. It must be longer
		// than the largest simulated commit delay.
		HandlerTimeoutSession time.Duration `json:"handler_timeout_session" mapstructure:"handler_timeout_session"`
	}

	// CommitConfig carries the synthetic delays and the flat fee schedule per
	// transaction kind. Delays mirror the processing timers of the reference
	// dashboard; fees are demo values, not a pricing engine.
	CommitConfig struct {
		BankDelay    time.Duration `json:"bank_delay" mapstructure:"bank_delay"`
		MobileDelay  time.Duration `json:"mobile_delay" mapstructure:"mobile_delay"`
		GenericDelay time.Duration `json:"generic_delay" mapstructure:"generic_delay"`

		BankFee       string `json:"bank_fee" mapstructure:"bank_fee"`
		TradeFee      string `json:"trade_fee" mapstructure:"trade_fee"`
		ConversionFee string `json:"conversion_fee" mapstructure:"conversion_fee"`
		NetworkFee    string `json:"network_fee" mapstructure:"network_fee"`
	}

	WalletConfig struct {
		RPCEndpoint   string        `json:"rpc_endpoint" mapstructure:"rpc_endpoint"`
		RetryCount    int           `json:"retry_count" mapstructure:"retry_count"`
		RetryWaitTime int           `json:"retry_wait_time" mapstructure:"retry_wait_time"`
		Timeout       time.Duration `json:"timeout" mapstructure:"timeout"`
	}

	MarketDataConfig struct {
		BaseURL       string        `json:"base_url" mapstructure:"base_url"`
		APIKey        string        `json:"api_key" mapstructure:"api_key"`
		RetryCount    int           `json:"retry_count" mapstructure:"retry_count"`
		RetryWaitTime int           `json:"retry_wait_time" mapstructure:"retry_wait_time"`
		Timeout       time.Duration `json:"timeout" mapstructure:"timeout"`
		QuoteTTL      time.Duration `json:"quote_ttl" mapstructure:"quote_ttl"`
		PollInterval  time.Duration `json:"poll_interval" mapstructure:"poll_interval"`
	}

	ExponentialBackOffConfig struct {
		MaxRetries        uint64        `json:"max_retries" mapstructure:"max_retries"`
		InitialInterval   time.Duration `json:"initial_interval" mapstructure:"initial_interval"`
		MaxBackoffTime    time.Duration `json:"max_backoff_time" mapstructure:"max_backoff_time"`
		BackoffMultiplier float64       `json:"backoff_multiplier" mapstructure:"backoff_multiplier"`
	}
)
