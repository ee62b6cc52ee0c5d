package backpack

import (
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/lukehollenback/bpx/constants"
)

//
// Config is the environment facing configuration of a client.
//
type Config struct {
	BaseURL string `env:"BPX_BASE_URL,default=https://api.backpack.exchange"`
	WSURL   string `env:"BPX_WS_URL,default=wss://ws.backpack.exchange"`
	Secret  string `env:"BPX_SECRET"`
	Timeout int    `env:"BPX_TIMEOUT,default=30"`
	Window  int64  `env:"BPX_WINDOW,default=5000"`
}

//
// LoadConfig decodes a Config from the process environment. Unset variables take their defaults;
// set variables that do not parse are a *ConfigError.
//
func LoadConfig() (*Config, error) {
	cfg := &Config{}

	if err := envdecode.StrictDecode(cfg); err != nil {
		return nil, &ConfigError{Field: "environment", Err: err}
	}

	return cfg, nil
}

//
// Options translates the configuration into client options.
//
func (o *Config) Options() []Option {
	opts := []Option{
		WithBaseURL(o.BaseURL),
		WithWSURL(o.WSURL),
		WithWindow(o.Window),
	}

	if o.Secret != "" {
		opts = append(opts, WithSecret(o.Secret))
	}

	if o.Timeout > 0 {
		opts = append(opts, WithTimeout(time.Duration(o.Timeout)*time.Second))
	} else {
		opts = append(opts, WithTimeout(constants.DefaultTimeout))
	}

	return opts
}
