package backpack

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://api.backpack.exchange", cfg.BaseURL)
	assert.Equal(t, "wss://ws.backpack.exchange", cfg.WSURL)
	assert.Equal(t, 30, cfg.Timeout)
	assert.Equal(t, int64(5000), cfg.Window)

	client, err := NewClient(append(cfg.Options(), WithLogger(quietLogger()))...)
	require.NoError(t, err)

	assert.False(t, client.Authenticated())
	assert.Equal(t, "", client.VerifyingKey())
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("BPX_BASE_URL", "http://localhost:8080")
	t.Setenv("BPX_WS_URL", "ws://localhost:8081/")
	t.Setenv("BPX_SECRET", testSecret())
	t.Setenv("BPX_TIMEOUT", "5")
	t.Setenv("BPX_WINDOW", "60000")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	client, err := NewClient(append(cfg.Options(), WithLogger(quietLogger()))...)
	require.NoError(t, err)

	assert.True(t, client.Authenticated())
	assert.Equal(t, "http://localhost:8080", client.BaseURL())
	assert.Equal(t, "ws://localhost:8081", client.WSURL())
	assert.Equal(t, int64(60000), client.Window())
	assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
}

func TestLoadConfigRejectsBadNumbers(t *testing.T) {
	for _, name := range []string{"BPX_WINDOW", "BPX_TIMEOUT"} {
		t.Run(name, func(t *testing.T) {
			t.Setenv(name, "soon")

			cfg, err := LoadConfig()
			assert.Nil(t, cfg)

			var cfgErr *ConfigError
			assert.True(t, errors.As(err, &cfgErr), "%v", err)
		})
	}
}

func TestNewClientValidates(t *testing.T) {
	tests := map[string][]Option{
		"relative base url": {WithBaseURL("api.backpack.exchange")},
		"ws base url":       {WithBaseURL("wss://api.backpack.exchange")},
		"http ws url":       {WithWSURL("https://ws.backpack.exchange")},
		"zero window":       {WithWindow(0)},
		"bad secret":        {WithSecret("!!")},
	}

	for name, opts := range tests {
		client, err := NewClient(append(opts, WithLogger(quietLogger()))...)

		var cfgErr *ConfigError
		assert.True(t, errors.As(err, &cfgErr), name)
		assert.Nil(t, client, name)
	}
}
