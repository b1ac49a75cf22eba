package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/kalshictl/kalshi"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
kalshi:
  api_key: test-key
  api_secret: test-secret
  timeout: 45s
filter:
  liquid: "Volume > 1000 && spread() <= 5"
logging:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.Kalshi.APIKey)
	assert.Equal(t, "test-secret", cfg.Kalshi.APISecret)
	assert.Equal(t, 45*time.Second, cfg.Kalshi.Timeout)
	assert.Equal(t, "Volume > 1000 && spread() <= 5", cfg.Filter["liquid"])
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
kalshi:
  api_key: test-key
  api_secret: test-secret
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.False(t, cfg.Kalshi.DemoMode)
	assert.Equal(t, 30*time.Second, cfg.Kalshi.Timeout)
	assert.True(t, cfg.Safety.DryRun)
	assert.True(t, cfg.Safety.ConfirmOrder)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.True(t, cfg.Logging.Color)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	path := writeConfig(t, `
kalshi:
  api_key: file-key
  api_secret: file-secret
`)

	t.Setenv("KALSHI_API_KEY", "env-key")
	t.Setenv("KALSHI_DEMO_MODE", "true")
	t.Setenv("KALSHI_TIMEOUT", "10s")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.Kalshi.APIKey)
	assert.Equal(t, "file-secret", cfg.Kalshi.APISecret)
	assert.True(t, cfg.Kalshi.DemoMode)
	assert.Equal(t, 10*time.Second, cfg.Kalshi.Timeout)
}

func TestLoad_EnvironmentOnly(t *testing.T) {
	t.Setenv("KALSHI_API_KEY", "env-key")
	t.Setenv("KALSHI_API_SECRET", "env-secret")

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.Kalshi.APIKey)
	assert.Equal(t, "env-secret", cfg.Kalshi.APISecret)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "missing api key",
			content: `
kalshi:
  api_secret: s
`,
			wantErr: "kalshi.api_key",
		},
		{
			name: "placeholder api key",
			content: `
kalshi:
  api_key: your-api-key-here
  api_secret: s
`,
			wantErr: "kalshi.api_key",
		},
		{
			name: "missing api secret",
			content: `
kalshi:
  api_key: k
`,
			wantErr: "kalshi.api_secret",
		},
		{
			name: "bad logging level",
			content: `
kalshi:
  api_key: k
  api_secret: s
logging:
  level: verbose
`,
			wantErr: "invalid logging level",
		},
		{
			name: "bad logging format",
			content: `
kalshi:
  api_key: k
  api_secret: s
logging:
  format: xml
`,
			wantErr: "invalid logging format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestEffectiveBaseURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  KalshiConfig
		want string
	}{
		{
			name: "demo mode overrides explicit base URL",
			cfg:  KalshiConfig{BaseURL: "http://localhost:8080", DemoMode: true},
			want: kalshi.DemoBaseURL,
		},
		{
			name: "explicit base URL",
			cfg:  KalshiConfig{BaseURL: "http://localhost:8080"},
			want: "http://localhost:8080",
		},
		{
			name: "demo mode",
			cfg:  KalshiConfig{DemoMode: true},
			want: kalshi.DemoBaseURL,
		},
		{
			name: "production default",
			cfg:  KalshiConfig{},
			want: kalshi.ProductionBaseURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.EffectiveBaseURL())
		})
	}
}
