package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so tests start from defaults.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range envBindings {
		t.Setenv(name, "")
	}
}

// TestLoadDefaults verifies that Load applies defaults when nothing is set,
// and that missing API keys are not a load-time error.
func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFrom("", t.TempDir())

	require.NoError(t, err, "LoadFrom() should not fail with only defaults")
	require.NotNil(t, cfg)
	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout())

	assert.Empty(t, cfg.LLM.GeminiAPIKey)
	assert.Equal(t, "models/gemini-2.5-flash", cfg.LLM.ModelName)
	assert.Equal(t, DefaultGeminiBaseURL, cfg.LLM.BaseURL)
	assert.Equal(t, 3, cfg.LLM.MaxAttempts)
	assert.Equal(t, 2048, cfg.LLM.MaxOutputTokens)
	assert.Equal(t, 120*time.Second, cfg.LLM.RequestTimeout())
	assert.Equal(t, time.Second, cfg.LLM.InitialBackoff())
	assert.Equal(t, 500*time.Millisecond, cfg.LLM.MaxJitter())

	assert.Empty(t, cfg.Weather.APIKey)
	assert.Equal(t, DefaultWeatherBaseURL, cfg.Weather.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Weather.RequestTimeout())
}

// TestLoadFromEnv verifies that environment variables are read.
func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("GOOGLE_API_KEY", "google-test-key")
	t.Setenv("OPENWEATHER_API_KEY", "weather-test-key")
	t.Setenv("MODEL_NAME", "models/gemini-2.5-pro")
	t.Setenv("GEMINI_MAX_ATTEMPTS", "5")

	cfg, err := LoadFrom("", t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "google-test-key", cfg.LLM.GeminiAPIKey)
	assert.Equal(t, "weather-test-key", cfg.Weather.APIKey)
	assert.Equal(t, "models/gemini-2.5-pro", cfg.LLM.ModelName)
	assert.Equal(t, 5, cfg.LLM.MaxAttempts)
}

// TestLoadFromDotEnv verifies that a .env file fills in unset variables.
func TestLoadFromDotEnv(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.Unsetenv("OPENWEATHER_API_KEY"))
	require.NoError(t, os.Unsetenv("MODEL_NAME"))
	t.Cleanup(func() {
		_ = os.Unsetenv("OPENWEATHER_API_KEY")
		_ = os.Unsetenv("MODEL_NAME")
	})

	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := "OPENWEATHER_API_KEY=from-dotenv\nMODEL_NAME=models/gemini-2.0-flash\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	cfg, err := LoadFrom(envFile, dir)

	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.Weather.APIKey)
	assert.Equal(t, "models/gemini-2.0-flash", cfg.LLM.ModelName)
}

// TestLoadMissingDotEnvIsIgnored verifies that an absent .env file is not an error.
func TestLoadMissingDotEnvIsIgnored(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	_, err := LoadFrom(filepath.Join(dir, ".env"), dir)

	assert.NoError(t, err)
}

// TestLoadFromConfigFile verifies that config.yaml is read and that the
// environment overrides it.
func TestLoadFromConfigFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "warn")

	dir := t.TempDir()
	yaml := `
server:
  port: 7070
  log_level: debug
llm:
  model_name: models/gemini-2.0-flash
  max_output_tokens: 1024
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	cfg, err := LoadFrom("", dir)

	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Server.LogLevel, "environment should win over the config file")
	assert.Equal(t, "models/gemini-2.0-flash", cfg.LLM.ModelName)
	assert.Equal(t, 1024, cfg.LLM.MaxOutputTokens)
}

// TestLoadValidationErrors verifies that invalid values are rejected.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name:    "Invalid port number",
			envVars: map[string]string{"PORT": "999999"},
		},
		{
			name:    "Invalid log level",
			envVars: map[string]string{"LOG_LEVEL": "verbose"},
		},
		{
			name:    "Zero attempts",
			envVars: map[string]string{"GEMINI_MAX_ATTEMPTS": "0"},
		},
		{
			name:    "Malformed weather base URL",
			envVars: map[string]string{"OPENWEATHER_BASE_URL": "not a url"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.envVars {
				t.Setenv(k, v)
			}

			cfg, err := LoadFrom("", t.TempDir())

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), "validation failed")
		})
	}
}
