package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("should create a default config on first run", func(t *testing.T) {
		// Arrange
		home := t.TempDir()

		// Act
		cfg, err := LoadConfig(home)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "en", cfg.Language)
		assert.Equal(t, "openai", cfg.AIProvider)
		assert.Equal(t, "gpt-4o-mini", cfg.AIModel)
		assert.Equal(t, 30000, cfg.AITimeoutMs)
		assert.Equal(t, 2000, cfg.MaxDiffLines)
		assert.Equal(t, 24000, cfg.MaxPromptChars)
		assert.Equal(t, "neutral", cfg.Tone)
		assert.False(t, cfg.AIConsent)
		assert.FileExists(t, filepath.Join(home, ".mate-pr", "config.json"))
	})

	t.Run("should load an existing file and fill missing fields", func(t *testing.T) {
		home := t.TempDir()
		configDir := filepath.Join(home, ".mate-pr")
		require.NoError(t, os.MkdirAll(configDir, 0755))
		content := `{"language": "es", "ai_api_key": "secret"}`
		require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.json"), []byte(content), 0644))

		cfg, err := LoadConfig(home)

		require.NoError(t, err)
		assert.Equal(t, "es", cfg.Language)
		assert.Equal(t, "secret", cfg.AIAPIKey)
		assert.Equal(t, "gpt-4o-mini", cfg.AIModel, "missing fields fall back to defaults")
	})

	t.Run("should accept a direct json path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.json")

		cfg, err := LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, path, cfg.PathFile)
		assert.FileExists(t, path)
	})

	t.Run("should reject an unsupported language", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"language": "fr"}`), 0644))

		_, err := LoadConfig(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported language")
	})

	t.Run("should reject a corrupt file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

		_, err := LoadConfig(path)

		assert.Error(t, err)
	})
}

func TestSaveConfig(t *testing.T) {
	t.Run("should round-trip through disk", func(t *testing.T) {
		home := t.TempDir()
		cfg, err := LoadConfig(home)
		require.NoError(t, err)

		cfg.AIConsent = true
		cfg.AIAPIKey = "secret"
		cfg.Language = "es"
		require.NoError(t, SaveConfig(cfg))

		reloaded, err := LoadConfig(home)
		require.NoError(t, err)
		assert.True(t, reloaded.AIConsent)
		assert.Equal(t, "secret", reloaded.AIAPIKey)
		assert.Equal(t, "es", reloaded.Language)
	})

	t.Run("should refuse to save an invalid config", func(t *testing.T) {
		cfg := &Config{Language: "fr", PathFile: filepath.Join(t.TempDir(), "config.json")}

		err := SaveConfig(cfg)

		assert.Error(t, err)
	})

	t.Run("should require a file path", func(t *testing.T) {
		cfg := &Config{}
		applyDefaults(cfg)

		err := SaveConfig(cfg)

		assert.Error(t, err)
	})
}
