package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the persisted application configuration. AIConsent is the
// one-time data-sharing gate: it is only ever written after an explicit
// acceptance, never on refusal.
type Config struct {
	Language string `json:"language"`

	AIProvider  string `json:"ai_provider"`
	AIModel     string `json:"ai_model"`
	AIEndpoint  string `json:"ai_endpoint_url"`
	AIAPIKey    string `json:"ai_api_key"`
	AITimeoutMs int    `json:"ai_timeout_ms"`
	AIConsent   bool   `json:"ai_consent"`

	MaxDiffLines   int `json:"max_diff_lines"`
	MaxPromptChars int `json:"max_prompt_chars"`

	IncludeFilesSection bool   `json:"include_files_section"`
	PromptPreview       bool   `json:"prompt_preview"`
	Tone                string `json:"tone"`

	PromptTemplatePath string `json:"prompt_template_path,omitempty"`
	GitHubToken        string `json:"github_token,omitempty"`

	PathFile string `json:"path_file"`
}

const (
	defaultLang           = "en"
	defaultProvider       = "openai"
	defaultModel          = "gpt-4o-mini"
	defaultEndpoint       = "https://api.openai.com/v1/chat/completions"
	defaultTimeoutMs      = 30000
	defaultMaxDiffLines   = 2000
	defaultMaxPromptChars = 24000
	defaultTone           = "neutral"
)

// LoadConfig reads the config from path, or from <path>/.mate-pr/config.json
// when path is a directory, creating it with defaults on first run.
func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".json" {
		configPath = path
	} else {
		configDir := filepath.Join(path, ".mate-pr")
		configPath = filepath.Join(configDir, "config.json")

		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return nil, fmt.Errorf("error creating the config directory: %w", err)
			}
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading the config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error decoding the config file: %w", err)
	}

	config.PathFile = configPath
	applyDefaults(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("the loaded configuration is not valid: %w", err)
	}

	return &config, nil
}

func createDefaultConfig(path string) (*Config, error) {
	config := &Config{PathFile: path}
	applyDefaults(config)

	if err := SaveConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig validates and persists the configuration.
func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("the configuration to save is not valid: %w", err)
	}

	if config.PathFile == "" {
		return errors.New("the config file path is not set")
	}

	dir := filepath.Dir(config.PathFile)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating the config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding the configuration: %w", err)
	}

	if err := os.WriteFile(config.PathFile, data, 0644); err != nil {
		return fmt.Errorf("error writing the config file: %w", err)
	}

	return nil
}

func applyDefaults(config *Config) {
	if config.Language == "" {
		config.Language = defaultLang
	}
	if config.AIProvider == "" {
		config.AIProvider = defaultProvider
	}
	if config.AIModel == "" {
		config.AIModel = defaultModel
	}
	if config.AIEndpoint == "" {
		config.AIEndpoint = defaultEndpoint
	}
	if config.AITimeoutMs <= 0 {
		config.AITimeoutMs = defaultTimeoutMs
	}
	if config.MaxDiffLines <= 0 {
		config.MaxDiffLines = defaultMaxDiffLines
	}
	if config.MaxPromptChars <= 0 {
		config.MaxPromptChars = defaultMaxPromptChars
	}
	if config.Tone == "" {
		config.Tone = defaultTone
	}
}

func validateConfig(config *Config) error {
	if config.Language != "en" && config.Language != "es" {
		return fmt.Errorf("unsupported language: %s", config.Language)
	}
	if config.AITimeoutMs <= 0 {
		return errors.New("ai_timeout_ms must be positive")
	}
	if config.MaxDiffLines <= 0 {
		return errors.New("max_diff_lines must be positive")
	}
	return nil
}
