package config

import (
	"context"
	"strings"

	"github.com/urfave/cli/v3"

	cfg "github.com/Tomas-vilte/MatePR/internal/config"
	"github.com/Tomas-vilte/MatePR/internal/i18n"
	"github.com/Tomas-vilte/MatePR/internal/ui"
)

type ConfigCommandFactory struct{}

func NewConfigCommandFactory() *ConfigCommandFactory {
	return &ConfigCommandFactory{}
}

func (f *ConfigCommandFactory) CreateCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: t.GetMessage("config_command_usage", 0, nil),
		Commands: []*cli.Command{
			f.showCommand(t, config),
			f.setCommand(t, config, "set-lang", "config_set_lang_usage", func(c *cfg.Config, v string) { c.Language = v }),
			f.setCommand(t, config, "set-provider", "config_set_provider_usage", func(c *cfg.Config, v string) { c.AIProvider = v }),
			f.setCommand(t, config, "set-api-key", "config_set_api_key_usage", func(c *cfg.Config, v string) { c.AIAPIKey = v }),
			f.setCommand(t, config, "set-model", "config_set_model_usage", func(c *cfg.Config, v string) { c.AIModel = v }),
			f.setCommand(t, config, "set-url", "config_set_url_usage", func(c *cfg.Config, v string) { c.AIEndpoint = v }),
			f.setCommand(t, config, "set-github-token", "config_set_github_token_usage", func(c *cfg.Config, v string) { c.GitHubToken = v }),
			f.resetConsentCommand(t, config),
		},
	}
}

func (f *ConfigCommandFactory) showCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config_show_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			ui.PrintSectionBanner(t.GetMessage("current_config", 0, nil))
			ui.PrintKeyValue("language", config.Language)
			ui.PrintKeyValue("ai_provider", config.AIProvider)
			ui.PrintKeyValue("ai_model", config.AIModel)
			ui.PrintKeyValue("ai_endpoint_url", config.AIEndpoint)
			ui.PrintKeyValue("ai_api_key", maskSecret(config.AIAPIKey))
			ui.PrintKeyValue("ai_consent", boolLabel(config.AIConsent))
			ui.PrintKeyValue("github_token", maskSecret(config.GitHubToken))
			ui.PrintKeyValue("tone", config.Tone)
			return nil
		},
	}
}

func (f *ConfigCommandFactory) setCommand(t *i18n.Translations, config *cfg.Config, name, usageID string, apply func(c *cfg.Config, v string)) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     t.GetMessage(usageID, 0, nil),
		ArgsUsage: "<value>",
		Action: func(ctx context.Context, command *cli.Command) error {
			value := strings.TrimSpace(command.Args().First())
			apply(config, value)
			if err := cfg.SaveConfig(config); err != nil {
				return err
			}
			ui.PrintSuccess(t.GetMessage("config_updated", 0, nil))
			return nil
		},
	}
}

func (f *ConfigCommandFactory) resetConsentCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "reset-consent",
		Usage: t.GetMessage("config_reset_consent_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			config.AIConsent = false
			if err := cfg.SaveConfig(config); err != nil {
				return err
			}
			ui.PrintSuccess(t.GetMessage("config_consent_reset", 0, nil))
			return nil
		},
	}
}

func maskSecret(secret string) string {
	if secret == "" {
		return "(not set)"
	}
	if len(secret) <= 4 {
		return "****"
	}
	return "****" + secret[len(secret)-4:]
}

func boolLabel(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
