package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

// NewTranslations builds the message bundle from the embedded English
// defaults plus any locales/active.*.toml files under localesPath.
func NewTranslations(defaultLang string, localesPath string) (*Translations, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")

	if localesPath == "" {
		localesPath = "locales"
	}
	files, err := filepath.Glob(filepath.Join(localesPath, "active.*.toml"))
	if err != nil {
		return nil, fmt.Errorf("error reading locales: %w", err)
	}

	for _, file := range files {
		if _, err := bundle.LoadMessageFile(file); err != nil {
			return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
		}
	}

	localize := i18n.NewLocalizer(bundle, defaultLang)

	return &Translations{
		bundle:   bundle,
		localize: localize,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	[app_usage]
	other = "Generate reviewable PR descriptions from your git changes"

	[app_description]
	other = "mate-pr turns staged or branch-relative changes into a structured PR description, optionally refined by an AI provider."

	[describe_command_usage]
	other = "Build a PR description from your changes"

	[describe_base_flag_usage]
	other = "Compare against this base branch instead of the staging area"

	[describe_branch_flag_usage]
	other = "Compare against the default base branch (main, then master)"

	[describe_ai_flag_usage]
	other = "Refine the description with the configured AI provider"

	[describe_files_flag_usage]
	other = "Include the full file list in the report"

	[describe_tone_flag_usage]
	other = "Tone hint passed to the AI provider"

	[describe_output_flag_usage]
	other = "Write the description to this file instead of stdout"

	[describe_pr_flag_usage]
	other = "Publish the description as the body of this GitHub PR number"

	[describe_lang_flag_usage]
	other = "Language for CLI messages"

	[collecting_changes]
	other = "Collecting changes..."

	[generating_description]
	other = "Asking the AI provider for a refined description..."

	[report_written]
	other = "Description written to {{.Path}}"

	[publish_success]
	other = "Description published to PR #{{.PR}}"

	[publish_warning]
	other = "Could not publish to the PR: {{.Error}}"

	[ai_consent_disclosure]
	other = "To refine the description, mate-pr sends your file list and (truncated) diff to the configured AI provider. Nothing is sent without this one-time consent."

	[ai_consent_question]
	other = "Share change data with the AI provider from now on?"

	[ai_confirm_send]
	other = "Send the generation request now?"

	[ai_preview_instructions]
	other = "This exact prompt will be sent. Press Enter or type 'send' to continue, anything else cancels:"

	[ai_fallback_warning]
	other = "AI generation failed, keeping the local description: {{.Error}}"

	[operation_cancelled]
	other = "Operation cancelled"

	[config_command_usage]
	other = "Inspect and update the mate-pr configuration"

	[config_show_usage]
	other = "Show the current configuration"

	[config_set_lang_usage]
	other = "Set the CLI language (en, es)"

	[config_set_provider_usage]
	other = "Set the active AI provider"

	[config_set_api_key_usage]
	other = "Set the AI provider API key"

	[config_set_model_usage]
	other = "Set the AI model name"

	[config_set_url_usage]
	other = "Set the AI endpoint URL"

	[config_set_github_token_usage]
	other = "Set the GitHub token used to publish descriptions"

	[config_reset_consent_usage]
	other = "Withdraw the AI data-sharing consent"

	[config_updated]
	other = "Configuration updated"

	[config_consent_reset]
	other = "AI data-sharing consent withdrawn; you will be asked again next time"

	[current_config]
	other = "Current configuration"

	[ui_error.try_suggestion]
	other = "Try: "
	`
