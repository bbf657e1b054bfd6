package ai

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Tomas-vilte/MatePR/internal/config"
	"github.com/Tomas-vilte/MatePR/internal/domain/models"
	"github.com/Tomas-vilte/MatePR/internal/domain/ports"
	errs "github.com/Tomas-vilte/MatePR/internal/errors"
	"github.com/Tomas-vilte/MatePR/internal/i18n"
)

// ConfigStore persists the one-time consent flag. Only acceptance is saved.
type ConfigStore func(cfg *config.Config) error

// Orchestrator runs the optional generation pass: consent gate, prompt
// construction, preview or modal confirmation, the provider call, and the
// graceful fallback to the baseline report.
type Orchestrator struct {
	cfg        *config.Config
	trans      *i18n.Translations
	prompts    *PromptLibrary
	interactor ports.Interactor
	provider   ports.TextGenerationProvider
	saveConfig ConfigStore
}

func NewOrchestrator(
	cfg *config.Config,
	trans *i18n.Translations,
	prompts *PromptLibrary,
	interactor ports.Interactor,
	provider ports.TextGenerationProvider,
	saveConfig ConfigStore,
) *Orchestrator {
	return &Orchestrator{
		cfg:        cfg,
		trans:      trans,
		prompts:    prompts,
		interactor: interactor,
		provider:   provider,
		saveConfig: saveConfig,
	}
}

// Generate returns the refined description, or the baseline unchanged when
// the provider fails for any reason short of cancellation. A cancellation
// (consent refusal, declined confirmation, aborted call) returns
// errs.ErrUserCanceled and the caller must emit nothing.
func (o *Orchestrator) Generate(ctx context.Context, baseline string, set models.ChangeSet, diff models.AIPreparedDiff, tone string) (string, error) {
	if err := o.ensureConsent(); err != nil {
		return "", err
	}

	template, err := o.prompts.Template()
	if err != nil {
		// Template problems are generation-phase failures: warn and keep the
		// baseline.
		o.warnFallback(err)
		return baseline, nil
	}

	prompt := BuildPrompt(template, models.PromptData{
		BaselineReport: baseline,
		FileChanges:    FormatFileChanges(set),
		Diff:           diff.Text,
		Truncated:      diff.Truncated,
		AnalyzedLines:  diff.AnalyzedLines,
		Reason:         diff.Reason(),
		Tone:           tone,
	})

	if o.cfg.PromptPreview {
		if !o.interactor.ConfirmPromptPreview(prompt) {
			return "", errs.ErrUserCanceled
		}
	} else if !o.interactor.ConfirmSend(o.trans.GetMessage("ai_confirm_send", 0, nil)) {
		return "", errs.ErrUserCanceled
	}

	callCtx, cancel := context.WithTimeout(ctx, time.Duration(o.cfg.AITimeoutMs)*time.Millisecond)
	defer cancel()

	stopProgress := o.interactor.Progress(o.trans.GetMessage("generating_description", 0, nil))
	text, err := o.provider.GenerateText(callCtx, models.GenerationRequest{
		Prompt:      prompt,
		Model:       o.cfg.AIModel,
		EndpointURL: o.cfg.AIEndpoint,
		APIKey:      o.cfg.AIAPIKey,
		TimeoutMs:   o.cfg.AITimeoutMs,
	})
	stopProgress()
	if err != nil {
		// A canceled context is the user aborting; a deadline is an ordinary
		// request failure and falls back like any other.
		if errors.Is(err, context.Canceled) || errors.Is(err, errs.ErrUserCanceled) {
			return "", errs.ErrUserCanceled.WithError(err)
		}
		o.warnFallback(err)
		return baseline, nil
	}

	result := StripCodeFence(text)
	if result == "" {
		o.warnFallback(errs.ErrEmptyResponse)
		return baseline, nil
	}
	return result, nil
}

// ensureConsent runs the one-time data-sharing gate. Refusal persists
// nothing.
func (o *Orchestrator) ensureConsent() error {
	if o.cfg.AIConsent {
		return nil
	}

	if !o.interactor.AcceptDataSharing(o.trans.GetMessage("ai_consent_disclosure", 0, nil)) {
		return errs.ErrUserCanceled
	}

	o.cfg.AIConsent = true
	if o.saveConfig != nil {
		if err := o.saveConfig(o.cfg); err != nil {
			o.interactor.Warn(err.Error())
		}
	}
	return nil
}

func (o *Orchestrator) warnFallback(err error) {
	o.interactor.Warn(o.trans.GetMessage("ai_fallback_warning", 0, map[string]interface{}{
		"Error": err.Error(),
	}))
}

// StripCodeFence unwraps a fenced Markdown response: when the trimmed text
// starts with a fence and spans more than two lines, the first and last lines
// are dropped.
func StripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	lines := strings.Split(trimmed, "\n")
	if len(lines) <= 2 {
		return trimmed
	}
	return strings.TrimSpace(strings.Join(lines[1:len(lines)-1], "\n"))
}
