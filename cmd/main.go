package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/Tomas-vilte/MatePR/internal/ai"
	configcmd "github.com/Tomas-vilte/MatePR/internal/cli/command/config"
	"github.com/Tomas-vilte/MatePR/internal/cli/command/describe"
	"github.com/Tomas-vilte/MatePR/internal/cli/registry"
	cfg "github.com/Tomas-vilte/MatePR/internal/config"
	"github.com/Tomas-vilte/MatePR/internal/domain/ports"
	errs "github.com/Tomas-vilte/MatePR/internal/errors"
	"github.com/Tomas-vilte/MatePR/internal/i18n"
	"github.com/Tomas-vilte/MatePR/internal/infrastructure/ai/gemini"
	"github.com/Tomas-vilte/MatePR/internal/infrastructure/ai/openai"
	aiRegistry "github.com/Tomas-vilte/MatePR/internal/infrastructure/ai/registry"
	"github.com/Tomas-vilte/MatePR/internal/infrastructure/git"
	"github.com/Tomas-vilte/MatePR/internal/infrastructure/vcs/github"
	"github.com/Tomas-vilte/MatePR/internal/services"
	"github.com/Tomas-vilte/MatePR/internal/ui"
	"github.com/Tomas-vilte/MatePR/internal/version"
)

func main() {
	// Ctrl-C cancels cooperatively: the signal is observed at the provider
	// call boundary, and a canceled generation emits no report.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, translations, err := initializeApp()
	if err != nil {
		log.Fatalf("Error starting the cli: %v", err)
	}

	if err := app.Run(ctx, os.Args); err != nil {
		ui.HandleAppError(err, translations)
		os.Exit(1)
	}
}

func initializeApp() (*cli.Command, *i18n.Translations, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("could not resolve the user home directory: %w", err)
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		return nil, nil, fmt.Errorf("error loading translations: %w", err)
	}

	providers := aiRegistry.NewRegistry()
	if err := providers.Register("openai", openai.NewFactory()); err != nil {
		log.Printf("Warning: could not register the OpenAI provider: %v", err)
	}
	if err := providers.Register("gemini", gemini.NewFactory()); err != nil {
		log.Printf("Warning: could not register the Gemini provider: %v", err)
	}

	prompts := ai.NewPromptLibrary(cfgApp.PromptTemplatePath)

	buildDescriber := func(ctx context.Context, dir string, useAI bool) (describe.Describer, error) {
		gitService := git.NewGitService(git.NewShellRunner(), dir)

		var generator services.Generator
		if useAI {
			provider, err := providers.Resolve(ctx, cfgApp.AIProvider, cfgApp, translations)
			if err != nil {
				return nil, err
			}
			generator = ai.NewOrchestrator(cfgApp, translations, prompts, ui.NewConsole(translations), provider, cfg.SaveConfig)
		}

		return services.NewDescribeService(gitService, cfgApp, generator), nil
	}

	buildPublisher := func(ctx context.Context, dir string) (ports.PRPublisher, error) {
		if cfgApp.GitHubToken == "" {
			return nil, errs.ErrPublishFailed.WithError(errors.New("github token not configured"))
		}

		gitService := git.NewGitService(git.NewShellRunner(), dir)
		owner, repo, err := gitService.RepoInfo(ctx)
		if err != nil {
			return nil, err
		}
		return github.NewClient(ctx, cfgApp.GitHubToken, owner, repo), nil
	}

	registerCommand := registry.NewRegistry(cfgApp, translations)

	if err := registerCommand.Register("describe", describe.NewDescribeCommandFactory(buildDescriber, buildPublisher)); err != nil {
		log.Fatalf("Error registering the 'describe' command: %v", err)
	}
	if err := registerCommand.Register("config", configcmd.NewConfigCommandFactory()); err != nil {
		log.Fatalf("Error registering the 'config' command: %v", err)
	}

	commands := registerCommand.CreateCommands()

	return &cli.Command{
		Name:                  "mate-pr",
		Usage:                 translations.GetMessage("app_usage", 0, nil),
		Version:               version.FullVersion(),
		Description:           translations.GetMessage("app_description", 0, nil),
		Commands:              commands,
		EnableShellCompletion: true,
	}, translations, nil
}
