package describe

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/Tomas-vilte/MatePR/internal/config"
	"github.com/Tomas-vilte/MatePR/internal/domain/ports"
	errs "github.com/Tomas-vilte/MatePR/internal/errors"
	"github.com/Tomas-vilte/MatePR/internal/i18n"
	"github.com/Tomas-vilte/MatePR/internal/services"
	"github.com/Tomas-vilte/MatePR/internal/ui"
)

type (
	// Describer runs the description pipeline.
	Describer interface {
		Describe(ctx context.Context, opts services.DescribeOptions) (*services.DescribeResult, error)
	}

	// DescriberBuilder assembles the pipeline for one invocation, wiring the
	// AI layer only when requested.
	DescriberBuilder func(ctx context.Context, dir string, useAI bool) (Describer, error)

	// PublisherBuilder assembles the PR publisher for the repository at dir.
	PublisherBuilder func(ctx context.Context, dir string) (ports.PRPublisher, error)
)

type DescribeCommandFactory struct {
	buildDescriber DescriberBuilder
	buildPublisher PublisherBuilder
}

func NewDescribeCommandFactory(buildDescriber DescriberBuilder, buildPublisher PublisherBuilder) *DescribeCommandFactory {
	return &DescribeCommandFactory{
		buildDescriber: buildDescriber,
		buildPublisher: buildPublisher,
	}
}

func (f *DescribeCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "describe",
		Aliases: []string{"d"},
		Usage:   t.GetMessage("describe_command_usage", 0, nil),
		Flags:   f.createFlags(cfg, t),
		Action:  f.createAction(cfg, t),
	}
}

func (f *DescribeCommandFactory) createFlags(cfg *config.Config, t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "base",
			Aliases: []string{"b"},
			Usage:   t.GetMessage("describe_base_flag_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "branch",
			Usage: t.GetMessage("describe_branch_flag_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "ai",
			Usage: t.GetMessage("describe_ai_flag_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "files",
			Usage: t.GetMessage("describe_files_flag_usage", 0, nil),
		},
		&cli.StringFlag{
			Name:  "tone",
			Usage: t.GetMessage("describe_tone_flag_usage", 0, nil),
			Value: cfg.Tone,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   t.GetMessage("describe_output_flag_usage", 0, nil),
		},
		&cli.IntFlag{
			Name:  "pr",
			Usage: t.GetMessage("describe_pr_flag_usage", 0, nil),
		},
		&cli.StringFlag{
			Name:    "lang",
			Aliases: []string{"l"},
			Usage:   t.GetMessage("describe_lang_flag_usage", 0, nil),
			Value:   cfg.Language,
		},
	}
}

func (f *DescribeCommandFactory) createAction(cfg *config.Config, t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		if lang := command.String("lang"); lang != "" && lang != cfg.Language {
			if err := t.SetLanguage(lang); err != nil {
				return err
			}
		}

		dir, err := os.Getwd()
		if err != nil {
			return errs.ErrNoWorkspace.WithError(err)
		}

		useAI := command.Bool("ai")
		describer, err := f.buildDescriber(ctx, dir, useAI)
		if err != nil {
			return err
		}

		opts := services.DescribeOptions{
			BaseBranch:   command.String("base"),
			UseBranch:    command.Bool("branch"),
			IncludeFiles: command.Bool("files"),
			UseAI:        useAI,
			Tone:         command.String("tone"),
		}

		collecting := t.GetMessage("collecting_changes", 0, nil)
		var spin *ui.SmartSpinner
		if useAI {
			// The AI gates read replies from stdin, so no spinner runs while
			// they can prompt; the generation pass shows its own indicator.
			ui.PrintInfo(collecting)
		} else {
			spin = ui.NewSmartSpinner(collecting)
			spin.Start()
		}
		result, err := describer.Describe(ctx, opts)
		if spin != nil {
			spin.Stop()
		}
		if err != nil {
			if errors.Is(err, errs.ErrUserCanceled) {
				ui.PrintInfo(t.GetMessage("operation_cancelled", 0, nil))
				return nil
			}
			return err
		}

		if output := command.String("output"); output != "" {
			if err := os.WriteFile(output, []byte(result.Description), 0644); err != nil {
				return err
			}
			ui.PrintSuccess(t.GetMessage("report_written", 0, map[string]interface{}{"Path": output}))
		} else {
			fmt.Println(result.Description)
		}

		if prNumber := int(command.Int("pr")); prNumber > 0 {
			f.publish(ctx, t, dir, prNumber, result.Description)
		}

		return nil
	}
}

// publish pushes the description to the PR. Failures here are warnings, the
// description was already emitted.
func (f *DescribeCommandFactory) publish(ctx context.Context, t *i18n.Translations, dir string, prNumber int, body string) {
	publisher, err := f.buildPublisher(ctx, dir)
	if err == nil {
		err = publisher.PublishDescription(ctx, prNumber, body)
	}
	if err != nil {
		ui.PrintWarning(t.GetMessage("publish_warning", 0, map[string]interface{}{"Error": err.Error()}))
		return
	}
	ui.PrintSuccess(t.GetMessage("publish_success", 0, map[string]interface{}{"PR": prNumber}))
}
