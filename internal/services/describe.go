package services

import (
	"context"

	"github.com/Tomas-vilte/MatePR/internal/classify"
	"github.com/Tomas-vilte/MatePR/internal/config"
	"github.com/Tomas-vilte/MatePR/internal/diff"
	"github.com/Tomas-vilte/MatePR/internal/domain/models"
	"github.com/Tomas-vilte/MatePR/internal/domain/ports"
	errs "github.com/Tomas-vilte/MatePR/internal/errors"
	"github.com/Tomas-vilte/MatePR/internal/report"
)

// Generator is the optional refinement pass over the baseline report.
type Generator interface {
	Generate(ctx context.Context, baseline string, set models.ChangeSet, diff models.AIPreparedDiff, tone string) (string, error)
}

type (
	// DescribeOptions select the collection source and output shape of one
	// invocation.
	DescribeOptions struct {
		BaseBranch   string
		UseBranch    bool
		IncludeFiles bool
		UseAI        bool
		Tone         string
	}

	// DescribeResult is the finished description plus what it was built from.
	DescribeResult struct {
		Description string
		ChangeSet   models.ChangeSet
	}
)

// DescribeService runs the whole pipeline: collect raw git text, parse and
// merge the change set, bound the diff, classify, assemble the report, and
// optionally refine it through the generator.
type DescribeService struct {
	git       ports.GitService
	cfg       *config.Config
	generator Generator
}

func NewDescribeService(git ports.GitService, cfg *config.Config, generator Generator) *DescribeService {
	return &DescribeService{
		git:       git,
		cfg:       cfg,
		generator: generator,
	}
}

func (s *DescribeService) Describe(ctx context.Context, opts DescribeOptions) (*DescribeResult, error) {
	set, rawDiff, assembleOpts, err := s.collect(ctx, opts)
	if err != nil {
		return nil, err
	}

	prepared := diff.TruncateByLines(rawDiff, s.cfg.MaxDiffLines)
	stats := diff.CountStats(prepared.Text)
	classification := classify.Classify(set)

	baseline := report.Assemble(set, stats, prepared, classification, assembleOpts).Markdown()

	final := baseline
	if opts.UseAI && s.generator != nil {
		aiDiff := diff.TruncateByChars(prepared, s.cfg.MaxPromptChars)

		tone := opts.Tone
		if tone == "" {
			tone = s.cfg.Tone
		}

		final, err = s.generator.Generate(ctx, baseline, set, aiDiff, tone)
		if err != nil {
			return nil, err
		}
	}

	return &DescribeResult{Description: final, ChangeSet: set}, nil
}

// collect gathers the change set and raw diff for the selected source. Any
// failure here is terminal for the invocation.
func (s *DescribeService) collect(ctx context.Context, opts DescribeOptions) (models.ChangeSet, string, report.Options, error) {
	includeFiles := opts.IncludeFiles || s.cfg.IncludeFilesSection

	if opts.UseBranch || opts.BaseBranch != "" {
		base, err := s.git.ResolveBaseBranch(ctx, opts.BaseBranch)
		if err != nil {
			return models.ChangeSet{}, "", report.Options{}, err
		}

		set, err := s.git.BranchChanges(ctx, base)
		if err != nil {
			return models.ChangeSet{}, "", report.Options{}, err
		}
		if set.IsEmpty() {
			return models.ChangeSet{}, "", report.Options{}, errs.ErrNoRangeChanges.WithContext("base", base)
		}

		rawDiff, err := s.git.BranchDiff(ctx, base)
		if err != nil {
			return models.ChangeSet{}, "", report.Options{}, err
		}

		return set, rawDiff, report.Options{
			Source:       report.SourceBranch,
			BaseBranch:   base,
			IncludeFiles: includeFiles,
		}, nil
	}

	set, err := s.git.StagedChanges(ctx)
	if err != nil {
		return models.ChangeSet{}, "", report.Options{}, err
	}
	if set.IsEmpty() {
		return models.ChangeSet{}, "", report.Options{}, errs.ErrNoChanges
	}

	rawDiff, err := s.git.StagedDiff(ctx)
	if err != nil {
		return models.ChangeSet{}, "", report.Options{}, err
	}

	return set, rawDiff, report.Options{
		Source:       report.SourceStaged,
		IncludeFiles: includeFiles,
	}, nil
}
