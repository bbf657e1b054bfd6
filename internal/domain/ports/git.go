package ports

import (
	"context"

	"github.com/Tomas-vilte/MatePR/internal/domain/models"
)

// CommandRunner is the process-invocation contract: run a git command line in
// a working directory and return trimmed standard output, or fail with the
// captured error text (stderr preferred).
type CommandRunner interface {
	Run(ctx context.Context, command string, dir string) (string, error)
}

// GitService collects the raw inputs of the pipeline from a repository.
type GitService interface {
	// StagedChanges parses `status --porcelain` into a change set of the
	// staged column only.
	StagedChanges(ctx context.Context) (models.ChangeSet, error)

	// StagedDiff returns the staged diff text.
	StagedDiff(ctx context.Context) (string, error)

	// ResolveBaseBranch verifies the requested branch, or falls back to main
	// then master when none is requested.
	ResolveBaseBranch(ctx context.Context, requested string) (string, error)

	// BranchChanges merges the committed-range change set (primary) with the
	// working-tree change set (secondary).
	BranchChanges(ctx context.Context, base string) (models.ChangeSet, error)

	// BranchDiff concatenates the committed-range diff with the working-tree
	// diff, range first.
	BranchDiff(ctx context.Context, base string) (string, error)

	// RepoInfo extracts owner and repository name from the origin remote.
	RepoInfo(ctx context.Context) (owner, repo string, err error)
}
