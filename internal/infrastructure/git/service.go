package git

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/Tomas-vilte/MatePR/internal/changeset"
	"github.com/Tomas-vilte/MatePR/internal/domain/models"
	"github.com/Tomas-vilte/MatePR/internal/domain/ports"
	errs "github.com/Tomas-vilte/MatePR/internal/errors"
)

var _ ports.GitService = (*GitService)(nil)

// GitService issues the git commands of the collection phase through the
// runner contract. All commands run in the workspace directory.
type GitService struct {
	runner ports.CommandRunner
	dir    string
}

func NewGitService(runner ports.CommandRunner, dir string) *GitService {
	return &GitService{runner: runner, dir: dir}
}

func (s *GitService) StagedChanges(ctx context.Context) (models.ChangeSet, error) {
	out, err := s.runner.Run(ctx, "status --porcelain", s.dir)
	if err != nil {
		return models.ChangeSet{}, err
	}
	return changeset.Merge(changeset.ParsePorcelainStatus(out), nil), nil
}

func (s *GitService) StagedDiff(ctx context.Context) (string, error) {
	return s.runner.Run(ctx, "diff --staged --no-color", s.dir)
}

// ResolveBaseBranch verifies the requested branch exists, or walks the
// main/master fallback when no branch was requested.
func (s *GitService) ResolveBaseBranch(ctx context.Context, requested string) (string, error) {
	if requested != "" {
		if s.hasBranch(ctx, requested) {
			return requested, nil
		}
		return "", errs.ErrBaseBranchNotFound.WithContext("branch", requested)
	}

	for _, candidate := range []string{"main", "master"} {
		if s.hasBranch(ctx, candidate) {
			return candidate, nil
		}
	}
	return "", errs.ErrBaseBranchNotFound
}

func (s *GitService) hasBranch(ctx context.Context, branch string) bool {
	_, err := s.runner.Run(ctx, "show-ref --verify "+Quote("refs/heads/"+branch), s.dir)
	return err == nil
}

// BranchChanges merges the committed-range change set (primary) with the
// working-tree change set (secondary); history-reported statuses win over
// possibly stale working-tree status for the same file.
func (s *GitService) BranchChanges(ctx context.Context, base string) (models.ChangeSet, error) {
	rangeOut, err := s.runner.Run(ctx, "diff --name-status "+Quote(base+"...HEAD")+" --no-color", s.dir)
	if err != nil {
		return models.ChangeSet{}, err
	}

	workingOut, err := s.runner.Run(ctx, "diff --name-status HEAD", s.dir)
	if err != nil {
		return models.ChangeSet{}, err
	}

	return changeset.Merge(
		changeset.ParseNameStatus(rangeOut),
		changeset.ParseNameStatus(workingOut),
	), nil
}

// BranchDiff concatenates the committed-range diff with the working-tree
// diff, range first.
func (s *GitService) BranchDiff(ctx context.Context, base string) (string, error) {
	rangeDiff, err := s.runner.Run(ctx, "diff "+Quote(base+"...HEAD")+" --no-color", s.dir)
	if err != nil {
		return "", err
	}

	workingDiff, err := s.runner.Run(ctx, "diff HEAD --no-color", s.dir)
	if err != nil {
		return "", err
	}

	if rangeDiff == "" {
		return workingDiff, nil
	}
	if workingDiff == "" {
		return rangeDiff, nil
	}
	return rangeDiff + "\n" + workingDiff, nil
}

var (
	sshRemoteRe   = regexp.MustCompile(`git@[^:]+:([^/]+)/(.+?)(?:\.git)?$`)
	httpsRemoteRe = regexp.MustCompile(`https://[^/]+/([^/]+)/(.+?)(?:\.git)?$`)
)

// RepoInfo extracts owner and repository name from the origin remote URL.
func (s *GitService) RepoInfo(ctx context.Context) (string, string, error) {
	out, err := s.runner.Run(ctx, "remote get-url origin", s.dir)
	if err != nil {
		return "", "", errs.ErrRepoInfo.WithError(err)
	}

	url := strings.TrimSpace(out)
	for _, re := range []*regexp.Regexp{sshRemoteRe, httpsRemoteRe} {
		if matches := re.FindStringSubmatch(url); len(matches) == 3 {
			return matches[1], matches[2], nil
		}
	}
	return "", "", errs.ErrRepoInfo.WithError(errors.New(url))
}
