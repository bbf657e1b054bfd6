package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Tomas-vilte/MatePR/internal/config"
	"github.com/Tomas-vilte/MatePR/internal/domain/models"
	errs "github.com/Tomas-vilte/MatePR/internal/errors"
)

type MockGitService struct {
	mock.Mock
}

func (m *MockGitService) StagedChanges(ctx context.Context) (models.ChangeSet, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.ChangeSet), args.Error(1)
}

func (m *MockGitService) StagedDiff(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGitService) ResolveBaseBranch(ctx context.Context, requested string) (string, error) {
	args := m.Called(ctx, requested)
	return args.String(0), args.Error(1)
}

func (m *MockGitService) BranchChanges(ctx context.Context, base string) (models.ChangeSet, error) {
	args := m.Called(ctx, base)
	return args.Get(0).(models.ChangeSet), args.Error(1)
}

func (m *MockGitService) BranchDiff(ctx context.Context, base string) (string, error) {
	args := m.Called(ctx, base)
	return args.String(0), args.Error(1)
}

func (m *MockGitService) RepoInfo(ctx context.Context) (string, string, error) {
	args := m.Called(ctx)
	return args.String(0), args.String(1), args.Error(2)
}

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, baseline string, set models.ChangeSet, diff models.AIPreparedDiff, tone string) (string, error) {
	args := m.Called(ctx, baseline, set, diff, tone)
	return args.String(0), args.Error(1)
}

func stagedSet() models.ChangeSet {
	return models.ChangeSet{Records: []models.ChangeRecord{
		{Status: models.StatusAdded, DisplayPath: "api/routes/users.ts", MergeKey: "api/routes/users.ts"},
		{Status: models.StatusModified, DisplayPath: "README.md", MergeKey: "README.md"},
	}}
}

func serviceConfig() *config.Config {
	return &config.Config{
		MaxDiffLines:   2000,
		MaxPromptChars: 24000,
		Tone:           "neutral",
	}
}

func TestDescribeStaged(t *testing.T) {
	t.Run("should assemble the staged report", func(t *testing.T) {
		// Arrange
		git := new(MockGitService)
		git.On("StagedChanges", mock.Anything).Return(stagedSet(), nil)
		git.On("StagedDiff", mock.Anything).Return("+one\n+two\n-gone\n", nil)
		service := NewDescribeService(git, serviceConfig(), nil)

		// Act
		result, err := service.Describe(context.Background(), DescribeOptions{})

		// Assert
		require.NoError(t, err)
		assert.Contains(t, result.Description, "Staged changes in 2 files.")
		assert.Contains(t, result.Description, "+2 / -1 lines.")
		assert.Equal(t, 2, result.ChangeSet.Len())
		git.AssertNotCalled(t, "ResolveBaseBranch", mock.Anything, mock.Anything)
	})

	t.Run("should fail when nothing is staged", func(t *testing.T) {
		git := new(MockGitService)
		git.On("StagedChanges", mock.Anything).Return(models.ChangeSet{}, nil)
		service := NewDescribeService(git, serviceConfig(), nil)

		_, err := service.Describe(context.Background(), DescribeOptions{})

		assert.ErrorIs(t, err, errs.ErrNoChanges)
		git.AssertNotCalled(t, "StagedDiff", mock.Anything)
	})

	t.Run("should propagate collection failures", func(t *testing.T) {
		git := new(MockGitService)
		git.On("StagedChanges", mock.Anything).Return(models.ChangeSet{}, errs.ErrNotARepository)
		service := NewDescribeService(git, serviceConfig(), nil)

		_, err := service.Describe(context.Background(), DescribeOptions{})

		assert.ErrorIs(t, err, errs.ErrNotARepository)
	})
}

func TestDescribeBranch(t *testing.T) {
	t.Run("should compare against the resolved base", func(t *testing.T) {
		git := new(MockGitService)
		git.On("ResolveBaseBranch", mock.Anything, "").Return("main", nil)
		git.On("BranchChanges", mock.Anything, "main").Return(stagedSet(), nil)
		git.On("BranchDiff", mock.Anything, "main").Return("+x\n", nil)
		service := NewDescribeService(git, serviceConfig(), nil)

		result, err := service.Describe(context.Background(), DescribeOptions{UseBranch: true})

		require.NoError(t, err)
		assert.Contains(t, result.Description, "Changes against main in 2 files.")
	})

	t.Run("a requested base implies branch mode", func(t *testing.T) {
		git := new(MockGitService)
		git.On("ResolveBaseBranch", mock.Anything, "develop").Return("develop", nil)
		git.On("BranchChanges", mock.Anything, "develop").Return(stagedSet(), nil)
		git.On("BranchDiff", mock.Anything, "develop").Return("+x\n", nil)
		service := NewDescribeService(git, serviceConfig(), nil)

		result, err := service.Describe(context.Background(), DescribeOptions{BaseBranch: "develop"})

		require.NoError(t, err)
		assert.Contains(t, result.Description, "Changes against develop")
		git.AssertNotCalled(t, "StagedChanges", mock.Anything)
	})

	t.Run("should fail when the range has no changes", func(t *testing.T) {
		git := new(MockGitService)
		git.On("ResolveBaseBranch", mock.Anything, "").Return("main", nil)
		git.On("BranchChanges", mock.Anything, "main").Return(models.ChangeSet{}, nil)
		service := NewDescribeService(git, serviceConfig(), nil)

		_, err := service.Describe(context.Background(), DescribeOptions{UseBranch: true})

		assert.ErrorIs(t, err, errs.ErrNoRangeChanges)
		git.AssertNotCalled(t, "BranchDiff", mock.Anything, mock.Anything)
	})

	t.Run("should fail when the base cannot be resolved", func(t *testing.T) {
		git := new(MockGitService)
		git.On("ResolveBaseBranch", mock.Anything, "nope").Return("", errs.ErrBaseBranchNotFound)
		service := NewDescribeService(git, serviceConfig(), nil)

		_, err := service.Describe(context.Background(), DescribeOptions{BaseBranch: "nope"})

		assert.ErrorIs(t, err, errs.ErrBaseBranchNotFound)
	})
}

func TestDescribeWithGenerator(t *testing.T) {
	t.Run("should hand the baseline and bounded diff to the generator", func(t *testing.T) {
		git := new(MockGitService)
		git.On("StagedChanges", mock.Anything).Return(stagedSet(), nil)
		git.On("StagedDiff", mock.Anything).Return("+one\n", nil)
		generator := new(MockGenerator)
		generator.On("Generate", mock.Anything, mock.MatchedBy(func(baseline string) bool {
			return strings.Contains(baseline, "## Summary")
		}), mock.Anything, mock.Anything, "friendly").Return("refined", nil)
		service := NewDescribeService(git, serviceConfig(), generator)

		result, err := service.Describe(context.Background(), DescribeOptions{UseAI: true, Tone: "friendly"})

		require.NoError(t, err)
		assert.Equal(t, "refined", result.Description)
		generator.AssertExpectations(t)
	})

	t.Run("should default the tone from the configuration", func(t *testing.T) {
		git := new(MockGitService)
		git.On("StagedChanges", mock.Anything).Return(stagedSet(), nil)
		git.On("StagedDiff", mock.Anything).Return("+one\n", nil)
		generator := new(MockGenerator)
		generator.On("Generate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, "neutral").
			Return("refined", nil)
		service := NewDescribeService(git, serviceConfig(), generator)

		_, err := service.Describe(context.Background(), DescribeOptions{UseAI: true})

		require.NoError(t, err)
		generator.AssertExpectations(t)
	})

	t.Run("should bound the prompt diff by characters", func(t *testing.T) {
		cfg := serviceConfig()
		cfg.MaxPromptChars = 4
		git := new(MockGitService)
		git.On("StagedChanges", mock.Anything).Return(stagedSet(), nil)
		git.On("StagedDiff", mock.Anything).Return("+a lot of diff text\n", nil)
		generator := new(MockGenerator)
		generator.On("Generate", mock.Anything, mock.Anything, mock.Anything, mock.MatchedBy(func(diff models.AIPreparedDiff) bool {
			return diff.TruncatedByChars && len(diff.Text) == 4
		}), mock.Anything).Return("refined", nil)
		service := NewDescribeService(git, cfg, generator)

		_, err := service.Describe(context.Background(), DescribeOptions{UseAI: true})

		require.NoError(t, err)
		generator.AssertExpectations(t)
	})

	t.Run("generator errors are terminal", func(t *testing.T) {
		git := new(MockGitService)
		git.On("StagedChanges", mock.Anything).Return(stagedSet(), nil)
		git.On("StagedDiff", mock.Anything).Return("+one\n", nil)
		generator := new(MockGenerator)
		generator.On("Generate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("", errs.ErrUserCanceled)
		service := NewDescribeService(git, serviceConfig(), generator)

		_, err := service.Describe(context.Background(), DescribeOptions{UseAI: true})

		assert.ErrorIs(t, err, errs.ErrUserCanceled)
	})

	t.Run("without the flag the generator never runs", func(t *testing.T) {
		git := new(MockGitService)
		git.On("StagedChanges", mock.Anything).Return(stagedSet(), nil)
		git.On("StagedDiff", mock.Anything).Return("+one\n", nil)
		generator := new(MockGenerator)
		service := NewDescribeService(git, serviceConfig(), generator)

		result, err := service.Describe(context.Background(), DescribeOptions{})

		require.NoError(t, err)
		assert.Contains(t, result.Description, "## Summary")
		generator.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("the files section follows the option", func(t *testing.T) {
		git := new(MockGitService)
		git.On("StagedChanges", mock.Anything).Return(stagedSet(), nil)
		git.On("StagedDiff", mock.Anything).Return("+one\n", nil)
		service := NewDescribeService(git, serviceConfig(), nil)

		result, err := service.Describe(context.Background(), DescribeOptions{IncludeFiles: true})

		require.NoError(t, err)
		assert.Contains(t, result.Description, "## Files changed")
		assert.Contains(t, result.Description, "- added: api/routes/users.ts")
	})
}
