package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorMatching(t *testing.T) {
	t.Run("sentinels survive WithError copies", func(t *testing.T) {
		wrapped := ErrGenerationFailed.WithError(errors.New("boom"))

		assert.ErrorIs(t, wrapped, ErrGenerationFailed)
	})

	t.Run("sentinels survive WithContext copies", func(t *testing.T) {
		wrapped := ErrBaseBranchNotFound.WithContext("branch", "develop")

		assert.ErrorIs(t, wrapped, ErrBaseBranchNotFound)
	})

	t.Run("sentinels survive fmt wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("during collection: %w", ErrNoChanges)

		assert.ErrorIs(t, wrapped, ErrNoChanges)
	})

	t.Run("different sentinels do not match each other", func(t *testing.T) {
		assert.NotErrorIs(t, ErrNoChanges, ErrNoRangeChanges)
		assert.NotErrorIs(t, ErrGenerationFailed, ErrInvalidResponse)
	})

	t.Run("the underlying cause stays reachable", func(t *testing.T) {
		cause := errors.New("connection refused")
		wrapped := ErrGenerationFailed.WithError(cause)

		assert.ErrorIs(t, wrapped, cause)
	})
}

func TestAppErrorMessage(t *testing.T) {
	t.Run("includes the type and message", func(t *testing.T) {
		err := NewAppError(TypeGit, "Git command failed", nil)

		assert.Equal(t, "GIT: Git command failed", err.Error())
	})

	t.Run("appends the underlying error", func(t *testing.T) {
		err := NewAppError(TypeAI, "request failed", errors.New("timeout"))

		assert.Equal(t, "AI: request failed (timeout)", err.Error())
	})

	t.Run("appends the detail context entry", func(t *testing.T) {
		err := NewCommandError("fatal: bad revision", errors.New("exit status 128"))

		assert.Contains(t, err.Error(), "fatal: bad revision")
	})
}

func TestAppErrorBuilders(t *testing.T) {
	t.Run("WithContext copies instead of mutating", func(t *testing.T) {
		base := NewAppError(TypeAI, "base", nil)

		derived := base.WithContext("provider", "openai")

		assert.Nil(t, base.Context)
		require.NotNil(t, derived.Context)
		assert.Equal(t, "openai", derived.Context["provider"])
	})

	t.Run("WithSuggestion keeps everything else", func(t *testing.T) {
		cause := errors.New("boom")
		base := NewAppError(TypeVCS, "publish failed", cause)

		derived := base.WithSuggestion("check the token")

		assert.Equal(t, "check the token", derived.Suggestion)
		assert.Equal(t, base.Message, derived.Message)
		assert.ErrorIs(t, derived, cause)
	})
}
