package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Tomas-vilte/MatePR/internal/config"
	"github.com/Tomas-vilte/MatePR/internal/domain/models"
	"github.com/Tomas-vilte/MatePR/internal/domain/ports"
	errs "github.com/Tomas-vilte/MatePR/internal/errors"
	"github.com/Tomas-vilte/MatePR/internal/i18n"
)

type stubProvider struct{}

func (stubProvider) GenerateText(context.Context, models.GenerationRequest) (string, error) {
	return "text", nil
}

type MockFactory struct {
	mock.Mock
	name string
}

func (m *MockFactory) CreateGenerator(ctx context.Context, cfg *config.Config, trans *i18n.Translations) (ports.TextGenerationProvider, error) {
	args := m.Called(ctx, cfg, trans)
	if provider := args.Get(0); provider != nil {
		return provider.(ports.TextGenerationProvider), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFactory) ValidateConfig(cfg *config.Config) error {
	args := m.Called(cfg)
	return args.Error(0)
}

func (m *MockFactory) Name() string {
	return m.name
}

func TestRegistry(t *testing.T) {
	t.Run("should register and retrieve a factory", func(t *testing.T) {
		registry := NewRegistry()
		factory := &MockFactory{name: "openai"}

		require.NoError(t, registry.Register("openai", factory))
		got, err := registry.Get("openai")

		require.NoError(t, err)
		assert.Same(t, factory, got.(*MockFactory))
	})

	t.Run("should reject a duplicate registration", func(t *testing.T) {
		registry := NewRegistry()
		require.NoError(t, registry.Register("openai", &MockFactory{name: "openai"}))

		err := registry.Register("openai", &MockFactory{name: "openai"})

		assert.Error(t, err)
	})

	t.Run("should fail unknown providers with the dedicated error", func(t *testing.T) {
		registry := NewRegistry()

		_, err := registry.Get("claude")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrUnsupportedProvider)
		assert.Contains(t, err.Error(), "claude")
	})

	t.Run("should list registered provider names", func(t *testing.T) {
		registry := NewRegistry()
		require.NoError(t, registry.Register("openai", &MockFactory{name: "openai"}))
		require.NoError(t, registry.Register("gemini", &MockFactory{name: "gemini"}))

		assert.ElementsMatch(t, []string{"openai", "gemini"}, registry.List())
	})

	t.Run("resolve validates before building", func(t *testing.T) {
		registry := NewRegistry()
		factory := &MockFactory{name: "openai"}
		factory.On("ValidateConfig", mock.Anything).Return(errs.ErrProviderNotConfigured)
		require.NoError(t, registry.Register("openai", factory))

		_, err := registry.Resolve(context.Background(), "openai", &config.Config{}, nil)

		assert.ErrorIs(t, err, errs.ErrProviderNotConfigured)
		factory.AssertNotCalled(t, "CreateGenerator", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("resolve returns the built provider", func(t *testing.T) {
		registry := NewRegistry()
		factory := &MockFactory{name: "openai"}
		factory.On("ValidateConfig", mock.Anything).Return(nil)
		factory.On("CreateGenerator", mock.Anything, mock.Anything, mock.Anything).Return(stubProvider{}, nil)
		require.NoError(t, registry.Register("openai", factory))

		provider, err := registry.Resolve(context.Background(), "openai", &config.Config{}, nil)

		require.NoError(t, err)
		assert.NotNil(t, provider)
		factory.AssertExpectations(t)
	})
}
