package registry

import (
	"context"
	"fmt"
	"sync"

	"github.com/Tomas-vilte/MatePR/internal/config"
	"github.com/Tomas-vilte/MatePR/internal/domain/ports"
	errs "github.com/Tomas-vilte/MatePR/internal/errors"
	"github.com/Tomas-vilte/MatePR/internal/i18n"
)

// ProviderFactory creates a text-generation provider from the configuration.
type ProviderFactory interface {
	// CreateGenerator builds the provider instance.
	CreateGenerator(ctx context.Context, cfg *config.Config, trans *i18n.Translations) (ports.TextGenerationProvider, error)

	// ValidateConfig checks that the configuration carries what this provider
	// needs before any call is attempted.
	ValidateConfig(cfg *config.Config) error

	// Name returns the provider identifier
	Name() string
}

// Registry maps provider identifiers to factories. Unknown identifiers fail
// with a dedicated unsupported-provider error, never a generic one.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]ProviderFactory
}

func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]ProviderFactory),
	}
}

func (r *Registry) Register(name string, factory ProviderFactory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("AI provider '%s' is already registered", name)
	}

	r.factories[name] = factory
	return nil
}

func (r *Registry) Get(name string) (ProviderFactory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.factories[name]
	if !exists {
		return nil, errs.ErrUnsupportedProvider.WithContext("provider", name)
	}

	return factory, nil
}

func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	providers := make([]string, 0, len(r.factories))
	for name := range r.factories {
		providers = append(providers, name)
	}
	return providers
}

// Resolve validates and builds the provider configured under name.
func (r *Registry) Resolve(ctx context.Context, name string, cfg *config.Config, trans *i18n.Translations) (ports.TextGenerationProvider, error) {
	factory, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	if err := factory.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return factory.CreateGenerator(ctx, cfg, trans)
}
