package ports

import "context"

// PRPublisher pushes a finished description to a hosted pull request.
type PRPublisher interface {
	PublishDescription(ctx context.Context, prNumber int, body string) error
}
