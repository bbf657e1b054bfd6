package github

import (
	"context"

	"github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/Tomas-vilte/MatePR/internal/domain/ports"
	errs "github.com/Tomas-vilte/MatePR/internal/errors"
)

var _ ports.PRPublisher = (*Client)(nil)

// Client publishes finished descriptions to GitHub pull requests.
type Client struct {
	gh    *github.Client
	owner string
	repo  string
}

func NewClient(ctx context.Context, token, owner, repo string) *Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)

	return &Client{
		gh:    github.NewClient(tc),
		owner: owner,
		repo:  repo,
	}
}

// PublishDescription replaces the body of the pull request with the report.
func (c *Client) PublishDescription(ctx context.Context, prNumber int, body string) error {
	_, _, err := c.gh.PullRequests.Edit(ctx, c.owner, c.repo, prNumber, &github.PullRequest{
		Body: github.Ptr(body),
	})
	if err != nil {
		return errs.ErrPublishFailed.WithError(err)
	}
	return nil
}
