package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	gogithub "github.com/google/go-github/v68/github"
	"github.com/m-zajac/ghinsights/internal/app"
)

const restPageSize = 100

// UserRepositories lists all repositories of given user, following pagination.
func (c *Client) UserRepositories(ctx context.Context, token string, username string) ([]app.RepositoryRef, error) {
	rest := c.rest.WithAuthToken(token)
	opts := &gogithub.RepositoryListByUserOptions{
		ListOptions: gogithub.ListOptions{PerPage: restPageSize},
	}

	var refs []app.RepositoryRef
	for {
		repos, resp, err := rest.Repositories.ListByUser(ctx, username, opts)
		if err != nil {
			return nil, fmt.Errorf("listing repositories of %s: %w", username, restError(err))
		}
		for _, r := range repos {
			refs = append(refs, app.RepositoryRef{
				Owner: r.GetOwner().GetLogin(),
				Name:  r.GetName(),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	if refs == nil {
		refs = []app.RepositoryRef{}
	}

	return refs, nil
}

// CommitDates returns author dates of commits on repository's default branch made after since.
func (c *Client) CommitDates(ctx context.Context, token string, owner string, name string, since time.Time) ([]time.Time, error) {
	rest := c.rest.WithAuthToken(token)
	opts := &gogithub.CommitsListOptions{
		Since:       since,
		ListOptions: gogithub.ListOptions{PerPage: restPageSize},
	}

	dates := []time.Time{}
	for {
		commits, resp, err := rest.Repositories.ListCommits(ctx, owner, name, opts)
		if err != nil {
			return nil, fmt.Errorf("listing commits of %s/%s: %w", owner, name, restError(err))
		}
		for _, commit := range commits {
			date := commit.GetCommit().GetAuthor().GetDate().Time
			if date.IsZero() {
				continue
			}
			dates = append(dates, date)
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return dates, nil
}

// RepositoryDetails returns repository object exactly as github sent it.
func (c *Client) RepositoryDetails(ctx context.Context, token string, owner string, name string) (json.RawMessage, error) {
	rest := c.rest.WithAuthToken(token)

	u := fmt.Sprintf("repos/%s/%s", url.PathEscape(owner), url.PathEscape(name))
	req, err := rest.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	var details json.RawMessage
	if _, err := rest.Do(ctx, req, &details); err != nil {
		return nil, fmt.Errorf("getting %s/%s: %w", owner, name, restError(err))
	}

	return details, nil
}

// restError maps go-github errors to app errors.
func restError(err error) error {
	if app.IsTooManyRequestsError(err) {
		return err
	}

	var rateErr *gogithub.RateLimitError
	if errors.As(err, &rateErr) {
		return &app.UpstreamAPIError{
			StatusCode: responseStatus(rateErr.Response, http.StatusForbidden),
			Message:    "rate limit exceeded",
		}
	}
	var abuseErr *gogithub.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return &app.UpstreamAPIError{
			StatusCode: responseStatus(abuseErr.Response, http.StatusForbidden),
			Message:    abuseErr.Message,
		}
	}
	var respErr *gogithub.ErrorResponse
	if errors.As(err, &respErr) {
		return &app.UpstreamAPIError{
			StatusCode: responseStatus(respErr.Response, http.StatusBadGateway),
			Message:    respErr.Message,
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &app.TransportError{Err: err}
	}

	return err
}

func responseStatus(resp *http.Response, fallback int) int {
	if resp == nil {
		return fallback
	}
	return resp.StatusCode
}
