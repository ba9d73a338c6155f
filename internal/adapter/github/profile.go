package github

import (
	"context"
	"fmt"
	"net/http"

	"github.com/m-zajac/ghinsights/internal/app"
)

const profileQuery = `
query ($login: String!) {
  user(login: $login) {
    login
    name
    bio
    avatarUrl
    followers { totalCount }
    repositories(first: 20, ownerAffiliations: OWNER, orderBy: {field: UPDATED_AT, direction: DESC}) {
      nodes {
        name
        url
        isPrivate
        stargazerCount
        forkCount
        updatedAt
        pushedAt
        languages(first: 10, orderBy: {field: SIZE, direction: DESC}) {
          edges {
            size
            node { name color }
          }
        }
        pullRequests(last: 14) {
          nodes { createdAt state merged }
        }
        defaultBranchRef {
          target {
            ... on Commit {
              history(first: 5) {
                nodes { messageHeadline committedDate }
              }
            }
          }
        }
      }
    }
    pullRequests(first: 30, orderBy: {field: CREATED_AT, direction: DESC}) {
      totalCount
      nodes {
        title
        url
        createdAt
        merged
        state
        repository { name }
      }
    }
    contributionsCollection {
      totalCommitContributions
      totalPullRequestContributions
      totalPullRequestReviewContributions
      contributionCalendar {
        totalContributions
        weeks {
          contributionDays { date contributionCount color }
        }
      }
    }
  }
}`

// ProfileDocument fetches user's profile, repositories, pull requests and contribution calendar in one query.
func (c *Client) ProfileDocument(ctx context.Context, token string, login string) (*app.ProfileDocument, error) {
	var resp profileResponse
	vars := map[string]interface{}{
		"login": login,
	}
	if err := c.graphql(ctx, token, profileQuery, vars, &resp); err != nil {
		return nil, fmt.Errorf("querying profile of %s: %w", login, err)
	}
	if resp.User == nil {
		return nil, &app.UpstreamAPIError{
			StatusCode: http.StatusNotFound,
			Message:    fmt.Sprintf("user %s not found", login),
		}
	}

	return resp.User.ToProfileDocument(), nil
}
