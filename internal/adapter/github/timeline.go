package github

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/m-zajac/ghinsights/internal/app"
)

// timelineQuery builds query with one commit history alias and one pull request search alias per window.
// All user supplied values are passed as variables.
func timelineQuery(owner string, name string, windows []app.MonthWindow) (string, map[string]interface{}) {
	vars := map[string]interface{}{
		"owner": owner,
		"name":  name,
	}

	var params, commits, prs strings.Builder
	params.WriteString("$owner: String!, $name: String!")
	for i, w := range windows {
		fmt.Fprintf(&params, ", $since%d: GitTimestamp!, $until%d: GitTimestamp!, $q%d: String!", i, i, i)
		fmt.Fprintf(&commits, "          c%d: history(since: $since%d, until: $until%d) { totalCount }\n", i, i, i)
		fmt.Fprintf(&prs, "  p%d: search(query: $q%d, type: ISSUE, first: 1) { issueCount }\n", i, i)

		vars[fmt.Sprintf("since%d", i)] = w.Since.Format(timestampFormat)
		vars[fmt.Sprintf("until%d", i)] = w.Until.Format(timestampFormat)
		vars[fmt.Sprintf("q%d", i)] = fmt.Sprintf(
			"repo:%s/%s is:pr created:>=%s created:<%s",
			owner, name, w.SinceDay(), w.UntilDay(),
		)
	}

	query := fmt.Sprintf(`query (%s) {
  repository(owner: $owner, name: $name) {
    defaultBranchRef {
      target {
        ... on Commit {
%s        }
      }
    }
  }
%s}`, params.String(), commits.String(), prs.String())

	return query, vars
}

const timestampFormat = "2006-01-02T15:04:05Z"

type timelineRepository struct {
	DefaultBranchRef *struct {
		Target map[string]*totalCount `json:"target"`
	} `json:"defaultBranchRef"`
}

type issueCount struct {
	IssueCount int `json:"issueCount"`
}

// RepositoryTimeline returns commit and pull request counts for every window, in windows order.
// Missing default branch or missing counters are reported as zeros.
func (c *Client) RepositoryTimeline(ctx context.Context, token string, owner string, name string, windows []app.MonthWindow) ([]app.TimelinePoint, error) {
	query, vars := timelineQuery(owner, name, windows)

	var data map[string]json.RawMessage
	if err := c.graphql(ctx, token, query, vars, &data); err != nil {
		return nil, fmt.Errorf("querying %s/%s timeline: %w", owner, name, err)
	}

	var repo timelineRepository
	if raw, ok := data["repository"]; ok {
		if err := json.Unmarshal(raw, &repo); err != nil {
			return nil, fmt.Errorf("unmarshalling repository: %w", err)
		}
	}

	points := make([]app.TimelinePoint, 0, len(windows))
	for i, w := range windows {
		point := app.TimelinePoint{Month: w.Label}

		if repo.DefaultBranchRef != nil {
			if tc := repo.DefaultBranchRef.Target[fmt.Sprintf("c%d", i)]; tc != nil {
				point.Commits = tc.TotalCount
			}
		}
		if raw, ok := data[fmt.Sprintf("p%d", i)]; ok {
			var ic issueCount
			if err := json.Unmarshal(raw, &ic); err != nil {
				return nil, fmt.Errorf("unmarshalling pull request count: %w", err)
			}
			point.PRs = ic.IssueCount
		}

		points = append(points, point)
	}

	return points, nil
}
