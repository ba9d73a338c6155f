package app

import "sort"

// RecentActivityLimit is the max length of recent activity feed.
const RecentActivityLimit = 5

// MergeRecentActivity merges pull requests and repositories' recent commits into one feed,
// newest first, truncated to limit items. Duplicates are not removed.
func MergeRecentActivity(prs []PullRequest, repos []Repository, limit int) []ActivityItem {
	items := make([]ActivityItem, 0, len(prs))
	for _, pr := range prs {
		items = append(items, ActivityItem{
			Type:       ActivityPullRequest,
			Repository: pr.Repository,
			Message:    pr.Title,
			Date:       pr.CreatedAt,
		})
	}
	for _, repo := range repos {
		for _, c := range repo.RecentCommits {
			name := c.Repository
			if name == "" {
				name = repo.Name
			}
			items = append(items, ActivityItem{
				Type:       ActivityCommit,
				Repository: name,
				Message:    c.Message,
				Date:       c.CommittedDate,
			})
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})
	if limit >= 0 && len(items) > limit {
		items = items[:limit]
	}

	return items
}
