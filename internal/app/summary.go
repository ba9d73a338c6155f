package app

import "sort"

// ActiveRepositoriesLimit is the number of repositories shown as active.
const ActiveRepositoriesLimit = 5

// UnknownLanguage is shown for repositories without detected languages.
const UnknownLanguage = "Unknown"

// ActiveRepositories returns public repositories ordered by last update, newest first,
// annotated with top language and pull request trend.
func ActiveRepositories(repos []Repository, limit int) []ActiveRepository {
	public := make([]Repository, 0, len(repos))
	for _, r := range repos {
		if r.IsPrivate {
			continue
		}
		public = append(public, r)
	}
	sort.SliceStable(public, func(i, j int) bool {
		return public[i].UpdatedAt.After(public[j].UpdatedAt)
	})
	if limit >= 0 && len(public) > limit {
		public = public[:limit]
	}

	result := make([]ActiveRepository, 0, len(public))
	for _, r := range public {
		language, color := UnknownLanguage, DefaultLanguageColor
		if len(r.Languages) > 0 {
			language = r.Languages[0].Name
			if r.Languages[0].Color != "" {
				color = r.Languages[0].Color
			}
		}

		result = append(result, ActiveRepository{
			Name:      r.Name,
			URL:       r.URL,
			Stars:     r.Stars,
			Forks:     r.Forks,
			Language:  language,
			Color:     color,
			UpdatedAt: r.UpdatedAt,
			PushedAt:  r.PushedAt,
			Trend:     CalculateTrend(r.PullRequests),
		})
	}

	return result
}

// RepositorySummaries lists all repositories, private ones included, in document order.
func RepositorySummaries(repos []Repository) []RepositorySummary {
	result := make([]RepositorySummary, 0, len(repos))
	for _, r := range repos {
		languages := make([]LanguageEdge, len(r.Languages))
		copy(languages, r.Languages)

		result = append(result, RepositorySummary{
			Name:      r.Name,
			URL:       r.URL,
			IsPrivate: r.IsPrivate,
			Stars:     r.Stars,
			Forks:     r.Forks,
			UpdatedAt: r.UpdatedAt,
			PushedAt:  r.PushedAt,
			Languages: languages,
		})
	}

	return result
}

// BuildProfileSummary aggregates profile document into dashboard summary.
func BuildProfileSummary(doc *ProfileDocument) *ProfileSummary {
	current, longest := ComputeStreaks(doc.Calendar)

	contributions := doc.Calendar
	if contributions == nil {
		contributions = []ContributionDay{}
	}

	return &ProfileSummary{
		User:         doc.User,
		Repositories: RepositorySummaries(doc.Repositories),
		Languages:    AggregateLanguages(doc.Repositories),
		PullRequests: PullRequestStats{
			TotalAuthored: doc.TotalAuthoredPullRequests,
			TotalReviewed: doc.TotalReviewedPullRequests,
			Weekly:        GroupPullRequestsByWeek(doc.PullRequests),
			RecentWeeks:   RecentWeeklyActivity(doc.PullRequests, DashboardWeeksLimit),
		},
		ActiveRepositories: ActiveRepositories(doc.Repositories, ActiveRepositoriesLimit),
		Contributions:      contributions,
		Metrics: ContributionMetrics{
			TotalContributions:       doc.TotalContributions,
			TotalCommitContributions: doc.TotalCommitContributions,
			CurrentStreak:            current,
			LongestStreak:            longest,
		},
		RecentActivity: MergeRecentActivity(doc.PullRequests, doc.Repositories, RecentActivityLimit),
	}
}
