package app

import "time"

// PullRequestState is github's pull request state.
type PullRequestState string

// Pull request states.
const (
	PullRequestOpen   PullRequestState = "OPEN"
	PullRequestMerged PullRequestState = "MERGED"
	PullRequestClosed PullRequestState = "CLOSED"
)

// ActivityType tells what kind of event an ActivityItem is.
type ActivityType string

// Activity types.
const (
	ActivityCommit      ActivityType = "commit"
	ActivityPullRequest ActivityType = "pull-request"
)

// Identity describes github user.
type Identity struct {
	Login     string
	Name      string
	Bio       string
	AvatarURL string
	Followers int
}

// LanguageEdge is one entry of repository language breakdown.
type LanguageEdge struct {
	Name  string
	Size  int64
	Color string
}

// PullRequest is pull request data used for bucketing and activity feed.
type PullRequest struct {
	Title      string
	URL        string
	Repository string
	CreatedAt  time.Time
	State      PullRequestState
	Merged     bool
}

// Commit is a default branch commit.
type Commit struct {
	Repository    string
	Message       string
	CommittedDate time.Time
}

// Repository is a user owned repository with nested activity data.
type Repository struct {
	Name      string
	URL       string
	IsPrivate bool
	Stars     int
	Forks     int
	UpdatedAt time.Time
	PushedAt  time.Time
	Languages []LanguageEdge

	// PullRequests holds the most recent pull requests of the repository.
	PullRequests []PullRequest

	// RecentCommits holds the most recent commits on the default branch.
	RecentCommits []Commit
}

// ContributionDay is one day of contribution calendar.
type ContributionDay struct {
	Date  string
	Count int
	Color string
}

// ProfileDocument is normalized github profile data, before aggregation.
type ProfileDocument struct {
	User         Identity
	Repositories []Repository
	PullRequests []PullRequest

	TotalAuthoredPullRequests int
	TotalReviewedPullRequests int
	TotalCommitContributions  int
	TotalContributions        int

	Calendar []ContributionDay
}

// LanguageShare is language percentage share across user's repositories.
type LanguageShare struct {
	Name       string
	Percentage float64
	Color      string
}

// WeeklyPRActivity is pull request counters for one week bucket.
type WeeklyPRActivity struct {
	Week   string
	Opened int
	Merged int
	Closed int
}

// PullRequestStats aggregates user's pull request activity.
type PullRequestStats struct {
	TotalAuthored int
	TotalReviewed int

	// Weekly is bucketed by week of month, in first seen order.
	Weekly []WeeklyPRActivity

	// RecentWeeks is bucketed by ISO week, sorted, limited to last few weeks.
	RecentWeeks []WeeklyPRActivity
}

// ActiveRepository is repository summary with pull request trend.
type ActiveRepository struct {
	Name      string
	URL       string
	Stars     int
	Forks     int
	Language  string
	Color     string
	UpdatedAt time.Time
	PushedAt  time.Time
	Trend     string
}

// ActivityItem is one entry of recent activity feed.
type ActivityItem struct {
	Type       ActivityType
	Repository string
	Message    string
	Date       time.Time
}

// ContributionMetrics holds totals and streaks computed from contribution calendar.
type ContributionMetrics struct {
	TotalContributions       int
	TotalCommitContributions int
	CurrentStreak            int
	LongestStreak            int
}

// RepositorySummary is owned repository listed as is in profile summary.
type RepositorySummary struct {
	Name      string
	URL       string
	IsPrivate bool
	Stars     int
	Forks     int
	UpdatedAt time.Time
	PushedAt  time.Time
	Languages []LanguageEdge
}

// ProfileSummary is display ready user dashboard data.
type ProfileSummary struct {
	User               Identity
	Repositories       []RepositorySummary
	Languages          []LanguageShare
	PullRequests       PullRequestStats
	ActiveRepositories []ActiveRepository
	Contributions      []ContributionDay
	Metrics            ContributionMetrics
	RecentActivity     []ActivityItem
}

// TimelinePoint is repository activity in one calendar month.
type TimelinePoint struct {
	Month   string
	Commits int
	PRs     int
}

// DailyCommits is commit count for one week day.
type DailyCommits struct {
	Day     string
	Commits int
}

// CommitTrend is last 7 days commit activity.
type CommitTrend struct {
	Days  []DailyCommits
	Total int
}

// RepositoryRef identifies repository.
type RepositoryRef struct {
	Owner string
	Name  string
}
