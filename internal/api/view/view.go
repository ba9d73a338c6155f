// Package view holds JSON shapes returned by http and grpc transports.
package view

import (
	"encoding/json"
	"time"

	"github.com/m-zajac/ghinsights/internal/app"
)

// Profile is dashboard summary response.
type Profile struct {
	User           User           `json:"user"`
	Repos          []Repo         `json:"repos"`
	ActiveRepos    []ActiveRepo   `json:"activeRepos"`
	Languages      []Language     `json:"languages"`
	PullRequests   int            `json:"pullRequests"`
	PRActivity     PRActivity     `json:"prActivity"`
	Contributions  []Contribution `json:"contributions"`
	Metrics        Metrics        `json:"metrics"`
	RecentActivity []Activity     `json:"recentActivity"`
}

// User is profile owner identity.
type User struct {
	Login     string `json:"login"`
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatarUrl"`
	Followers int    `json:"followers"`
}

// Repo is owned repository as returned by github.
type Repo struct {
	Name           string         `json:"name"`
	URL            string         `json:"url"`
	IsPrivate      bool           `json:"isPrivate"`
	StargazerCount int            `json:"stargazerCount"`
	ForkCount      int            `json:"forkCount"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	PushedAt       time.Time      `json:"pushedAt"`
	Languages      []RepoLanguage `json:"languages"`
}

// RepoLanguage is language size in a single repository.
type RepoLanguage struct {
	Name  string `json:"name"`
	Size  int64  `json:"size"`
	Color string `json:"color"`
}

// ActiveRepo is recently updated public repository with pull request trend.
type ActiveRepo struct {
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Stars     int       `json:"stars"`
	Forks     int       `json:"forks"`
	Language  string    `json:"language"`
	Color     string    `json:"color"`
	UpdatedAt time.Time `json:"updatedAt"`
	PushedAt  time.Time `json:"pushedAt"`
	Trend     string    `json:"trend"`
}

// Language is share of one language across user repositories.
type Language struct {
	Language   string  `json:"language"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
}

// PRActivity groups pull request counts.
type PRActivity struct {
	TotalAuthored int         `json:"totalAuthored"`
	TotalReviewed int         `json:"totalReviewed"`
	Weekly        []WeeklyPRs `json:"weekly"`
	RecentWeeks   []WeeklyPRs `json:"recentWeeks"`
}

// WeeklyPRs is pull request activity in one week bucket.
type WeeklyPRs struct {
	Week   string `json:"week"`
	Opened int    `json:"opened"`
	Merged int    `json:"merged"`
	Closed int    `json:"closed"`
}

// Contribution is one contribution calendar day.
type Contribution struct {
	Date              string `json:"date"`
	ContributionCount int    `json:"contributionCount"`
	Color             string `json:"color"`
}

// Metrics holds contribution totals and streaks.
type Metrics struct {
	TotalContributions       int `json:"totalContributions"`
	TotalCommitContributions int `json:"totalCommitContributions"`
	CurrentStreak            int `json:"currentStreak"`
	LongestStreak            int `json:"longestStreak"`
}

// Activity is recent commit or pull request.
type Activity struct {
	Type    string    `json:"type"`
	Repo    string    `json:"repo"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
}

// NewProfile converts summary to response.
func NewProfile(s *app.ProfileSummary) Profile {
	p := Profile{
		User: User{
			Login:     s.User.Login,
			Name:      s.User.Name,
			Bio:       s.User.Bio,
			AvatarURL: s.User.AvatarURL,
			Followers: s.User.Followers,
		},
		Repos:        make([]Repo, 0, len(s.Repositories)),
		ActiveRepos:  make([]ActiveRepo, 0, len(s.ActiveRepositories)),
		Languages:    make([]Language, 0, len(s.Languages)),
		PullRequests: s.PullRequests.TotalAuthored,
		PRActivity: PRActivity{
			TotalAuthored: s.PullRequests.TotalAuthored,
			TotalReviewed: s.PullRequests.TotalReviewed,
			Weekly:        newWeeklyPRs(s.PullRequests.Weekly),
			RecentWeeks:   newWeeklyPRs(s.PullRequests.RecentWeeks),
		},
		Contributions: make([]Contribution, 0, len(s.Contributions)),
		Metrics: Metrics{
			TotalContributions:       s.Metrics.TotalContributions,
			TotalCommitContributions: s.Metrics.TotalCommitContributions,
			CurrentStreak:            s.Metrics.CurrentStreak,
			LongestStreak:            s.Metrics.LongestStreak,
		},
		RecentActivity: make([]Activity, 0, len(s.RecentActivity)),
	}
	for _, r := range s.Repositories {
		repo := Repo{
			Name:           r.Name,
			URL:            r.URL,
			IsPrivate:      r.IsPrivate,
			StargazerCount: r.Stars,
			ForkCount:      r.Forks,
			UpdatedAt:      r.UpdatedAt,
			PushedAt:       r.PushedAt,
			Languages:      make([]RepoLanguage, 0, len(r.Languages)),
		}
		for _, l := range r.Languages {
			repo.Languages = append(repo.Languages, RepoLanguage{Name: l.Name, Size: l.Size, Color: l.Color})
		}
		p.Repos = append(p.Repos, repo)
	}
	for _, r := range s.ActiveRepositories {
		p.ActiveRepos = append(p.ActiveRepos, ActiveRepo{
			Name:      r.Name,
			URL:       r.URL,
			Stars:     r.Stars,
			Forks:     r.Forks,
			Language:  r.Language,
			Color:     r.Color,
			UpdatedAt: r.UpdatedAt,
			PushedAt:  r.PushedAt,
			Trend:     r.Trend,
		})
	}
	for _, l := range s.Languages {
		p.Languages = append(p.Languages, Language{
			Language:   l.Name,
			Percentage: l.Percentage,
			Color:      l.Color,
		})
	}
	for _, c := range s.Contributions {
		p.Contributions = append(p.Contributions, Contribution{
			Date:              c.Date,
			ContributionCount: c.Count,
			Color:             c.Color,
		})
	}
	for _, a := range s.RecentActivity {
		p.RecentActivity = append(p.RecentActivity, Activity{
			Type:    string(a.Type),
			Repo:    a.Repository,
			Message: a.Message,
			Date:    a.Date,
		})
	}

	return p
}

func newWeeklyPRs(weeks []app.WeeklyPRActivity) []WeeklyPRs {
	result := make([]WeeklyPRs, 0, len(weeks))
	for _, w := range weeks {
		result = append(result, WeeklyPRs{
			Week:   w.Week,
			Opened: w.Opened,
			Merged: w.Merged,
			Closed: w.Closed,
		})
	}
	return result
}

// CommitTrend is commits per week day response.
type CommitTrend struct {
	Trends []DayCommits `json:"trends"`
	Total  int          `json:"total"`
}

// DayCommits is commit count for one week day.
type DayCommits struct {
	Day     string `json:"day"`
	Commits int    `json:"commits"`
}

// NewCommitTrend converts trend to response.
func NewCommitTrend(t *app.CommitTrend) CommitTrend {
	ct := CommitTrend{
		Trends: make([]DayCommits, 0, len(t.Days)),
		Total:  t.Total,
	}
	for _, d := range t.Days {
		ct.Trends = append(ct.Trends, DayCommits{
			Day:     d.Day,
			Commits: d.Commits,
		})
	}
	return ct
}

// Timeline is repository activity per month response.
type Timeline struct {
	Timeline []Month `json:"timeline"`
}

// Month is repository activity in one calendar month.
type Month struct {
	Month   string `json:"month"`
	Commits int    `json:"commits"`
	PRs     int    `json:"prs"`
}

// NewTimeline converts points to response.
func NewTimeline(points []app.TimelinePoint) Timeline {
	t := Timeline{
		Timeline: make([]Month, 0, len(points)),
	}
	for _, p := range points {
		t.Timeline = append(t.Timeline, Month{
			Month:   p.Month,
			Commits: p.Commits,
			PRs:     p.PRs,
		})
	}
	return t
}

// Error is error response body.
type Error struct {
	Message string          `json:"message"`
	Details json.RawMessage `json:"details,omitempty"`
}
