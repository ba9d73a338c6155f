package github

import (
	"time"

	"github.com/m-zajac/ghinsights/internal/app"
)

type profileResponse struct {
	User *profileUser `json:"user"`
}

type profileUser struct {
	Login     string     `json:"login"`
	Name      string     `json:"name"`
	Bio       string     `json:"bio"`
	AvatarURL string     `json:"avatarUrl"`
	Followers totalCount `json:"followers"`

	Repositories struct {
		Nodes []profileRepository `json:"nodes"`
	} `json:"repositories"`

	PullRequests struct {
		TotalCount int                  `json:"totalCount"`
		Nodes      []profilePullRequest `json:"nodes"`
	} `json:"pullRequests"`

	ContributionsCollection struct {
		TotalCommitContributions            int `json:"totalCommitContributions"`
		TotalPullRequestContributions       int `json:"totalPullRequestContributions"`
		TotalPullRequestReviewContributions int `json:"totalPullRequestReviewContributions"`
		ContributionCalendar                struct {
			TotalContributions int `json:"totalContributions"`
			Weeks              []struct {
				ContributionDays []struct {
					Date              string `json:"date"`
					ContributionCount int    `json:"contributionCount"`
					Color             string `json:"color"`
				} `json:"contributionDays"`
			} `json:"weeks"`
		} `json:"contributionCalendar"`
	} `json:"contributionsCollection"`
}

type totalCount struct {
	TotalCount int `json:"totalCount"`
}

type profileRepository struct {
	Name           string    `json:"name"`
	URL            string    `json:"url"`
	IsPrivate      bool      `json:"isPrivate"`
	StargazerCount int       `json:"stargazerCount"`
	ForkCount      int       `json:"forkCount"`
	UpdatedAt      time.Time `json:"updatedAt"`
	PushedAt       time.Time `json:"pushedAt"`

	Languages struct {
		Edges []struct {
			Size int64 `json:"size"`
			Node struct {
				Name  string `json:"name"`
				Color string `json:"color"`
			} `json:"node"`
		} `json:"edges"`
	} `json:"languages"`

	PullRequests struct {
		Nodes []profilePullRequest `json:"nodes"`
	} `json:"pullRequests"`

	DefaultBranchRef *struct {
		Target struct {
			History *struct {
				Nodes []struct {
					MessageHeadline string    `json:"messageHeadline"`
					CommittedDate   time.Time `json:"committedDate"`
				} `json:"nodes"`
			} `json:"history"`
		} `json:"target"`
	} `json:"defaultBranchRef"`
}

type profilePullRequest struct {
	Title      string    `json:"title"`
	URL        string    `json:"url"`
	CreatedAt  time.Time `json:"createdAt"`
	Merged     bool      `json:"merged"`
	State      string    `json:"state"`
	Repository *struct {
		Name string `json:"name"`
	} `json:"repository"`
}

func (p profilePullRequest) toPullRequest(repository string) app.PullRequest {
	if p.Repository != nil {
		repository = p.Repository.Name
	}
	return app.PullRequest{
		Title:      p.Title,
		URL:        p.URL,
		Repository: repository,
		CreatedAt:  p.CreatedAt,
		State:      app.PullRequestState(p.State),
		Merged:     p.Merged,
	}
}

func (r profileRepository) toRepository() app.Repository {
	repo := app.Repository{
		Name:          r.Name,
		URL:           r.URL,
		IsPrivate:     r.IsPrivate,
		Stars:         r.StargazerCount,
		Forks:         r.ForkCount,
		UpdatedAt:     r.UpdatedAt,
		PushedAt:      r.PushedAt,
		Languages:     make([]app.LanguageEdge, 0, len(r.Languages.Edges)),
		PullRequests:  make([]app.PullRequest, 0, len(r.PullRequests.Nodes)),
		RecentCommits: []app.Commit{},
	}
	for _, e := range r.Languages.Edges {
		repo.Languages = append(repo.Languages, app.LanguageEdge{
			Name:  e.Node.Name,
			Size:  e.Size,
			Color: e.Node.Color,
		})
	}
	for _, pr := range r.PullRequests.Nodes {
		repo.PullRequests = append(repo.PullRequests, pr.toPullRequest(r.Name))
	}
	// Empty repositories have no default branch, tags as targets have no history.
	if r.DefaultBranchRef != nil && r.DefaultBranchRef.Target.History != nil {
		for _, n := range r.DefaultBranchRef.Target.History.Nodes {
			repo.RecentCommits = append(repo.RecentCommits, app.Commit{
				Repository:    r.Name,
				Message:       n.MessageHeadline,
				CommittedDate: n.CommittedDate,
			})
		}
	}

	return repo
}

// ToProfileDocument maps response to app model.
func (u profileUser) ToProfileDocument() *app.ProfileDocument {
	cc := u.ContributionsCollection

	doc := app.ProfileDocument{
		User: app.Identity{
			Login:     u.Login,
			Name:      u.Name,
			Bio:       u.Bio,
			AvatarURL: u.AvatarURL,
			Followers: u.Followers.TotalCount,
		},
		Repositories:              make([]app.Repository, 0, len(u.Repositories.Nodes)),
		PullRequests:              make([]app.PullRequest, 0, len(u.PullRequests.Nodes)),
		TotalAuthoredPullRequests: cc.TotalPullRequestContributions,
		TotalReviewedPullRequests: cc.TotalPullRequestReviewContributions,
		TotalCommitContributions:  cc.TotalCommitContributions,
		TotalContributions:        cc.ContributionCalendar.TotalContributions,
		Calendar:                  []app.ContributionDay{},
	}
	for _, r := range u.Repositories.Nodes {
		doc.Repositories = append(doc.Repositories, r.toRepository())
	}
	for _, pr := range u.PullRequests.Nodes {
		doc.PullRequests = append(doc.PullRequests, pr.toPullRequest(""))
	}
	for _, w := range cc.ContributionCalendar.Weeks {
		for _, d := range w.ContributionDays {
			doc.Calendar = append(doc.Calendar, app.ContributionDay{
				Date:  d.Date,
				Count: d.ContributionCount,
				Color: d.Color,
			})
		}
	}

	return &doc
}
