package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func prOn(year int, month time.Month, day int, state PullRequestState, merged bool) PullRequest {
	return PullRequest{
		CreatedAt: time.Date(year, month, day, 12, 0, 0, 0, time.UTC),
		State:     state,
		Merged:    merged,
	}
}

func prsOn(n int, day int) []PullRequest {
	prs := make([]PullRequest, 0, n)
	for i := 0; i < n; i++ {
		prs = append(prs, prOn(2024, time.May, day, PullRequestOpen, false))
	}
	return prs
}

func TestWeekOfMonthLabel(t *testing.T) {
	tests := map[int]string{
		1:  "W1",
		7:  "W1",
		8:  "W2",
		14: "W2",
		15: "W3",
		28: "W4",
		29: "W5",
		31: "W5",
	}
	for day, want := range tests {
		assert.Equal(t, want, WeekOfMonthLabel(day), "day %d", day)
	}
}

func TestGroupPullRequestsByWeek(t *testing.T) {
	tests := []struct {
		name string
		prs  []PullRequest
		want []WeeklyPRActivity
	}{
		{
			name: "empty",
			prs:  nil,
			want: []WeeklyPRActivity{},
		},
		{
			name: "opened, merged and closed counters",
			prs: []PullRequest{
				prOn(2024, time.March, 3, PullRequestOpen, false),
				prOn(2024, time.March, 3, PullRequestMerged, true),
				prOn(2024, time.March, 10, PullRequestOpen, false),
				prOn(2024, time.March, 10, PullRequestClosed, false),
				prOn(2024, time.March, 10, PullRequestMerged, true),
			},
			want: []WeeklyPRActivity{
				{Week: "W1", Opened: 2, Merged: 1, Closed: 0},
				{Week: "W2", Opened: 3, Merged: 1, Closed: 1},
			},
		},
		{
			name: "same week of different months collide",
			prs: []PullRequest{
				prOn(2024, time.March, 2, PullRequestOpen, false),
				prOn(2024, time.April, 5, PullRequestOpen, false),
				prOn(2023, time.December, 6, PullRequestMerged, true),
			},
			want: []WeeklyPRActivity{
				{Week: "W1", Opened: 3, Merged: 1},
			},
		},
		{
			name: "buckets in first seen order",
			prs: []PullRequest{
				prOn(2024, time.March, 20, PullRequestOpen, false),
				prOn(2024, time.March, 2, PullRequestOpen, false),
				prOn(2024, time.March, 30, PullRequestOpen, false),
				prOn(2024, time.March, 21, PullRequestOpen, false),
			},
			want: []WeeklyPRActivity{
				{Week: "W3", Opened: 2},
				{Week: "W1", Opened: 1},
				{Week: "W5", Opened: 1},
			},
		},
		{
			name: "closed with merged flag is not counted as closed",
			prs: []PullRequest{
				prOn(2024, time.March, 1, PullRequestClosed, true),
			},
			want: []WeeklyPRActivity{
				{Week: "W1", Opened: 1},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GroupPullRequestsByWeek(tt.prs)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateTrend(t *testing.T) {
	tests := []struct {
		name string
		prs  []PullRequest
		want string
	}{
		{
			name: "no pull requests",
			prs:  nil,
			want: "+0%",
		},
		{
			name: "single pull request",
			prs:  prsOn(1, 3),
			want: "+0%",
		},
		{
			name: "single bucket",
			prs:  prsOn(4, 3),
			want: "+0%",
		},
		{
			name: "growth",
			prs:  append(prsOn(10, 1), prsOn(15, 8)...),
			want: "+50%",
		},
		{
			name: "decline",
			prs:  append(prsOn(10, 1), prsOn(5, 8)...),
			want: "-50%",
		},
		{
			name: "no change",
			prs:  append(prsOn(3, 1), prsOn(3, 8)...),
			want: "+0%",
		},
		{
			name: "rounded to whole percent",
			prs:  append(prsOn(3, 1), prsOn(4, 8)...),
			want: "+33%",
		},
		{
			name: "compares two most recently seen buckets",
			prs:  append(append(prsOn(1, 15), prsOn(4, 1)...), prsOn(1, 8)...),
			want: "-75%",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateTrend(tt.prs))
		})
	}
}

func TestRecentWeeklyActivity(t *testing.T) {
	// 2024-01-01 is monday of ISO week 1.
	week := func(w int, state PullRequestState) PullRequest {
		return PullRequest{
			CreatedAt: time.Date(2024, time.January, 1+(w-1)*7, 10, 0, 0, 0, time.UTC),
			State:     state,
			Merged:    state == PullRequestMerged,
		}
	}

	prs := []PullRequest{
		week(6, PullRequestOpen),
		week(2, PullRequestMerged),
		week(3, PullRequestClosed),
		week(1, PullRequestOpen),
		week(5, PullRequestMerged),
		week(6, PullRequestClosed),
		week(10, PullRequestOpen),
	}

	got := RecentWeeklyActivity(prs, 4)
	assert.Equal(t, []WeeklyPRActivity{
		{Week: "W3", Opened: 1, Closed: 1},
		{Week: "W5", Opened: 1, Merged: 1},
		{Week: "W6", Opened: 2, Closed: 1},
		{Week: "W10", Opened: 1},
	}, got)

	assert.Empty(t, RecentWeeklyActivity(nil, 4))
	assert.Len(t, RecentWeeklyActivity(prs, 10), 6)
}

func TestRecentWeeklyActivityAcrossYears(t *testing.T) {
	at := func(y int, m time.Month, d int) PullRequest {
		return PullRequest{CreatedAt: time.Date(y, m, d, 12, 0, 0, 0, time.UTC), State: PullRequestOpen}
	}

	prs := []PullRequest{
		at(2024, time.January, 10),
		at(2023, time.January, 4),
		at(2024, time.January, 3),
		at(2023, time.December, 27),
	}

	assert.Equal(t, []WeeklyPRActivity{
		{Week: "W1", Opened: 1},
		{Week: "W2", Opened: 1},
	}, RecentWeeklyActivity(prs, 2))

	assert.Equal(t, []WeeklyPRActivity{
		{Week: "W1", Opened: 1},
		{Week: "W52", Opened: 1},
		{Week: "W1", Opened: 1},
		{Week: "W2", Opened: 1},
	}, RecentWeeklyActivity(prs, 4))
}
