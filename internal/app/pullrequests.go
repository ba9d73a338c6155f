package app

import (
	"fmt"
	"math"
	"sort"
)

// DashboardWeeksLimit is the number of ISO weeks shown in dashboard pull request series.
const DashboardWeeksLimit = 4

// WeekOfMonthLabel returns "W<n>" where n is ceil(day / 7) for given day of month.
//
// This is not ISO week: labels restart each month, so W1 of March and W1 of April collide.
func WeekOfMonthLabel(day int) string {
	return fmt.Sprintf("W%d", (day+6)/7)
}

// GroupPullRequestsByWeek buckets pull requests by week of month.
// Buckets are returned in first seen order.
func GroupPullRequestsByWeek(prs []PullRequest) []WeeklyPRActivity {
	buckets := make([]WeeklyPRActivity, 0)
	index := make(map[string]int)
	for _, pr := range prs {
		week := WeekOfMonthLabel(pr.CreatedAt.UTC().Day())
		i, ok := index[week]
		if !ok {
			buckets = append(buckets, WeeklyPRActivity{Week: week})
			i = len(buckets) - 1
			index[week] = i
		}

		b := &buckets[i]
		b.Opened++
		if pr.State == PullRequestMerged {
			b.Merged++
		}
		if pr.State == PullRequestClosed && !pr.Merged {
			b.Closed++
		}
	}

	return buckets
}

// CalculateTrend compares opened counts of two last week buckets of given pull requests.
// Returns signed percentage, eg. "+25%" or "-10%". Returns "+0%" when there's nothing to compare.
func CalculateTrend(prs []PullRequest) string {
	weeks := GroupPullRequestsByWeek(prs)
	if len(weeks) < 2 {
		return "+0%"
	}

	last := weeks[len(weeks)-1].Opened
	prev := weeks[len(weeks)-2].Opened
	if prev == 0 {
		return "+0%"
	}

	trend := math.Round(float64(last-prev) / float64(prev) * 100)
	return fmt.Sprintf("%+d%%", int(trend))
}

// RecentWeeklyActivity buckets pull requests by ISO year and week, sorts buckets chronologically
// and returns at most limit latest ones. Labels carry the week number only.
func RecentWeeklyActivity(prs []PullRequest, limit int) []WeeklyPRActivity {
	byWeek := make(map[int]*WeeklyPRActivity)
	for _, pr := range prs {
		year, week := pr.CreatedAt.UTC().ISOWeek()
		key := year*100 + week
		b, ok := byWeek[key]
		if !ok {
			b = &WeeklyPRActivity{Week: fmt.Sprintf("W%d", week)}
			byWeek[key] = b
		}

		b.Opened++
		switch pr.State {
		case PullRequestMerged:
			b.Merged++
		case PullRequestClosed:
			b.Closed++
		}
	}

	weeks := make([]int, 0, len(byWeek))
	for w := range byWeek {
		weeks = append(weeks, w)
	}
	sort.Ints(weeks)
	if limit >= 0 && len(weeks) > limit {
		weeks = weeks[len(weeks)-limit:]
	}

	result := make([]WeeklyPRActivity, 0, len(weeks))
	for _, w := range weeks {
		result = append(result, *byWeek[w])
	}

	return result
}
