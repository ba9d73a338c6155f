package app

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// CommitTrendDays is the number of days covered by commit trend.
const CommitTrendDays = 7

// CommitTrendDayLabels returns short week day names for days ending with now, oldest first.
func CommitTrendDayLabels(now time.Time) []string {
	now = now.UTC()
	labels := make([]string, 0, CommitTrendDays)
	for i := CommitTrendDays - 1; i >= 0; i-- {
		labels = append(labels, now.AddDate(0, 0, -i).Format("Mon"))
	}

	return labels
}

// CommitTrendSince returns UTC midnight of the oldest day covered by commit trend.
func CommitTrendSince(now time.Time) time.Time {
	y, m, d := now.UTC().AddDate(0, 0, -(CommitTrendDays - 1)).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// commitTrend fetches commits of every repository concurrently and tallies them by week day.
// Failing repositories are logged and counted as zero.
func (s *Service) commitTrend(ctx context.Context, token string, repos []RepositoryRef) *CommitTrend {
	now := s.now()
	since := CommitTrendSince(now)
	labels := CommitTrendDayLabels(now)

	counts := make(map[string]int, len(labels))
	for _, l := range labels {
		counts[l] = 0
	}

	var m sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, repo := range repos {
		repo := repo
		g.Go(func() error {
			dates, err := s.githubClient.CommitDates(gctx, token, repo.Owner, repo.Name, since)
			if err != nil {
				s.l.Warnf("commit trend: skipping %s/%s: %v", repo.Owner, repo.Name, err)
				return nil
			}

			m.Lock()
			defer m.Unlock()
			for _, d := range dates {
				if d.Before(since) {
					continue
				}
				day := d.UTC().Format("Mon")
				if _, ok := counts[day]; ok {
					counts[day]++
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	trend := CommitTrend{
		Days: make([]DailyCommits, 0, len(labels)),
	}
	for _, l := range labels {
		trend.Days = append(trend.Days, DailyCommits{
			Day:     l,
			Commits: counts[l],
		})
		trend.Total += counts[l]
	}

	return &trend
}
