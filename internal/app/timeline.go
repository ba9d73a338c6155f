package app

import "time"

// TimelineMonths is the number of calendar months in repository timeline.
const TimelineMonths = 6

// MonthWindow is half open [Since, Until) calendar month range in UTC.
type MonthWindow struct {
	Label string
	Since time.Time
	Until time.Time
}

// SinceDay returns window start as ISO day.
func (w MonthWindow) SinceDay() string {
	return w.Since.Format("2006-01-02")
}

// UntilDay returns window end as ISO day.
func (w MonthWindow) UntilDay() string {
	return w.Until.Format("2006-01-02")
}

// MonthWindows returns count consecutive month windows ending with the month containing now,
// oldest first.
func MonthWindows(now time.Time, count int) []MonthWindow {
	now = now.UTC()
	base := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	windows := make([]MonthWindow, 0, count)
	for i := 0; i < count; i++ {
		since := base.AddDate(0, i-(count-1), 0)
		windows = append(windows, MonthWindow{
			Label: since.Format("Jan"),
			Since: since,
			Until: since.AddDate(0, 1, 0),
		})
	}

	return windows
}
