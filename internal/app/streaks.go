package app

// ComputeStreaks returns current and longest run of days with contributions.
// Days must be in chronological order. Current streak counts back from the last day,
// so a day without contributions at the end of calendar resets it.
func ComputeStreaks(days []ContributionDay) (current int, longest int) {
	for i := len(days) - 1; i >= 0; i-- {
		if days[i].Count <= 0 {
			break
		}
		current++
	}

	var run int
	for _, d := range days {
		if d.Count > 0 {
			run++
			if run > longest {
				longest = run
			}
			continue
		}
		run = 0
	}

	return current, longest
}
