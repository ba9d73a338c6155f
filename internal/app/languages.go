package app

import (
	"math"
	"sort"
)

// DefaultLanguageColor is used when github doesn't define color for a language.
const DefaultLanguageColor = "#94a3b8"

// AggregateLanguages sums language sizes across all repositories and returns percentage shares,
// sorted descending. Percentages are rounded to 2 decimal places.
// The first color seen for a language wins.
func AggregateLanguages(repos []Repository) []LanguageShare {
	type total struct {
		name  string
		size  int64
		color string
	}

	var order []*total
	totals := make(map[string]*total)
	var grandTotal int64
	for _, repo := range repos {
		for _, edge := range repo.Languages {
			t, ok := totals[edge.Name]
			if !ok {
				t = &total{name: edge.Name, color: edge.Color}
				totals[edge.Name] = t
				order = append(order, t)
			}
			t.size += edge.Size
			grandTotal += edge.Size
		}
	}

	if grandTotal == 0 {
		return []LanguageShare{}
	}

	shares := make([]LanguageShare, 0, len(order))
	for _, t := range order {
		color := t.color
		if color == "" {
			color = DefaultLanguageColor
		}
		shares = append(shares, LanguageShare{
			Name:       t.name,
			Percentage: roundTo(float64(t.size)/float64(grandTotal)*100, 2),
			Color:      color,
		})
	}
	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Percentage > shares[j].Percentage
	})

	return shares
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
