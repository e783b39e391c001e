package domain

import (
	"slices"
	"strings"
)

// SortEventDates returns a new slice with every scheduled date before every finished date.
// Each group is ordered by calendar day only; dates on the same day keep their input order.
func SortEventDates(dates []EventDate) []EventDate {
	out := make([]EventDate, 0, len(dates))
	var finished []EventDate
	for _, d := range dates {
		if d.IsFinished() {
			finished = append(finished, d)
			continue
		}
		out = append(out, d)
	}
	byDay := func(a, b EventDate) int { return strings.Compare(a.date, b.date) }
	slices.SortStableFunc(out, byDay)
	slices.SortStableFunc(finished, byDay)
	return append(out, finished...)
}
