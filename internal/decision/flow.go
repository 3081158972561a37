package decision

import (
	"gentle-keeper_app/internal/models"
	"sort"
	"time"
)

// MaxFlowGapDays is the largest distance in calendar days between two active
// dates that still keeps a flow going (two fully inactive days in between).
const MaxFlowGapDays = 3

// LongestFlow is the longest run of active days ever recorded, where a run
// survives gaps of up to MaxFlowGapDays. It is recomputed from scratch.
// Keys that are not valid dates are ignored.
func LongestFlow(logs models.Logs) int {
	days := make([]time.Time, 0, len(logs))
	for _, date := range ActiveDates(logs) {
		t, err := models.ParseDate(date)
		if err != nil {
			continue
		}
		days = append(days, t)
	}
	if len(days) == 0 {
		return 0
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	best, run := 0, 1
	for i := 1; i < len(days); i++ {
		if daysBetween(days[i-1], days[i]) <= MaxFlowGapDays {
			run++
			continue
		}
		best = max(best, run)
		run = 1
	}
	return max(best, run)
}

// daysBetween assumes both values are UTC midnights from models.ParseDate.
func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
