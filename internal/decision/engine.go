package decision

import "gentle-keeper_app/internal/models"

// IsActive reports whether anything at all was recorded for the day.
func IsActive(log models.DailyLog) bool {
	return log.WaterClicks > 0 ||
		log.LegacyExerciseStarted ||
		len(log.Exercises) > 0 ||
		len(log.HygieneLogs) > 0 ||
		log.HasSleep() ||
		log.IsAnimalMode
}

// ActiveDates returns the dates of logs that are active as stored, in no
// particular order. A legacy shower type alone does not count.
func ActiveDates(logs models.Logs) []string {
	dates := make([]string, 0, len(logs))
	for date, log := range logs {
		if IsActive(log) {
			dates = append(dates, date)
		}
	}
	return dates
}

func TotalActiveDays(logs models.Logs) int {
	return len(ActiveDates(logs))
}
