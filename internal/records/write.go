package records

import (
	"gentle-keeper_app/internal/models"
	"sort"
	"time"
)

// Apply merges patch into the log for date and returns the new store. The
// migrated view of the date is used as the base, so a write also upgrades a
// legacy record. Other dates are copied unchanged.
func Apply(logs models.Logs, date string, patch models.Patch, now time.Time) models.Logs {
	return Update(logs, date, now, patch.ApplyTo)
}

// Update is Apply with an arbitrary transformation of the day's log.
func Update(logs models.Logs, date string, now time.Time, fn func(models.DailyLog) models.DailyLog) models.Logs {
	next := logs.Clone()
	log := fn(GetLogAt(date, logs, now))
	log.Date = date
	next[date] = log
	return next
}

// RemoveExercise drops the exercise entry with id. ok is false when the day
// has no such entry, in which case logs is returned as is.
func RemoveExercise(logs models.Logs, date, id string, now time.Time) (models.Logs, bool) {
	day := GetLogAt(date, logs, now)
	kept := make([]models.ExerciseEntry, 0, len(day.Exercises))
	for _, e := range day.Exercises {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(day.Exercises) {
		return logs, false
	}
	return Apply(logs, date, models.Patch{Exercises: kept}, now), true
}

func RemoveHygiene(logs models.Logs, date, id string, now time.Time) (models.Logs, bool) {
	day := GetLogAt(date, logs, now)
	kept := make([]models.HygieneEntry, 0, len(day.HygieneLogs))
	for _, h := range day.HygieneLogs {
		if h.ID != id {
			kept = append(kept, h)
		}
	}
	if len(kept) == len(day.HygieneLogs) {
		return logs, false
	}
	return Apply(logs, date, models.Patch{HygieneLogs: kept}, now), true
}

// MigrateAll returns a store in which every record has both list fields, and
// the dates that changed.
func MigrateAll(logs models.Logs, now time.Time) (models.Logs, []string) {
	next := make(models.Logs, len(logs))
	var changed []string
	for date, stored := range logs {
		if NeedsMigration(stored) {
			changed = append(changed, date)
		}
		next[date] = Migrate(date, stored, now)
	}
	sort.Strings(changed)
	return next, changed
}
