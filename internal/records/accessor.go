// Package records reads and writes single days of a models.Logs store.
//
// Every function here is pure: the input store is never modified, and writes
// return a new store that shares nothing mutable with the old one.
package records

import (
	"gentle-keeper_app/internal/models"
	"time"
)

const (
	legacyExercisePrefix = "legacy-"
	legacyShowerPrefix   = "legacy-shower-"
)

// Default is the log of a date nothing has been recorded for.
func Default(date string) models.DailyLog {
	return models.DailyLog{
		Date:        date,
		Exercises:   []models.ExerciseEntry{},
		HygieneLogs: []models.HygieneEntry{},
	}
}

// GetLog returns the fully populated log for date, migrating legacy shapes.
func GetLog(date string, logs models.Logs) models.DailyLog {
	return GetLogAt(date, logs, time.Now())
}

// GetLogAt is GetLog with an explicit migration time. Synthetic entries are
// stamped with now, not with the original event time, which is unknown.
func GetLogAt(date string, logs models.Logs, now time.Time) models.DailyLog {
	stored, ok := logs[date]
	if !ok {
		return Default(date)
	}
	return Migrate(date, stored, now)
}

// Migrate fills in list fields that a pre-list record lacks.
func Migrate(date string, stored models.DailyLog, now time.Time) models.DailyLog {
	log := stored.Clone()

	if log.Exercises == nil {
		log.Exercises = []models.ExerciseEntry{}
		if log.LegacyExerciseStarted {
			kind := log.LegacyExerciseType
			if !kind.IsValid() {
				kind = models.ExerciseStretch
			}
			minutes := log.LegacyExerciseMinutes
			if minutes <= 0 {
				minutes = 1
			}
			log.Exercises = append(log.Exercises, models.ExerciseEntry{
				ID:        legacyExercisePrefix + date,
				Kind:      kind,
				Minutes:   minutes,
				Timestamp: now,
			})
		}
	}

	if log.HygieneLogs == nil {
		log.HygieneLogs = []models.HygieneEntry{}
		if log.LegacyShowerType != "" && log.LegacyShowerType != models.ShowerNone {
			kind := models.HygieneMorning
			if log.LegacyShowerType == models.ShowerNight {
				kind = models.HygieneNight
			}
			log.HygieneLogs = append(log.HygieneLogs, models.HygieneEntry{
				ID:        legacyShowerPrefix + date,
				Kind:      kind,
				Timestamp: now,
			})
		}
	}

	return log
}

// NeedsMigration reports whether the stored record lacks a list field.
func NeedsMigration(stored models.DailyLog) bool {
	return stored.Exercises == nil || stored.HygieneLogs == nil
}
