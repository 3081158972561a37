// Package summary turns daily logs into the numbers shown in calendars and
// charts. Every function is a pure fold over its input.
package summary

import (
	"gentle-keeper_app/internal/models"
)

// DefaultSipML is the volume of one water click.
const DefaultSipML = 350

type Metric string

const (
	MetricWater    Metric = "water"
	MetricExercise Metric = "exercise"
	MetricHygiene  Metric = "hygiene"
	MetricSleep    Metric = "sleep"
)

var Metrics = []Metric{MetricWater, MetricExercise, MetricHygiene, MetricSleep}

func (m Metric) IsValid() bool {
	switch m {
	case MetricWater, MetricExercise, MetricHygiene, MetricSleep:
		return true
	}
	return false
}

func ExerciseMinutes(log models.DailyLog) int {
	total := 0
	for _, e := range log.Exercises {
		total += e.Minutes
	}
	return total
}

func MinutesByKind(log models.DailyLog, kind models.ExerciseKind) int {
	total := 0
	for _, e := range log.Exercises {
		if e.Kind == kind {
			total += e.Minutes
		}
	}
	return total
}

// WaterVolume is the day's intake in millilitres.
func WaterVolume(log models.DailyLog, sipML int) int {
	return log.WaterClicks * sipML
}

// WaterProgress is the share of goalML reached, in percent, capped at 100.
func WaterProgress(log models.DailyLog, sipML, goalML int) float64 {
	if goalML <= 0 {
		return 0
	}
	p := float64(WaterVolume(log, sipML)) / float64(goalML) * 100
	return min(p, 100)
}

// HygieneFlags reports 1/0 for whether a morning and a night entry exist.
func HygieneFlags(log models.DailyLog) (morning, night int) {
	for _, h := range log.HygieneLogs {
		switch h.Kind {
		case models.HygieneMorning:
			morning = 1
		case models.HygieneNight:
			night = 1
		}
	}
	return morning, night
}

// Done reports whether the metric was logged at all on the day.
func Done(log models.DailyLog, metric Metric) bool {
	switch metric {
	case MetricWater:
		return log.WaterClicks > 0
	case MetricExercise:
		return len(log.Exercises) > 0
	case MetricHygiene:
		return len(log.HygieneLogs) > 0
	case MetricSleep:
		return log.HasSleep()
	}
	return false
}
