package models

import (
	"time"
)

type ExerciseKind string

const (
	ExerciseActive  ExerciseKind = "active"
	ExerciseStretch ExerciseKind = "stretch"
)

type HygieneKind string

const (
	HygieneMorning HygieneKind = "morning"
	HygieneNight   HygieneKind = "night"
	HygieneOther   HygieneKind = "other"
)

// ShowerType is the pre-list hygiene field. Read only.
type ShowerType string

const (
	ShowerNone    ShowerType = "none"
	ShowerNight   ShowerType = "night"
	ShowerMorning ShowerType = "morning"
)

type ExerciseEntry struct {
	ID        string       `json:"id"`
	Kind      ExerciseKind `json:"type"`
	Minutes   int          `json:"minutes"`
	Timestamp time.Time    `json:"timestamp"`
}

type HygieneEntry struct {
	ID        string      `json:"id"`
	Kind      HygieneKind `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
}

// DailyLog is everything recorded for one calendar date.
//
// A nil Exercises or HygieneLogs slice means the field was missing from the
// stored record (a legacy shape); an empty non-nil slice means "nothing logged".
// The Legacy* fields are never written by current code but are carried through
// so old blobs round-trip.
type DailyLog struct {
	Date        string          `json:"date"`
	WaterClicks int             `json:"waterClicks"`
	Exercises   []ExerciseEntry `json:"exercises"`
	HygieneLogs []HygieneEntry  `json:"hygieneLogs"`
	SleepTime   *string         `json:"sleepTime"`

	IsAnimalMode          bool         `json:"isAnimalMode,omitempty"`
	LegacyExerciseStarted bool         `json:"exerciseStarted,omitempty"`
	LegacyExerciseMinutes int          `json:"exerciseMinutes,omitempty"`
	LegacyExerciseType    ExerciseKind `json:"exerciseType,omitempty"`
	LegacyShowerType      ShowerType   `json:"showerType,omitempty"`
}

// Logs maps a YYYY-MM-DD date to its log. It is the whole persisted store.
type Logs map[string]DailyLog

func (k ExerciseKind) String() string {
	return string(k)
}

func (k ExerciseKind) IsValid() bool {
	switch k {
	case ExerciseActive, ExerciseStretch:
		return true
	}
	return false
}

func (k HygieneKind) String() string {
	return string(k)
}

func (k HygieneKind) IsValid() bool {
	switch k {
	case HygieneMorning, HygieneNight, HygieneOther:
		return true
	}
	return false
}

// HasSleep reports whether a sleep time is recorded.
func (l DailyLog) HasSleep() bool {
	return l.SleepTime != nil && *l.SleepTime != ""
}

// LastExercise returns the most recently appended exercise entry.
func (l DailyLog) LastExercise() (ExerciseEntry, bool) {
	if len(l.Exercises) == 0 {
		return ExerciseEntry{}, false
	}
	return l.Exercises[len(l.Exercises)-1], true
}

func (l DailyLog) LastHygiene() (HygieneEntry, bool) {
	if len(l.HygieneLogs) == 0 {
		return HygieneEntry{}, false
	}
	return l.HygieneLogs[len(l.HygieneLogs)-1], true
}

// Clone returns a copy that shares no slices or pointers with l.
func (l DailyLog) Clone() DailyLog {
	out := l
	if l.Exercises != nil {
		out.Exercises = append(make([]ExerciseEntry, 0, len(l.Exercises)), l.Exercises...)
	}
	if l.HygieneLogs != nil {
		out.HygieneLogs = append(make([]HygieneEntry, 0, len(l.HygieneLogs)), l.HygieneLogs...)
	}
	if l.SleepTime != nil {
		s := *l.SleepTime
		out.SleepTime = &s
	}
	return out
}

// Clone copies the map. Values are cloned so the copy can be mutated freely.
func (s Logs) Clone() Logs {
	out := make(Logs, len(s))
	for date, log := range s {
		out[date] = log.Clone()
	}
	return out
}
