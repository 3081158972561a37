package models

// Patch is a partial update to one DailyLog. Nil fields are left untouched.
type Patch struct {
	WaterClicks *int
	Exercises   []ExerciseEntry
	HygieneLogs []HygieneEntry
	SleepTime   *string
	ClearSleep  bool
}

// ApplyTo merges p into log and returns the result. Non-nil list fields
// replace the whole list.
func (p Patch) ApplyTo(log DailyLog) DailyLog {
	out := log.Clone()
	if p.WaterClicks != nil {
		out.WaterClicks = *p.WaterClicks
	}
	if p.Exercises != nil {
		out.Exercises = append(make([]ExerciseEntry, 0, len(p.Exercises)), p.Exercises...)
	}
	if p.HygieneLogs != nil {
		out.HygieneLogs = append(make([]HygieneEntry, 0, len(p.HygieneLogs)), p.HygieneLogs...)
	}
	if p.ClearSleep {
		out.SleepTime = nil
	} else if p.SleepTime != nil {
		s := *p.SleepTime
		out.SleepTime = &s
	}
	return out
}
