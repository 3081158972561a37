package summary

import (
	"gentle-keeper_app/internal/models"
	"gentle-keeper_app/internal/records"
	"time"
)

type Range string

const (
	RangeWeek  Range = "week"
	RangeMonth Range = "month"
)

// Point is one day of chart data.
type Point struct {
	Name          string   `json:"name"`
	FullDate      string   `json:"fullDate"`
	WaterVolume   int      `json:"waterVolume"`
	ActiveMins    int      `json:"activeMins"`
	StretchMins   int      `json:"stretchMins"`
	HasMorning    int      `json:"hasMorning"`
	HasNight      int      `json:"hasNight"`
	SleepOffset   *float64 `json:"sleepTimeVal"`
	FormattedTime string   `json:"formattedTime"`
}

// WeekDates returns the seven dates of the Sunday-started week containing day.
func WeekDates(day time.Time) []string {
	start := day.AddDate(0, 0, -int(day.Weekday()))
	dates := make([]string, 7)
	for i := range dates {
		dates[i] = models.DateOf(start.AddDate(0, 0, i))
	}
	return dates
}

// MonthDates returns every date of day's month.
func MonthDates(day time.Time) []string {
	year, month, _ := day.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, day.Location())
	n := first.AddDate(0, 1, -1).Day()
	dates := make([]string, n)
	for i := range dates {
		dates[i] = models.DateOf(first.AddDate(0, 0, i))
	}
	return dates
}

func RangeDates(r Range, day time.Time) []string {
	if r == RangeWeek {
		return WeekDates(day)
	}
	return MonthDates(day)
}

// Series derives one chart point per date. Dates absent from logs produce
// zero points.
func Series(logs models.Logs, dates []string, sipML int) []Point {
	now := time.Now()
	points := make([]Point, 0, len(dates))
	for _, date := range dates {
		log := records.GetLogAt(date, logs, now)
		morning, night := HygieneFlags(log)
		p := Point{
			Name:        shortDate(date),
			FullDate:    date,
			WaterVolume: WaterVolume(log, sipML),
			ActiveMins:  MinutesByKind(log, models.ExerciseActive),
			StretchMins: MinutesByKind(log, models.ExerciseStretch),
			HasMorning:  morning,
			HasNight:    night,
		}
		if log.HasSleep() {
			if v, err := SleepOffset(*log.SleepTime); err == nil {
				p.SleepOffset = &v
				p.FormattedTime = *log.SleepTime
			}
		}
		points = append(points, p)
	}
	return points
}

func shortDate(date string) string {
	if len(date) >= 10 {
		return date[5:10]
	}
	return date
}
