package summary

import (
	"gentle-keeper_app/internal/models"
	"gentle-keeper_app/internal/records"
	"time"
)

// Cell is one day of a month calendar for a single metric.
type Cell struct {
	Date string    `json:"date"`
	Done bool      `json:"done"`
	Band SleepBand `json:"band,omitempty"`
}

// MonthGrid lays out month as a Sunday-first calendar. Leading nil cells pad
// the first week up to the weekday of the 1st. For the sleep metric a done
// cell also carries its band.
func MonthGrid(year int, month time.Month, logs models.Logs, metric Metric) []*Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := first.AddDate(0, 1, -1).Day()
	lead := int(first.Weekday())

	now := time.Now()
	cells := make([]*Cell, lead, lead+days)
	for i := 0; i < days; i++ {
		date := models.DateOf(first.AddDate(0, 0, i))
		log := records.GetLogAt(date, logs, now)
		c := &Cell{Date: date, Done: Done(log, metric)}
		if metric == MetricSleep && c.Done {
			if band, err := ClassifySleep(*log.SleepTime); err == nil {
				c.Band = band
			}
		}
		cells = append(cells, c)
	}
	return cells
}
