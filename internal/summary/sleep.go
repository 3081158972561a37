package summary

import (
	"fmt"
	"gentle-keeper_app/internal/models"
)

type SleepBand string

const (
	// BandEvening covers 19:00 through 00:00 inclusive.
	BandEvening SleepBand = "evening"
	// BandLate is everything after midnight, 00:01 through 07:00 in practice.
	BandLate SleepBand = "late"
)

// ClassifySleep puts a sleep time into its display band. The boundary is a
// fixed rule.
func ClassifySleep(hhmm string) (SleepBand, error) {
	h, m, err := models.ParseClock(hhmm)
	if err != nil {
		return "", err
	}
	if h >= 19 || (h == 0 && m == 0) {
		return BandEvening, nil
	}
	return BandLate, nil
}

// SleepOffset maps a sleep time onto a continuous axis where the small hours
// follow the evening: 22:00 -> 22, 00:00 -> 24, 02:30 -> 26.5.
func SleepOffset(hhmm string) (float64, error) {
	h, m, err := models.ParseClock(hhmm)
	if err != nil {
		return 0, err
	}
	if h < 12 {
		h += 24
	}
	return float64(h) + float64(m)/60, nil
}

// FormatOffset is the inverse of SleepOffset. The sleep chart labels its
// axis with it.
func FormatOffset(v float64) string {
	h := int(v)
	m := int((v-float64(h))*60 + 0.5)
	if m == 60 {
		h++
		m = 0
	}
	if h >= 24 {
		h -= 24
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}

// SleepOptions lists the times offered when picking a bedtime: every ten
// minutes from 19:00 through 07:00.
func SleepOptions() []string {
	hours := []int{19, 20, 21, 22, 23, 0, 1, 2, 3, 4, 5, 6, 7}
	opts := make([]string, 0, len(hours)*6)
	for _, h := range hours {
		for m := 0; m < 60; m += 10 {
			if h == 7 && m > 0 {
				break
			}
			opts = append(opts, fmt.Sprintf("%02d:%02d", h, m))
		}
	}
	return opts
}
