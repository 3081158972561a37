// Package feedback picks the short acknowledgement shown after each action.
package feedback

import (
	"gentle-keeper_app/internal/models"
	"math/rand/v2"
)

type Kind string

const (
	Water    Kind = "water"
	Exercise Kind = "exercise"
	General  Kind = "general"
)

var messages = map[Kind][]string{
	Water: {
		"Water level maintained.",
		"Hydration topped up.",
		"Flowing smoothly.",
		"Vitality replenished.",
	},
	Exercise: {
		"Small start, done.",
		"Circulation activated.",
		"Thanks for moving.",
		"Body check recorded.",
	},
	General: {
		"System started.",
		"Energy saved.",
		"Gentle progress.",
		"You are doing well already.",
	},
}

const (
	SleepPerfect   = "In sync with your natural rhythm."
	SleepLate      = "Recorded. Rest whenever you are ready."
	SleepLateNight = "It is shutdown time. Allow yourself to power off."
	HygieneLogged  = "Hygiene recorded."
)

// Picker chooses messages. The random source is injected so output is
// reproducible in tests.
type Picker struct {
	rng         *rand.Rand
	targetStart string
	targetEnd   string
}

func NewPicker(src rand.Source, targetStart, targetEnd string) *Picker {
	return &Picker{
		rng:         rand.New(src),
		targetStart: targetStart,
		targetEnd:   targetEnd,
	}
}

// Random returns one message of kind. Unknown kinds fall back to General.
func (p *Picker) Random(kind Kind) string {
	list, ok := messages[kind]
	if !ok {
		list = messages[General]
	}
	return list[p.rng.IntN(len(list))]
}

// Sleep comments on a bedtime: after midnight and before 04:00 is late night,
// inside the target window (inclusive) is perfect, anything else is late.
func (p *Picker) Sleep(hhmm string) (string, error) {
	h, _, err := models.ParseClock(hhmm)
	if err != nil {
		return "", err
	}
	switch {
	case h >= 0 && h < 4:
		return SleepLateNight, nil
	case hhmm >= p.targetStart && hhmm <= p.targetEnd:
		return SleepPerfect, nil
	}
	return SleepLate, nil
}

// Messages exposes the pool for kind.
func Messages(kind Kind) []string {
	return append([]string(nil), messages[kind]...)
}
