package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyLog_LegacyJSONKeepsNilLists(t *testing.T) {
	blob := `{"date":"2023-05-01","waterClicks":2,"exerciseStarted":true,"exerciseMinutes":15,"exerciseType":"active","showerType":"night","sleepTime":null}`

	var log DailyLog
	require.NoError(t, json.Unmarshal([]byte(blob), &log))

	assert.Nil(t, log.Exercises)
	assert.Nil(t, log.HygieneLogs)
	assert.True(t, log.LegacyExerciseStarted)
	assert.Equal(t, 15, log.LegacyExerciseMinutes)
	assert.Equal(t, ExerciseActive, log.LegacyExerciseType)
	assert.Equal(t, ShowerNight, log.LegacyShowerType)
	assert.False(t, log.HasSleep())
}

func TestDailyLog_CurrentJSON(t *testing.T) {
	blob := `{"date":"2024-02-03","waterClicks":1,"exercises":[{"id":"a","type":"stretch","minutes":10,"timestamp":"2024-02-03T08:00:00.000Z"}],"hygieneLogs":[],"sleepTime":"23:10","isAnimalMode":false}`

	var log DailyLog
	require.NoError(t, json.Unmarshal([]byte(blob), &log))

	require.Len(t, log.Exercises, 1)
	assert.Equal(t, ExerciseStretch, log.Exercises[0].Kind)
	assert.NotNil(t, log.HygieneLogs)
	assert.Empty(t, log.HygieneLogs)
	assert.True(t, log.HasSleep())
	assert.Equal(t, "23:10", *log.SleepTime)
}

func TestDailyLog_EmptySleepIsUnset(t *testing.T) {
	empty := ""
	assert.False(t, DailyLog{SleepTime: &empty}.HasSleep())
}

func TestDailyLog_CloneDoesNotAlias(t *testing.T) {
	sleep := "22:00"
	orig := DailyLog{
		Exercises:   []ExerciseEntry{{ID: "1", Kind: ExerciseActive, Minutes: 5}},
		HygieneLogs: []HygieneEntry{{ID: "2", Kind: HygieneMorning}},
		SleepTime:   &sleep,
	}

	c := orig.Clone()
	c.Exercises[0].Minutes = 99
	c.HygieneLogs[0].Kind = HygieneNight
	*c.SleepTime = "01:00"

	assert.Equal(t, 5, orig.Exercises[0].Minutes)
	assert.Equal(t, HygieneMorning, orig.HygieneLogs[0].Kind)
	assert.Equal(t, "22:00", *orig.SleepTime)
}

func TestDailyLog_CloneKeepsNilLists(t *testing.T) {
	c := DailyLog{}.Clone()
	assert.Nil(t, c.Exercises)
	assert.Nil(t, c.HygieneLogs)
}

func TestDailyLog_LastEntries(t *testing.T) {
	var log DailyLog
	_, ok := log.LastExercise()
	assert.False(t, ok)

	log.Exercises = []ExerciseEntry{{ID: "a"}, {ID: "b"}}
	log.HygieneLogs = []HygieneEntry{{ID: "c"}}

	last, ok := log.LastExercise()
	require.True(t, ok)
	assert.Equal(t, "b", last.ID)

	h, ok := log.LastHygiene()
	require.True(t, ok)
	assert.Equal(t, "c", h.ID)
}

func TestKinds_IsValid(t *testing.T) {
	assert.True(t, ExerciseActive.IsValid())
	assert.True(t, ExerciseStretch.IsValid())
	assert.False(t, ExerciseKind("yoga").IsValid())

	assert.True(t, HygieneOther.IsValid())
	assert.False(t, HygieneKind("").IsValid())
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		h, m    int
		wantErr bool
	}{
		{"00:00", 0, 0, false},
		{"23:59", 23, 59, false},
		{"07:00", 7, 0, false},
		{"12:30", 12, 30, false},
		{"7:30", 0, 0, true},
		{"24:00", 0, 0, true},
		{"23:60", 0, 0, true},
		{"", 0, 0, true},
		{"ab:cd", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			h, m, err := ParseClock(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidClock)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.h, h)
			assert.Equal(t, tt.m, m)
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, 29, d.Day())

	_, err = ParseDate("2023-02-29")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ParseDate("2024/01/01")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestPatch_ApplyTo(t *testing.T) {
	sleep := "22:40"
	base := DailyLog{
		Date:        "2024-01-01",
		WaterClicks: 3,
		Exercises:   []ExerciseEntry{{ID: "x"}},
		HygieneLogs: []HygieneEntry{},
		SleepTime:   &sleep,
	}

	water := 5
	got := Patch{WaterClicks: &water}.ApplyTo(base)
	assert.Equal(t, 5, got.WaterClicks)
	assert.Len(t, got.Exercises, 1)
	assert.Equal(t, "22:40", *got.SleepTime)

	got = Patch{ClearSleep: true}.ApplyTo(base)
	assert.Nil(t, got.SleepTime)
	assert.Equal(t, "22:40", *base.SleepTime)

	got = Patch{Exercises: []ExerciseEntry{}}.ApplyTo(base)
	assert.Empty(t, got.Exercises)
	assert.Len(t, base.Exercises, 1)
}
