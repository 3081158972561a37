package records

import (
	"encoding/json"
	"gentle-keeper_app/internal/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var migratedAt = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func legacyLogs(t *testing.T, blob string) models.Logs {
	t.Helper()
	var logs models.Logs
	require.NoError(t, json.Unmarshal([]byte(blob), &logs))
	return logs
}

func TestGetLog_AbsentDateIsDefault(t *testing.T) {
	logs := models.Logs{"2024-01-01": {Date: "2024-01-01", WaterClicks: 4}}

	log := GetLog("2024-01-02", logs)

	assert.Equal(t, "2024-01-02", log.Date)
	assert.Equal(t, 0, log.WaterClicks)
	assert.NotNil(t, log.Exercises)
	assert.Empty(t, log.Exercises)
	assert.NotNil(t, log.HygieneLogs)
	assert.Empty(t, log.HygieneLogs)
	assert.Nil(t, log.SleepTime)
}

func TestGetLog_EmptyStore(t *testing.T) {
	log := GetLog("2024-01-02", nil)
	assert.Equal(t, Default("2024-01-02"), log)
}

func TestGetLog_MigratesLegacyExercise(t *testing.T) {
	logs := legacyLogs(t, `{"2023-03-04":{"date":"2023-03-04","waterClicks":0,"exerciseStarted":true,"exerciseMinutes":25,"exerciseType":"active"}}`)

	log := GetLogAt("2023-03-04", logs, migratedAt)

	require.Len(t, log.Exercises, 1)
	e := log.Exercises[0]
	assert.Equal(t, "legacy-2023-03-04", e.ID)
	assert.Equal(t, models.ExerciseActive, e.Kind)
	assert.Equal(t, 25, e.Minutes)
	assert.Equal(t, migratedAt, e.Timestamp)
	assert.Empty(t, log.HygieneLogs)
}

func TestGetLog_LegacyExerciseDefaults(t *testing.T) {
	logs := models.Logs{"2023-03-04": {Date: "2023-03-04", LegacyExerciseStarted: true}}

	log := GetLogAt("2023-03-04", logs, migratedAt)

	require.Len(t, log.Exercises, 1)
	assert.Equal(t, models.ExerciseStretch, log.Exercises[0].Kind)
	assert.Equal(t, 1, log.Exercises[0].Minutes)
}

func TestGetLog_LegacyExerciseNotStarted(t *testing.T) {
	logs := models.Logs{"2023-03-04": {Date: "2023-03-04", LegacyExerciseMinutes: 30}}

	log := GetLogAt("2023-03-04", logs, migratedAt)

	assert.NotNil(t, log.Exercises)
	assert.Empty(t, log.Exercises)
}

func TestGetLog_MigratesLegacyShower(t *testing.T) {
	tests := []struct {
		shower models.ShowerType
		want   []models.HygieneKind
	}{
		{models.ShowerNight, []models.HygieneKind{models.HygieneNight}},
		{models.ShowerMorning, []models.HygieneKind{models.HygieneMorning}},
		{models.ShowerType("bath"), []models.HygieneKind{models.HygieneMorning}},
		{models.ShowerNone, nil},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(string(tt.shower), func(t *testing.T) {
			logs := models.Logs{"2023-03-04": {Date: "2023-03-04", LegacyShowerType: tt.shower}}

			log := GetLogAt("2023-03-04", logs, migratedAt)

			require.NotNil(t, log.HygieneLogs)
			require.Len(t, log.HygieneLogs, len(tt.want))
			for i, kind := range tt.want {
				assert.Equal(t, kind, log.HygieneLogs[i].Kind)
				assert.Equal(t, "legacy-shower-2023-03-04", log.HygieneLogs[i].ID)
			}
		})
	}
}

func TestGetLog_ExistingListsWinOverLegacy(t *testing.T) {
	logs := models.Logs{"2024-01-01": {
		Date:                  "2024-01-01",
		LegacyExerciseStarted: true,
		LegacyShowerType:      models.ShowerNight,
		Exercises:             []models.ExerciseEntry{{ID: "new", Kind: models.ExerciseActive, Minutes: 10}},
		HygieneLogs:           []models.HygieneEntry{},
	}}

	log := GetLogAt("2024-01-01", logs, migratedAt)

	require.Len(t, log.Exercises, 1)
	assert.Equal(t, "new", log.Exercises[0].ID)
	assert.Empty(t, log.HygieneLogs)
	assert.True(t, log.LegacyExerciseStarted)
}

func TestGetLog_MigrationIsIdempotent(t *testing.T) {
	blob := `{"2023-03-04":{"date":"2023-03-04","exerciseStarted":true,"showerType":"morning","waterClicks":1}}`

	first := GetLogAt("2023-03-04", legacyLogs(t, blob), migratedAt)
	second := GetLogAt("2023-03-04", legacyLogs(t, blob), migratedAt.Add(time.Hour))

	require.Len(t, first.Exercises, 1)
	require.Len(t, second.Exercises, len(first.Exercises))
	require.Len(t, second.HygieneLogs, len(first.HygieneLogs))
	assert.Equal(t, first.Exercises[0].ID, second.Exercises[0].ID)
	assert.Equal(t, first.HygieneLogs[0].ID, second.HygieneLogs[0].ID)

	// Feeding the migrated view back in adds nothing.
	third := GetLogAt("2023-03-04", models.Logs{"2023-03-04": first}, migratedAt)
	assert.Equal(t, first, third)
}

func TestGetLog_DoesNotMutateStore(t *testing.T) {
	logs := models.Logs{"2023-03-04": {Date: "2023-03-04", LegacyExerciseStarted: true}}

	log := GetLogAt("2023-03-04", logs, migratedAt)
	log.Exercises[0].Minutes = 50

	assert.Nil(t, logs["2023-03-04"].Exercises)
	assert.Nil(t, logs["2023-03-04"].HygieneLogs)
}

func TestGetLog_ReturnedListsDoNotAliasStore(t *testing.T) {
	logs := models.Logs{"2024-01-01": {
		Date:        "2024-01-01",
		Exercises:   []models.ExerciseEntry{{ID: "a", Minutes: 5}},
		HygieneLogs: []models.HygieneEntry{},
	}}

	log := GetLog("2024-01-01", logs)
	log.Exercises[0].Minutes = 60

	assert.Equal(t, 5, logs["2024-01-01"].Exercises[0].Minutes)
}

func TestApply_OnlyTouchesTargetDate(t *testing.T) {
	sleep := "23:00"
	logs := models.Logs{
		"2024-01-01": {Date: "2024-01-01", WaterClicks: 2, Exercises: []models.ExerciseEntry{}, HygieneLogs: []models.HygieneEntry{}},
		"2024-01-02": {Date: "2024-01-02", SleepTime: &sleep, Exercises: []models.ExerciseEntry{{ID: "e"}}, HygieneLogs: []models.HygieneEntry{}},
	}
	before := logs.Clone()

	water := 7
	next := Apply(logs, "2024-01-01", models.Patch{WaterClicks: &water}, migratedAt)

	assert.Equal(t, 7, next["2024-01-01"].WaterClicks)
	assert.Equal(t, before["2024-01-02"], next["2024-01-02"])
	assert.Equal(t, before, logs, "input store must not change")
}

func TestApply_NewDateGetsDefaultBase(t *testing.T) {
	sleep := "22:10"
	next := Apply(models.Logs{}, "2024-05-05", models.Patch{SleepTime: &sleep}, migratedAt)

	log := next["2024-05-05"]
	assert.Equal(t, "2024-05-05", log.Date)
	assert.Equal(t, "22:10", *log.SleepTime)
	assert.NotNil(t, log.Exercises)
	assert.NotNil(t, log.HygieneLogs)
}

func TestApply_UpgradesLegacyRecord(t *testing.T) {
	logs := models.Logs{"2023-03-04": {Date: "2023-03-04", LegacyExerciseStarted: true, LegacyShowerType: models.ShowerNight}}

	water := 1
	next := Apply(logs, "2023-03-04", models.Patch{WaterClicks: &water}, migratedAt)

	stored := next["2023-03-04"]
	require.Len(t, stored.Exercises, 1)
	require.Len(t, stored.HygieneLogs, 1)
	assert.False(t, NeedsMigration(stored))
}

func TestUpdate_ForcesDate(t *testing.T) {
	next := Update(models.Logs{}, "2024-01-01", migratedAt, func(l models.DailyLog) models.DailyLog {
		l.Date = "1999-01-01"
		l.WaterClicks++
		return l
	})
	assert.Equal(t, "2024-01-01", next["2024-01-01"].Date)
	assert.NotContains(t, next, "1999-01-01")
}

func TestRemoveExercise(t *testing.T) {
	logs := models.Logs{"2024-01-01": {
		Date:        "2024-01-01",
		Exercises:   []models.ExerciseEntry{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		HygieneLogs: []models.HygieneEntry{},
	}}

	next, ok := RemoveExercise(logs, "2024-01-01", "b", migratedAt)
	require.True(t, ok)
	ids := []string{}
	for _, e := range next["2024-01-01"].Exercises {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"a", "c"}, ids)
	assert.Len(t, logs["2024-01-01"].Exercises, 3)

	_, ok = RemoveExercise(logs, "2024-01-01", "zzz", migratedAt)
	assert.False(t, ok)
}

func TestRemoveHygiene_LegacyEntry(t *testing.T) {
	logs := models.Logs{"2023-03-04": {Date: "2023-03-04", LegacyShowerType: models.ShowerMorning}}

	next, ok := RemoveHygiene(logs, "2023-03-04", "legacy-shower-2023-03-04", migratedAt)
	require.True(t, ok)
	assert.NotNil(t, next["2023-03-04"].HygieneLogs)
	assert.Empty(t, next["2023-03-04"].HygieneLogs)

	// The legacy field is still there, but the list is now present so the
	// entry does not come back.
	again := GetLogAt("2023-03-04", next, migratedAt)
	assert.Empty(t, again.HygieneLogs)
}

func TestMigrateAll(t *testing.T) {
	logs := models.Logs{
		"2023-03-05": {Date: "2023-03-05", LegacyShowerType: models.ShowerNight},
		"2023-03-04": {Date: "2023-03-04", LegacyExerciseStarted: true},
		"2024-01-01": Default("2024-01-01"),
	}

	next, changed := MigrateAll(logs, migratedAt)

	assert.Equal(t, []string{"2023-03-04", "2023-03-05"}, changed)
	for date, log := range next {
		assert.False(t, NeedsMigration(log), date)
	}

	_, changed = MigrateAll(next, migratedAt)
	assert.Empty(t, changed)
}
