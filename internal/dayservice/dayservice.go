package dayservice

import (
	"context"
	"fmt"
	"gentle-keeper_app/internal/decision"
	"gentle-keeper_app/internal/models"
	"gentle-keeper_app/internal/records"
	"gentle-keeper_app/internal/storage"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DayService owns the in-memory store for one session. Every mutation is a
// read-modify-write of the whole store under mu, followed by a synchronous
// save. The in-memory store stays authoritative when a save fails.
type DayService struct {
	port   storage.Port
	logger *zap.Logger
	now    func() time.Time
	newID  func() string

	mu     sync.RWMutex
	logs   models.Logs
	loaded bool
}

type Option func(*DayService)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *DayService) { s.now = now }
}

// WithIDs replaces the uuid entry id generator.
func WithIDs(newID func() string) Option {
	return func(s *DayService) { s.newID = newID }
}

func NewDayService(port storage.Port, logger *zap.Logger, opts ...Option) *DayService {
	s := &DayService{
		port:   port,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
		logs:   models.Logs{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory store with the persisted one. A missing or
// unreadable blob leaves an empty store; the failure is only logged.
func (s *DayService) Load(ctx context.Context) {
	logs, err := s.port.Load(ctx)
	if err != nil {
		s.logger.Error("failed to load logs, starting empty", zap.Error(err))
		logs = models.Logs{}
	}

	s.mu.Lock()
	s.logs = logs
	s.loaded = true
	s.mu.Unlock()

	s.logger.Debug("logs loaded", zap.Int("days", len(logs)))
}

// Today is the current local date.
func (s *DayService) Today() string {
	return models.Today(s.now())
}

// Snapshot returns a copy of the whole store.
func (s *DayService) Snapshot() models.Logs {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.logs.Clone()
}

// Day returns the migrated log for date.
func (s *DayService) Day(date string) (models.DailyLog, error) {
	if _, err := models.ParseDate(date); err != nil {
		return models.DailyLog{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return records.GetLogAt(date, s.logs, s.now()), nil
}

func (s *DayService) Flow() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return decision.LongestFlow(s.logs)
}

func (s *DayService) TotalActiveDays() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return decision.TotalActiveDays(s.logs)
}

// Update merges patch into date's log and persists the store.
func (s *DayService) Update(ctx context.Context, date string, patch models.Patch) (models.DailyLog, error) {
	if _, err := models.ParseDate(date); err != nil {
		return models.DailyLog{}, err
	}
	if patch.SleepTime != nil {
		if _, _, err := models.ParseClock(*patch.SleepTime); err != nil {
			return models.DailyLog{}, err
		}
	}
	if patch.WaterClicks != nil && *patch.WaterClicks < 0 {
		return models.DailyLog{}, fmt.Errorf("water clicks must not be negative, got %d", *patch.WaterClicks)
	}
	return s.mutate(ctx, date, func(logs models.Logs, now time.Time) (models.Logs, error) {
		return records.Apply(logs, date, patch, now), nil
	})
}

func (s *DayService) AddWater(ctx context.Context, date string, clicks int) (models.DailyLog, error) {
	if _, err := models.ParseDate(date); err != nil {
		return models.DailyLog{}, err
	}
	if clicks <= 0 {
		return models.DailyLog{}, fmt.Errorf("clicks must be positive, got %d", clicks)
	}
	return s.mutate(ctx, date, func(logs models.Logs, now time.Time) (models.Logs, error) {
		return records.Update(logs, date, now, func(log models.DailyLog) models.DailyLog {
			log.WaterClicks += clicks
			return log
		}), nil
	})
}

func (s *DayService) AddExercise(ctx context.Context, date string, kind models.ExerciseKind, minutes int) (models.ExerciseEntry, error) {
	if _, err := models.ParseDate(date); err != nil {
		return models.ExerciseEntry{}, err
	}
	if !kind.IsValid() {
		return models.ExerciseEntry{}, fmt.Errorf("%q: %w", kind, models.ErrInvalidKind)
	}
	if minutes <= 0 {
		return models.ExerciseEntry{}, fmt.Errorf("%d: %w", minutes, models.ErrInvalidMinutes)
	}

	var entry models.ExerciseEntry
	_, err := s.mutate(ctx, date, func(logs models.Logs, now time.Time) (models.Logs, error) {
		entry = models.ExerciseEntry{ID: s.newID(), Kind: kind, Minutes: minutes, Timestamp: now}
		return records.Update(logs, date, now, func(log models.DailyLog) models.DailyLog {
			log.Exercises = append(log.Exercises, entry)
			return log
		}), nil
	})
	return entry, err
}

func (s *DayService) AddHygiene(ctx context.Context, date string, kind models.HygieneKind) (models.HygieneEntry, error) {
	if _, err := models.ParseDate(date); err != nil {
		return models.HygieneEntry{}, err
	}
	if !kind.IsValid() {
		return models.HygieneEntry{}, fmt.Errorf("%q: %w", kind, models.ErrInvalidKind)
	}

	var entry models.HygieneEntry
	_, err := s.mutate(ctx, date, func(logs models.Logs, now time.Time) (models.Logs, error) {
		entry = models.HygieneEntry{ID: s.newID(), Kind: kind, Timestamp: now}
		return records.Update(logs, date, now, func(log models.DailyLog) models.DailyLog {
			log.HygieneLogs = append(log.HygieneLogs, entry)
			return log
		}), nil
	})
	return entry, err
}

func (s *DayService) RemoveExercise(ctx context.Context, date, id string) (models.DailyLog, error) {
	if _, err := models.ParseDate(date); err != nil {
		return models.DailyLog{}, err
	}
	return s.mutate(ctx, date, func(logs models.Logs, now time.Time) (models.Logs, error) {
		next, ok := records.RemoveExercise(logs, date, id, now)
		if !ok {
			return nil, fmt.Errorf("exercise %s on %s: %w", id, date, models.ErrEntryNotFound)
		}
		return next, nil
	})
}

func (s *DayService) RemoveHygiene(ctx context.Context, date, id string) (models.DailyLog, error) {
	if _, err := models.ParseDate(date); err != nil {
		return models.DailyLog{}, err
	}
	return s.mutate(ctx, date, func(logs models.Logs, now time.Time) (models.Logs, error) {
		next, ok := records.RemoveHygiene(logs, date, id, now)
		if !ok {
			return nil, fmt.Errorf("hygiene %s on %s: %w", id, date, models.ErrEntryNotFound)
		}
		return next, nil
	})
}

func (s *DayService) SetSleep(ctx context.Context, date, hhmm string) (models.DailyLog, error) {
	return s.Update(ctx, date, models.Patch{SleepTime: &hhmm})
}

func (s *DayService) ClearSleep(ctx context.Context, date string) (models.DailyLog, error) {
	return s.Update(ctx, date, models.Patch{ClearSleep: true})
}

// MigrateAll writes back the migrated view of every stored record and returns
// the dates that were upgraded. Nothing is saved when nothing changed.
func (s *DayService) MigrateAll(ctx context.Context) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed := records.MigrateAll(s.logs, s.now())
	if len(changed) == 0 {
		return nil
	}
	s.logs = next
	s.save(ctx)
	s.logger.Info("migrated legacy records", zap.Strings("dates", changed))
	return changed
}

type mutation func(logs models.Logs, now time.Time) (models.Logs, error)

func (s *DayService) mutate(ctx context.Context, date string, fn mutation) (models.DailyLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		s.logger.Warn("writing before load; the persisted store will be overwritten")
	}

	now := s.now()
	next, err := fn(s.logs, now)
	if err != nil {
		return models.DailyLog{}, err
	}
	s.logs = next
	s.save(ctx)
	return records.GetLogAt(date, s.logs, now), nil
}

// save must be called with mu held. Failures are logged, never returned.
func (s *DayService) save(ctx context.Context) {
	if err := s.port.Save(ctx, s.logs); err != nil {
		s.logger.Error("failed to save logs, keeping in-memory state", zap.Error(err))
		return
	}
	s.logger.Debug("logs saved", zap.Int("days", len(s.logs)))
}
