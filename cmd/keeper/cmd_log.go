package main

import (
	"context"
	"encoding/json"
	"fmt"
	"gentle-keeper_app/internal/dayservice"
	"gentle-keeper_app/internal/feedback"
	"gentle-keeper_app/internal/models"
	"gentle-keeper_app/internal/summary"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exerciseKind    string
	exerciseMinutes int
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the log of a day",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

var waterCmd = &cobra.Command{
	Use:   "water [clicks]",
	Short: "Record one or more sips of water",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWater,
}

var exerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Record or remove exercise sessions",
}

var exerciseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record an exercise session",
	Example: `  keeper exercise add --kind active --minutes 20
  keeper exercise add            # 10 minutes of stretching`,
	Args: cobra.NoArgs,
	RunE: runExerciseAdd,
}

var exerciseRemoveCmd = &cobra.Command{
	Use:     "rm [id]",
	Aliases: []string{"remove"},
	Short:   "Remove an exercise session by id",
	Args:    cobra.ExactArgs(1),
	RunE:    runExerciseRemove,
}

var hygieneCmd = &cobra.Command{
	Use:   "hygiene",
	Short: "Record or remove hygiene events",
}

var hygieneAddCmd = &cobra.Command{
	Use:       "add [morning|night|other]",
	Short:     "Record a hygiene event",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"morning", "night", "other"},
	RunE:      runHygieneAdd,
}

var hygieneRemoveCmd = &cobra.Command{
	Use:     "rm [id]",
	Aliases: []string{"remove"},
	Short:   "Remove a hygiene event by id",
	Args:    cobra.ExactArgs(1),
	RunE:    runHygieneRemove,
}

var sleepCmd = &cobra.Command{
	Use:   "sleep",
	Short: "Record when you went to sleep",
}

var sleepSetCmd = &cobra.Command{
	Use:   "set [HH:MM]",
	Short: "Set the sleep time",
	Args:  cobra.ExactArgs(1),
	RunE:  runSleepSet,
}

var sleepClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the sleep time",
	Args:  cobra.NoArgs,
	RunE:  runSleepClear,
}

var sleepOptionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List suggested bedtimes (every 10 minutes, 19:00 to 07:00)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, opt := range summary.SleepOptions() {
			fmt.Fprintln(out, opt)
		}
		return nil
	},
}

func init() {
	exerciseAddCmd.Flags().StringVarP(&exerciseKind, "kind", "k", string(models.ExerciseStretch), "active or stretch")
	exerciseAddCmd.Flags().IntVarP(&exerciseMinutes, "minutes", "m", 10, "duration in minutes")
	exerciseCmd.AddCommand(exerciseAddCmd, exerciseRemoveCmd)
	hygieneCmd.AddCommand(hygieneAddCmd, hygieneRemoveCmd)
	sleepCmd.AddCommand(sleepSetCmd, sleepClearCmd, sleepOptionsCmd)
}

// targetDate is --date, or today when the flag is empty.
func targetDate() (string, error) {
	if dateFlag == "" {
		return models.Today(now()), nil
	}
	if _, err := models.ParseDate(dateFlag); err != nil {
		return "", err
	}
	return dateFlag, nil
}

func runShow(cmd *cobra.Command, args []string) error {
	date, err := targetDate()
	if err != nil {
		return err
	}
	return ctrl.Run(cmd.Context(), false, func(ctx context.Context, svc *dayservice.DayService) error {
		log, err := svc.Day(date)
		if err != nil {
			return err
		}
		return printLog(cmd.OutOrStdout(), log)
	})
}

func runWater(cmd *cobra.Command, args []string) error {
	date, err := targetDate()
	if err != nil {
		return err
	}
	clicks := 1
	if len(args) == 1 {
		clicks, err = strconv.Atoi(args[0])
		if err != nil || clicks <= 0 {
			return fmt.Errorf("clicks must be a positive integer, got %q", args[0])
		}
	}
	return ctrl.Run(cmd.Context(), true, func(ctx context.Context, svc *dayservice.DayService) error {
		log, err := svc.AddWater(ctx, date, clicks)
		if err != nil {
			return err
		}
		logger.Info("water recorded", zap.String("date", date), zap.Int("clicks", log.WaterClicks))
		sip := ctrl.Config().Habits.WaterSipML
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %d ml (%.0f%%)\n",
			picker.Random(feedback.Water),
			summary.WaterVolume(log, sip),
			summary.WaterProgress(log, sip, ctrl.Config().Habits.DailyWaterGoalML))
		return nil
	})
}

func runExerciseAdd(cmd *cobra.Command, args []string) error {
	date, err := targetDate()
	if err != nil {
		return err
	}
	return ctrl.Run(cmd.Context(), true, func(ctx context.Context, svc *dayservice.DayService) error {
		entry, err := svc.AddExercise(ctx, date, models.ExerciseKind(strings.ToLower(exerciseKind)), exerciseMinutes)
		if err != nil {
			return err
		}
		logger.Info("exercise recorded",
			zap.String("date", date),
			zap.String("id", entry.ID),
			zap.String("kind", entry.Kind.String()),
			zap.Int("minutes", entry.Minutes))
		fmt.Fprintf(cmd.OutOrStdout(), "%s  [%s]\n", picker.Random(feedback.Exercise), entry.ID)
		return nil
	})
}

func runExerciseRemove(cmd *cobra.Command, args []string) error {
	date, err := targetDate()
	if err != nil {
		return err
	}
	return ctrl.Run(cmd.Context(), true, func(ctx context.Context, svc *dayservice.DayService) error {
		log, err := svc.RemoveExercise(ctx, date, args[0])
		if err != nil {
			return err
		}
		return printLog(cmd.OutOrStdout(), log)
	})
}

func runHygieneAdd(cmd *cobra.Command, args []string) error {
	date, err := targetDate()
	if err != nil {
		return err
	}
	return ctrl.Run(cmd.Context(), true, func(ctx context.Context, svc *dayservice.DayService) error {
		entry, err := svc.AddHygiene(ctx, date, models.HygieneKind(strings.ToLower(args[0])))
		if err != nil {
			return err
		}
		logger.Info("hygiene recorded", zap.String("date", date), zap.String("id", entry.ID))
		fmt.Fprintf(cmd.OutOrStdout(), "%s  [%s]\n", feedback.HygieneLogged, entry.ID)
		return nil
	})
}

func runHygieneRemove(cmd *cobra.Command, args []string) error {
	date, err := targetDate()
	if err != nil {
		return err
	}
	return ctrl.Run(cmd.Context(), true, func(ctx context.Context, svc *dayservice.DayService) error {
		log, err := svc.RemoveHygiene(ctx, date, args[0])
		if err != nil {
			return err
		}
		return printLog(cmd.OutOrStdout(), log)
	})
}

func runSleepSet(cmd *cobra.Command, args []string) error {
	date, err := targetDate()
	if err != nil {
		return err
	}
	hhmm := args[0]
	msg, err := picker.Sleep(hhmm)
	if err != nil {
		return err
	}
	return ctrl.Run(cmd.Context(), true, func(ctx context.Context, svc *dayservice.DayService) error {
		if _, err := svc.SetSleep(ctx, date, hhmm); err != nil {
			return err
		}
		logger.Info("sleep recorded", zap.String("date", date), zap.String("time", hhmm))
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	})
}

func runSleepClear(cmd *cobra.Command, args []string) error {
	date, err := targetDate()
	if err != nil {
		return err
	}
	return ctrl.Run(cmd.Context(), true, func(ctx context.Context, svc *dayservice.DayService) error {
		log, err := svc.ClearSleep(ctx, date)
		if err != nil {
			return err
		}
		return printLog(cmd.OutOrStdout(), log)
	})
}

func printLog(w io.Writer, log models.DailyLog) error {
	if jsonOutput {
		return writeJSON(w, log)
	}

	habits := ctrl.Config().Habits
	fmt.Fprintf(w, "%s\n", log.Date)
	fmt.Fprintf(w, "  water     %d sips, %d ml (%.0f%% of %d ml)\n",
		log.WaterClicks,
		summary.WaterVolume(log, habits.WaterSipML),
		summary.WaterProgress(log, habits.WaterSipML, habits.DailyWaterGoalML),
		habits.DailyWaterGoalML)

	fmt.Fprintf(w, "  exercise  %d min (active %d, stretch %d)",
		summary.ExerciseMinutes(log),
		summary.MinutesByKind(log, models.ExerciseActive),
		summary.MinutesByKind(log, models.ExerciseStretch))
	if last, ok := log.LastExercise(); ok {
		fmt.Fprintf(w, ", last %s", last.Kind)
	}
	fmt.Fprintln(w)
	for _, e := range log.Exercises {
		fmt.Fprintf(w, "    %s  %-7s %3d min  %s\n", e.Timestamp.Local().Format("15:04"), e.Kind, e.Minutes, e.ID)
	}

	fmt.Fprintf(w, "  hygiene   %d", len(log.HygieneLogs))
	if last, ok := log.LastHygiene(); ok {
		fmt.Fprintf(w, ", last %s", last.Kind)
	}
	fmt.Fprintln(w)
	for _, h := range log.HygieneLogs {
		fmt.Fprintf(w, "    %s  %-7s %s\n", h.Timestamp.Local().Format("15:04"), h.Kind, h.ID)
	}

	if log.HasSleep() {
		band, err := summary.ClassifySleep(*log.SleepTime)
		if err != nil {
			fmt.Fprintf(w, "  sleep     %s\n", *log.SleepTime)
		} else {
			fmt.Fprintf(w, "  sleep     %s (%s)\n", *log.SleepTime, band)
		}
	} else {
		fmt.Fprintf(w, "  sleep     --:--\n")
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
