package main

import (
	"context"
	"fmt"
	"gentle-keeper_app/internal/dayservice"
	"gentle-keeper_app/internal/summary"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	monthFlag string
	rangeFlag string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the longest flow and the number of active days",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

var historyCmd = &cobra.Command{
	Use:       "history [water|exercise|hygiene|sleep]",
	Short:     "Show a month calendar for one habit",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"water", "exercise", "hygiene", "sleep"},
	RunE:      runHistory,
}

var chartCmd = &cobra.Command{
	Use:       "chart [water|exercise|hygiene|sleep]",
	Short:     "Print the daily values for one habit over a week or a month",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"water", "exercise", "hygiene", "sleep"},
	RunE:      runChart,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Rewrite legacy records in the current format",
	Long: `Old records kept a single exercise flag and shower type instead of lists.
They are always read correctly; migrate writes the upgraded form back so the
stored data no longer depends on the legacy fields.`,
	Args: cobra.NoArgs,
	RunE: runMigrate,
}

func init() {
	historyCmd.Flags().StringVar(&monthFlag, "month", "", "month to show (YYYY-MM, default current)")
	chartCmd.Flags().StringVar(&rangeFlag, "range", string(summary.RangeMonth), "week or month")
}

type statsView struct {
	Flow       int `json:"flow"`
	ActiveDays int `json:"activeDays"`
}

func runStats(cmd *cobra.Command, args []string) error {
	return ctrl.Run(cmd.Context(), false, func(ctx context.Context, svc *dayservice.DayService) error {
		view := statsView{Flow: svc.Flow(), ActiveDays: svc.TotalActiveDays()}
		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), view)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "flow:        %d days\nactive days: %d\n", view.Flow, view.ActiveDays)
		return nil
	})
}

func parseMetric(s string) (summary.Metric, error) {
	m := summary.Metric(strings.ToLower(s))
	if !m.IsValid() {
		return "", fmt.Errorf("unknown habit %q, want one of water, exercise, hygiene, sleep", s)
	}
	return m, nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	metric, err := parseMetric(args[0])
	if err != nil {
		return err
	}
	month := now()
	if monthFlag != "" {
		month, err = time.Parse("2006-01", monthFlag)
		if err != nil {
			return fmt.Errorf("month %q: want YYYY-MM", monthFlag)
		}
	}

	return ctrl.Run(cmd.Context(), false, func(ctx context.Context, svc *dayservice.DayService) error {
		cells := summary.MonthGrid(month.Year(), month.Month(), svc.Snapshot(), metric)
		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), cells)
		}
		printGrid(cmd.OutOrStdout(), month, metric, cells)
		return nil
	})
}

// printGrid draws a Sunday-first calendar. "#" marks a done day; for sleep,
// "#" is the evening band and "+" the late band.
func printGrid(w io.Writer, month time.Time, metric summary.Metric, cells []*summary.Cell) {
	fmt.Fprintf(w, "%s  %d-%02d\n", metric, month.Year(), int(month.Month()))
	fmt.Fprintln(w, " S  M  T  W  T  F  S")
	for i, c := range cells {
		mark := " . "
		switch {
		case c == nil:
			mark = "   "
		case c.Band == summary.BandLate:
			mark = " + "
		case c.Done:
			mark = " # "
		}
		fmt.Fprint(w, mark)
		if i%7 == 6 {
			fmt.Fprintln(w)
		}
	}
	if len(cells)%7 != 0 {
		fmt.Fprintln(w)
	}
}

func runChart(cmd *cobra.Command, args []string) error {
	metric, err := parseMetric(args[0])
	if err != nil {
		return err
	}
	r := summary.Range(strings.ToLower(rangeFlag))
	if r != summary.RangeWeek && r != summary.RangeMonth {
		return fmt.Errorf("range %q: want week or month", rangeFlag)
	}

	return ctrl.Run(cmd.Context(), false, func(ctx context.Context, svc *dayservice.DayService) error {
		dates := summary.RangeDates(r, now())
		points := summary.Series(svc.Snapshot(), dates, ctrl.Config().Habits.WaterSipML)
		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), points)
		}
		out := cmd.OutOrStdout()
		if metric == summary.MetricSleep {
			fmt.Fprintf(out, "axis   %s\n", sleepAxis())
		}
		for _, p := range points {
			fmt.Fprintf(out, "%s  %s\n", p.Name, chartValue(metric, p))
		}
		return nil
	})
}

func chartValue(metric summary.Metric, p summary.Point) string {
	switch metric {
	case summary.MetricWater:
		return fmt.Sprintf("%5d ml", p.WaterVolume)
	case summary.MetricExercise:
		return fmt.Sprintf("active %3d min  stretch %3d min", p.ActiveMins, p.StretchMins)
	case summary.MetricHygiene:
		return fmt.Sprintf("morning %d  night %d", p.HasMorning, p.HasNight)
	case summary.MetricSleep:
		if p.SleepOffset == nil {
			return "--:--"
		}
		return fmt.Sprintf("%s  (%.2f)", p.FormattedTime, *p.SleepOffset)
	}
	return ""
}

// sleepAxis labels the sleep offsets every two hours from 19:00 to 07:00.
func sleepAxis() string {
	ticks := make([]string, 0, 7)
	for v := 19.0; v <= 31; v += 2 {
		ticks = append(ticks, summary.FormatOffset(v))
	}
	return strings.Join(ticks, " ")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	return ctrl.Run(cmd.Context(), true, func(ctx context.Context, svc *dayservice.DayService) error {
		changed := svc.MigrateAll(ctx)
		if jsonOutput {
			if changed == nil {
				changed = []string{}
			}
			return writeJSON(cmd.OutOrStdout(), changed)
		}
		if len(changed) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "nothing to migrate")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "migrated %d days: %s\n", len(changed), strings.Join(changed, ", "))
		return nil
	})
}
