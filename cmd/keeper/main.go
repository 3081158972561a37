package main

import (
	"errors"
	"fmt"
	"gentle-keeper_app/internal/config"
	"gentle-keeper_app/internal/controller"
	"gentle-keeper_app/internal/feedback"
	"math/rand/v2"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	configPath string
	dateFlag   string
	verbose    bool
	jsonOutput bool

	logger *zap.Logger
	ctrl   *controller.Controller
	picker *feedback.Picker

	// now is swapped in tests.
	now = time.Now
)

var rootCmd = &cobra.Command{
	Use:   "keeper",
	Short: "A gentle daily log for water, movement, hygiene and sleep",
	Long: `keeper records small daily habits and shows how steadily you keep them.

Every command works on today's local date unless --date is given. The
"flow" is the longest run of days with anything logged, where up to two
quiet days in a row do not break it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		missing := errors.Is(err, os.ErrNotExist)
		if err != nil && !missing {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger, err = controller.NewLogger(cfg.Log, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		if missing {
			logger.Debug("config file not found, using defaults", zap.String("path", configPath))
		}

		ctrl = controller.NewController(cfg, logger)
		picker = feedback.NewPicker(
			rand.NewPCG(uint64(now().UnixNano()), 0),
			cfg.Habits.TargetSleepStart,
			cfg.Habits.TargetSleepEnd,
		)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "keeper.yaml", "path to the YAML config file")
	rootCmd.PersistentFlags().StringVarP(&dateFlag, "date", "d", "", "date to act on (YYYY-MM-DD, default today)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print JSON instead of text")

	rootCmd.AddCommand(showCmd, waterCmd, exerciseCmd, hygieneCmd, sleepCmd)
	rootCmd.AddCommand(statsCmd, historyCmd, chartCmd, migrateCmd, initCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
