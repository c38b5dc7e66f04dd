package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"text/tabwriter"

	"blobsplit/internal/autoplay"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose    bool
	configPath string
	overrides  map[string]string
	firstSeed  int64
	seedCount  int
	workers    int
	logger     *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "blobsplit-sim",
	Short: "Play blobsplit sessions headlessly and report scores",
	Long: `blobsplit-sim runs seeded blobsplit sessions with a tapping bot and
prints per-seed results plus a summary. Runs are deterministic per seed.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runSweep,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging of session events")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML autoplay config")
	rootCmd.Flags().StringToStringVar(&overrides, "set", nil, "config override in key=value form (w, h, ticks, tap_every, strategy, restart)")
	rootCmd.Flags().Int64Var(&firstSeed, "seed", 1, "first seed")
	rootCmd.Flags().IntVarP(&seedCount, "runs", "n", 16, "number of consecutive seeds to play")
	rootCmd.Flags().IntVarP(&workers, "workers", "j", runtime.NumCPU(), "parallel sessions")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	logger.Info("starting sweep",
		zap.Int64("first_seed", firstSeed),
		zap.Int("runs", seedCount),
		zap.Int("workers", workers),
		zap.String("strategy", string(cfg.Strategy)),
		zap.Int("ticks", cfg.Ticks))

	results, err := autoplay.RunMany(ctx, cfg, autoplay.Seeds(firstSeed, seedCount), workers, logger)
	if err != nil {
		return fmt.Errorf("sweep: %w", err)
	}
	summary := autoplay.Summarize(results)
	logger.Info("sweep finished",
		zap.Int("games", summary.Games),
		zap.Int("max_score", summary.MaxScore),
		zap.Int64("best_seed", summary.BestSeed))

	return printResults(cmd.OutOrStdout(), results, summary)
}

func loadConfig() (autoplay.Config, error) {
	cfg := autoplay.DefaultConfig()
	if configPath != "" {
		loaded, err := autoplay.LoadFile(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	cfg = cfg.With(overrides)
	return cfg, cfg.Validate()
}

func printResults(w io.Writer, results []autoplay.Result, summary autoplay.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "seed\tticks\tgames\tbest\tmerges\tsplits\tpops\tpeak\t")
	for _, r := range results {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t\n",
			r.Seed, r.Ticks, r.Games, r.BestScore, r.Merges, r.Splits, r.Pops, r.PeakCircles)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nruns=%d games=%d mean_best=%.1f max=%d (seed %d) mean_ticks=%.1f\n",
		summary.Runs, summary.Games, summary.MeanScore, summary.MaxScore, summary.BestSeed, summary.MeanTicks)
	return err
}
