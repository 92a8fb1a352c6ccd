// file: cmd/root.go
// version: 1.2.0
// guid: 5b7d9f1c-3e6a-4a8c-b0d2-4f6a8c0e2d4f

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/osmlint/roadname-checker/internal/check"
	"github.com/osmlint/roadname-checker/internal/config"
	"github.com/osmlint/roadname-checker/internal/geo"
	"github.com/osmlint/roadname-checker/internal/graph"
	"github.com/osmlint/roadname-checker/internal/maproulette"
	"github.com/osmlint/roadname-checker/internal/metrics"
	"github.com/osmlint/roadname-checker/internal/store"
	"github.com/osmlint/roadname-checker/internal/task"
)

var cfgFile string
var inputPath string
var outputPath string
var storePath string
var metricsPath string
var searchDistance float64
var workers int

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "roadname-checker",
	Short: "Flag nearby road segments whose names differ by one character",
	Long: `Roadname Checker loads a road network snapshot, walks each named
segment's geographic neighborhood, and flags pairs of segments whose names
are one character edit apart while carrying the same route identifiers.

Flagged pairs become MapRoulette-style tasks written to disk or submitted
directly to a MapRoulette challenge.`,
}

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the spelling consistency check over a road snapshot",
	Long:  `Run the spelling consistency check and write the resulting tasks as JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.AppConfig
		if cfg.InputPath == "" {
			return fmt.Errorf("input snapshot not specified")
		}

		metrics.Register()

		g, err := graph.LoadFile(cfg.InputPath)
		if err != nil {
			return fmt.Errorf("failed to load road graph: %w", err)
		}
		metrics.SetGraphSegments(g.Len())
		fmt.Printf("Loaded %d segments from %s\n", g.Len(), cfg.InputPath)

		checker := &check.Check{
			SearchDistance: geo.Meters(cfg.SearchDistanceMeters),
			Workers:        cfg.Workers,
			ShowProgress:   true,
		}
		flags, errs := checker.Run(cmd.Context(), g)
		for _, runErr := range errs {
			fmt.Fprintf(os.Stderr, "Warning: traversal skipped: %v\n", runErr)
		}
		fmt.Printf("Flagged %d inconsistent name cluster(s)\n", len(flags))

		batch, err := task.NewBatch(cfg.MapRoulette.ChallengeName)
		if err != nil {
			return err
		}

		db, err := store.Open(cfg.StorePath)
		if err != nil {
			return fmt.Errorf("failed to open task store: %w", err)
		}
		defer db.Close()

		var tasks []*task.Task
		for _, flag := range flags {
			t := task.FromFlag(flag, cfg.MapRoulette.ChallengeName)
			seen, err := db.Seen(t.ChallengeName, t.Identifier)
			if err != nil {
				return err
			}
			if seen {
				continue
			}
			doc, err := t.Generate(cfg.MapRoulette.ChallengeID)
			if err != nil {
				return err
			}
			batch.Tasks = append(batch.Tasks, doc)
			tasks = append(tasks, t)
		}
		fmt.Printf("%d task(s) after dropping previously recorded ones\n", len(tasks))

		if cfg.OutputPath != "" {
			if err := writeBatch(cfg.OutputPath, batch); err != nil {
				return err
			}
			fmt.Printf("Tasks written to: %s\n", cfg.OutputPath)
		}

		if submit, _ := cmd.Flags().GetBool("submit"); submit {
			if cfg.MapRoulette.ChallengeID == 0 {
				return fmt.Errorf("maproulette.challenge_id is required for submission")
			}
			client := maproulette.NewClient(cfg.MapRoulette.BaseURL, cfg.MapRoulette.APIKey, cfg.MapRoulette.RequestsPerSecond)
			for _, t := range tasks {
				if err := client.SubmitTask(cmd.Context(), cfg.MapRoulette.ChallengeID, t); err != nil {
					metrics.IncTaskSubmitted("error")
					return fmt.Errorf("submission failed: %w", err)
				}
				metrics.IncTaskSubmitted("ok")
				if err := db.MarkSubmitted(t.ChallengeName, t.Identifier, batch.RunID); err != nil {
					return err
				}
			}
			fmt.Printf("Submitted %d task(s) to %s\n", len(tasks), cfg.MapRoulette.BaseURL)
		}

		// Written last so submission counters are included.
		if cfg.MetricsPath != "" {
			if err := metrics.WriteFile(cfg.MetricsPath); err != nil {
				return err
			}
			fmt.Printf("Metrics written to: %s\n", cfg.MetricsPath)
		}

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig, config.InitConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.roadname-checker.yaml)")
	rootCmd.PersistentFlags().StringVar(&inputPath, "input", "", "road network snapshot (GeoJSON FeatureCollection)")
	rootCmd.PersistentFlags().StringVar(&outputPath, "output", "tasks.json", "file to write generated tasks to")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "roadname-checker.pebble", "path to the task dedup store")
	rootCmd.PersistentFlags().StringVar(&metricsPath, "metrics-output", "", "file to write run metrics to in Prometheus text format")
	rootCmd.PersistentFlags().Float64Var(&searchDistance, "distance", 500, "search radius in meters around each start segment")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 4, "number of parallel traversals")

	viper.BindPFlag("input", rootCmd.PersistentFlags().Lookup("input"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("store_path", rootCmd.PersistentFlags().Lookup("store"))
	viper.BindPFlag("metrics_output", rootCmd.PersistentFlags().Lookup("metrics-output"))
	viper.BindPFlag("search_distance_meters", rootCmd.PersistentFlags().Lookup("distance"))
	viper.BindPFlag("workers", rootCmd.PersistentFlags().Lookup("workers"))

	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().Bool("submit", false, "submit generated tasks to the configured MapRoulette challenge")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".roadname-checker")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
