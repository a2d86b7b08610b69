package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"restaurant-analytics/config"
	"restaurant-analytics/internal/generator"
	"restaurant-analytics/internal/storage"

	"github.com/spf13/cobra"
)

var generateFlags struct {
	dir         string
	restaurants int
	orders      int
	seed        int64
	start       string
	end         string
	notify      bool
	quiet       bool
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a synthetic restaurants.json and orders.json",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		start, end, err := generateRange(generateFlags.start, generateFlags.end, time.Now().UTC())
		if err != nil {
			return err
		}
		dir := generateFlags.dir
		if dir == "" {
			dir = cfg.DataDir
		}

		var progress io.Writer = os.Stderr
		if generateFlags.quiet {
			progress = nil
		}
		snapshot, err := generator.Generate(generator.Options{
			Restaurants: generateFlags.restaurants,
			Orders:      generateFlags.orders,
			Seed:        generateFlags.seed,
			Start:       start,
			End:         end,
			Progress:    progress,
		})
		if err != nil {
			return err
		}
		if err := storage.WriteFiles(dir, snapshot); err != nil {
			return fmt.Errorf("failed to write dataset: %w", err)
		}
		log.Printf("Wrote %d restaurants and %d orders to %s", len(snapshot.Restaurants), len(snapshot.Orders), dir)

		if !generateFlags.notify {
			return nil
		}
		if !cfg.KafkaEnabled() {
			return fmt.Errorf("--notify requires KAFKA_BROKER")
		}
		writer := config.NewKafkaWriter(cfg)
		defer writer.Close()
		if err := storage.NewKafkaNotifier(writer).PublishDatasetUpdated(cmd.Context(), "generate"); err != nil {
			return fmt.Errorf("failed to publish refresh message: %w", err)
		}
		log.Printf("Published dataset_updated to %s", cfg.KafkaRefreshTopic)
		return nil
	},
}

func init() {
	flags := generateCmd.Flags()
	flags.StringVar(&generateFlags.dir, "dir", "", "output directory (default DATA_DIR)")
	flags.IntVar(&generateFlags.restaurants, "restaurants", 20, "number of restaurants")
	flags.IntVar(&generateFlags.orders, "orders", 5000, "number of orders")
	flags.Int64Var(&generateFlags.seed, "seed", 42, "random seed")
	flags.StringVar(&generateFlags.start, "start", "", "first order date, YYYY-MM-DD (default 30 days before --end)")
	flags.StringVar(&generateFlags.end, "end", "", "day after the last order date, YYYY-MM-DD (default today)")
	flags.BoolVar(&generateFlags.notify, "notify", false, "publish a dataset_updated message to Kafka afterwards")
	flags.BoolVar(&generateFlags.quiet, "quiet", false, "hide the progress bar")
}

func generateRange(startFlag, endFlag string, now time.Time) (time.Time, time.Time, error) {
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if endFlag != "" {
		parsed, err := time.Parse("2006-01-02", endFlag)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --end %q: %w", endFlag, err)
		}
		end = parsed
	}
	start := end.AddDate(0, 0, -30)
	if startFlag != "" {
		parsed, err := time.Parse("2006-01-02", startFlag)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --start %q: %w", startFlag, err)
		}
		start = parsed
	}
	return start, end, nil
}
