package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "restaurant-analytics",
	Short: "Read-only analytics API over restaurant and order data",
	Long: `restaurant-analytics serves catalog search, order listing, daily order trends and
revenue rankings over a snapshot of restaurant and order records. The snapshot is
loaded from JSON files, S3 or Postgres and reloaded when it expires.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json or toml); environment variables take precedence")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(generateCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
