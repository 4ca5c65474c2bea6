package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/meanrev/feed"
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a synthetic tick CSV",
	Long: `Gen writes a synthetic placeholder series (price cycling 100..109 at
one-minute intervals) to a CSV file, the same data the run command uses
when no input is supplied.`,
	RunE: runGen,
}

var (
	genOut   string
	genCount int
	genStart string
)

func init() {
	rootCmd.AddCommand(genCmd)

	genCmd.Flags().StringVarP(&genOut, "out", "o", "./synthetic.csv", "output CSV path")
	genCmd.Flags().IntVarP(&genCount, "count", "n", 100, "number of ticks")
	genCmd.Flags().StringVar(&genStart, "start", "2024-01-01T00:00:00Z", "timestamp of the first tick (RFC3339)")
}

func runGen(cmd *cobra.Command, args []string) error {
	start, err := time.Parse(time.RFC3339, genStart)
	if err != nil {
		return fmt.Errorf("bad start time %q: %w", genStart, err)
	}

	ticks := feed.Synthetic(genCount, start, time.Minute)
	if err := feed.WriteTicks(genOut, ticks); err != nil {
		return err
	}

	fmt.Printf("wrote %d ticks to %s\n", len(ticks), genOut)
	return nil
}
