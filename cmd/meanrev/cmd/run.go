package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/meanrev/config"
	"github.com/rustyeddy/meanrev/feed"
	"github.com/rustyeddy/meanrev/indicators"
	"github.com/rustyeddy/meanrev/internal/logger"
	"github.com/rustyeddy/meanrev/journal"
	"github.com/rustyeddy/meanrev/market"
	"github.com/rustyeddy/meanrev/report"
	"github.com/rustyeddy/meanrev/sim"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Replay a tick series through the mean-reversion rule",
	Long: `Run replays a historical tick CSV (time,price[,bid,ask]) through the
RSI mean-reversion rule and prints a performance report.

Without --ticks a synthetic placeholder series is generated, which is
useful for a quick demonstration of the full pipeline.

Example:
  meanrev run --ticks data/eurusd.csv --balance 10000 --stake 10 --json`,
	RunE: runReplay,
}

var (
	runTicksPath  string
	runConfigPath string
	runBalance    float64
	runStake      float64
	runSMAPeriod  int
	runRSIPeriod  int
	runEntry      float64
	runExit       float64
	runJournal    string
	runTradesFile string
	runDBPath     string
	runJSON       bool
	runSynthN     int
	runVerbose    bool
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runTicksPath, "ticks", "t", "", "path to tick CSV (time,price[,bid,ask]); omit for synthetic data")
	runCmd.Flags().StringVarP(&runConfigPath, "config", "c", "", "path to YAML/JSON config file")

	runCmd.Flags().Float64VarP(&runBalance, "balance", "b", 10_000, "starting account balance")
	runCmd.Flags().Float64VarP(&runStake, "stake", "s", 10, "stake amount per trade")
	runCmd.Flags().IntVar(&runSMAPeriod, "sma-period", 14, "SMA period")
	runCmd.Flags().IntVar(&runRSIPeriod, "rsi-period", 14, "RSI period")
	runCmd.Flags().Float64Var(&runEntry, "entry", 30, "RSI entry threshold (buy below)")
	runCmd.Flags().Float64Var(&runExit, "exit", 70, "RSI exit threshold (sell above)")

	runCmd.Flags().StringVar(&runJournal, "journal", "", "persistent journal sink (csv, sqlite)")
	runCmd.Flags().StringVar(&runTradesFile, "trades-file", "./trades.csv", "CSV journal output path")
	runCmd.Flags().StringVarP(&runDBPath, "db", "d", "./meanrev.sqlite", "SQLite journal DB path")

	runCmd.Flags().BoolVar(&runJSON, "json", false, "emit the report as JSON instead of text")
	runCmd.Flags().IntVar(&runSynthN, "synthetic-ticks", 100, "length of the synthetic series when --ticks is omitted")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "enable debug logging")
}

func runReplay(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if runVerbose {
		level = slog.LevelDebug
	}
	log := logger.Init("run", level)

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	ticks, dataset, err := acquireTicks(log)
	if err != nil {
		return fmt.Errorf("acquire ticks: %w", err)
	}

	frames, err := indicators.ComputeFrames(ticks, cfg.Strategy.SMAPeriod, cfg.Strategy.RSIPeriod)
	if err != nil {
		return err
	}

	engine := sim.NewEngine(sim.Config{
		InitialBalance: cfg.Account.Balance,
		StakeAmount:    cfg.Strategy.StakeAmount,
		EntryThreshold: cfg.Strategy.EntryThreshold,
		ExitThreshold:  cfg.Strategy.ExitThreshold,
	})

	rec, err := openRecorder(cfg.Journal, dataset)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	if rec != nil {
		defer rec.Close()
		engine.SetRecorder(rec)
	}

	if err := engine.Run(frames); err != nil {
		return fmt.Errorf("replay: %w", err)
	}

	if pos := engine.Position(); pos.Open {
		log.Info("position left open at end of series",
			"entry_price", pos.EntryPrice, "entry_time", pos.EntryTime)
	}

	rep := report.Summarize(cfg.Account.Balance, engine.Balance(), engine.Trades())

	if runJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}
	report.WriteText(os.Stdout, rep)
	return nil
}

// buildConfig layers the optional config file under any flags the user set
// explicitly on the command line.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if runConfigPath != "" {
		loaded, err := config.LoadFromFile(runConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("balance") {
		cfg.Account.Balance = runBalance
	}
	if flags.Changed("stake") {
		cfg.Strategy.StakeAmount = runStake
	}
	if flags.Changed("sma-period") {
		cfg.Strategy.SMAPeriod = runSMAPeriod
	}
	if flags.Changed("rsi-period") {
		cfg.Strategy.RSIPeriod = runRSIPeriod
	}
	if flags.Changed("entry") {
		cfg.Strategy.EntryThreshold = runEntry
	}
	if flags.Changed("exit") {
		cfg.Strategy.ExitThreshold = runExit
	}
	if flags.Changed("journal") {
		cfg.Journal.Type = runJournal
		cfg.Journal.TradesFile = runTradesFile
		cfg.Journal.DBPath = runDBPath
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func acquireTicks(log *slog.Logger) ([]market.Tick, string, error) {
	if runTicksPath != "" {
		ticks, err := feed.LoadTicks(runTicksPath)
		if err != nil {
			return nil, "", err
		}
		log.Info("loaded ticks", "path", runTicksPath, "count", len(ticks))
		return ticks, runTicksPath, nil
	}

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ticks := feed.Synthetic(runSynthN, start, time.Minute)
	log.Info("no input file given, generated synthetic series", "count", len(ticks))
	return ticks, "synthetic", nil
}

func openRecorder(jc config.JournalConfig, dataset string) (journal.Recorder, error) {
	switch jc.Type {
	case "", "none":
		return nil, nil
	case "csv":
		return journal.NewCSV(jc.TradesFile)
	case "sqlite":
		return journal.NewSQLite(jc.DBPath, dataset)
	default:
		return nil, fmt.Errorf("unknown journal type %q", jc.Type)
	}
}
