package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"bachelorette-db/cmd/bachelorette-cli/globals"
	"bachelorette-db/lib/telemetry"
	"bachelorette-db/lib/util/serviceutil"

	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "bachelorette-cli",
	Short: "bachelorette-cli scrapes the contestant rosters of The Bachelorette into a sqlite database.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		telemetry.InitSlog(verbose)

		ctx := cmd.Context()
		err := telemetry.SetupFromEnv(ctx, "bachelorette-cli")
		if err != nil {
			return fmt.Errorf("setup telemetry: %w", err)
		}

		config, err := globals.LoadConfig(configPath)
		if err != nil {
			return err
		}
		service, err := config.Service(verbose)
		if err != nil {
			return err
		}
		slog.DebugContext(ctx, "using database", "db", config.Database.String())

		cmd.SetContext(globals.Set(ctx, &globals.Value{
			Config:  config,
			Service: service,
		}))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		shutdownTelemetry()
	},
}

var (
	shutdown = telemetry.Shutdown
	exit     = serviceutil.Fatal
)

func shutdownTelemetry() {
	err := shutdown(context.Background())
	if err != nil {
		slog.Warn("failed to shutdown telemetry", "err", err)
	}
}

// fatal flushes telemetry before exiting, PersistentPostRun does not run
// once the process exits.
func fatal(message string, err error) {
	shutdownTelemetry()
	exit(message, err)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging, fetched pages are dumped under dev/.state/resty")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to the config file (default: bachelorette.json5 in the working directory or above)")
}

func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseSeason(arg string) (int, error) {
	season, err := strconv.Atoi(arg)
	if err != nil || season < 1 {
		return 0, fmt.Errorf("invalid season '%s'", arg)
	}
	return season, nil
}
