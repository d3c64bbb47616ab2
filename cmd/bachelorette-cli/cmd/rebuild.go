package cmd

import (
	"fmt"
	"time"

	"bachelorette-db/cmd/bachelorette-cli/globals"
	"bachelorette-db/cmd/bachelorette-cli/utils"
	"bachelorette-db/lib/telemetry"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(rebuildCmd)
}

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Drops the contestants table and loads every season of the configured range (seasons.first..seasons.last) again.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		g := globals.Get(ctx)

		seasons := g.Config.Seasons

		telemetry.InstrumentPerfStats(ctx, 5*time.Second)

		result, err := g.Service.Rebuild(ctx, seasons)

		t := utils.NewTable()
		t.SetTitle(fmt.Sprintf("run %s", result.RunId))
		t.AppendHeader(table.Row{"Season", "Contestants"})
		total := 0
		for _, season := range result.Seasons {
			t.AppendRow(table.Row{season, result.Loaded[season]})
			total += result.Loaded[season]
		}
		t.AppendFooter(table.Row{"Total", total})
		t.Render()

		if err != nil {
			fatal("rebuild failed", err)
		}
		fmt.Printf("loaded %d seasons in %s\n", len(result.Seasons), result.Duration.Round(time.Millisecond))
	},
}
