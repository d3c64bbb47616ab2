package cmd

import (
	"bachelorette-db/cmd/bachelorette-cli/globals"
	"bachelorette-db/cmd/bachelorette-cli/utils"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show [season]",
	Short: "Prints the stored contestants, or the contestant count of every season when no season is given.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		service := globals.Get(ctx).Service

		if len(args) == 0 {
			counts, err := service.SeasonCounts(ctx)
			if err != nil {
				fatal("failed to read season counts", err)
			}
			t := utils.NewTable()
			t.AppendHeader(table.Row{"Season", "Contestants"})
			for _, c := range counts {
				t.AppendRow(table.Row{c.Season, c.Contestants})
			}
			t.Render()
			return
		}

		season, err := parseSeason(args[0])
		if err != nil {
			fatal("bad argument", err)
		}
		contestants, err := service.Contestants(ctx, season)
		if err != nil {
			fatal("failed to read contestants", err)
		}

		t := utils.NewTable()
		t.AppendHeader(table.Row{"Place", "Name", "Age", "Hometown", "Occupation", "Outcome"})
		for _, c := range contestants {
			t.AppendRow(table.Row{c.Place, c.Name, utils.FormatAge(c.Age), c.Hometown, c.Occupation, c.Outcome})
		}
		t.Render()
	},
}
