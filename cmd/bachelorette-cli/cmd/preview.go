package cmd

import (
	"bachelorette-db/cmd/bachelorette-cli/globals"
	"bachelorette-db/cmd/bachelorette-cli/utils"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview <season>",
	Short: "Scrapes and normalizes a season without writing it to the database.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		season, err := parseSeason(args[0])
		if err != nil {
			fatal("bad argument", err)
		}

		ctx := cmd.Context()
		records, err := globals.Get(ctx).Service.Scrape(ctx, season)
		if err != nil {
			fatal("failed to scrape season", err)
		}

		t := utils.NewTable()
		t.AppendHeader(table.Row{"Place", "Name", "Age", "Hometown", "Occupation", "Outcome"})
		for _, r := range records {
			t.AppendRow(table.Row{r.Place, r.Name, utils.FormatAge(r.Age), r.Hometown, r.Occupation, r.Outcome})
		}
		t.Render()
	},
}
