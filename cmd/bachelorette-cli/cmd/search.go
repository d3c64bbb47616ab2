package cmd

import (
	"fmt"
	"strings"

	"bachelorette-db/cmd/bachelorette-cli/globals"
	"bachelorette-db/cmd/bachelorette-cli/utils"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var searchLimit int

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "maximum number of matches, 0 for all")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <name>",
	Short: "Finds stored contestants by name, tolerating typos.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		query := strings.Join(args, " ")

		matches, err := globals.Get(ctx).Service.Search(ctx, query, searchLimit)
		if err != nil {
			fatal("failed to search contestants", err)
		}
		if len(matches) == 0 {
			fmt.Printf("no contestant matches '%s'\n", query)
			return
		}

		t := utils.NewTable()
		t.AppendHeader(table.Row{"Season", "Name", "Place", "Outcome", "Similarity"})
		for _, m := range matches {
			c := m.Contestant
			t.AppendRow(table.Row{c.Season, c.Name, c.Place, c.Outcome, fmt.Sprintf("%.2f", m.Similarity)})
		}
		t.Render()
	},
}
