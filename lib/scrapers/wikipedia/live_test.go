package wikipedia

import (
	"context"
	"testing"

	devenv "bachelorette-db/dev/env"
	"bachelorette-db/lib/telemetry"

	"github.com/stretchr/testify/require"
	"github.com/titanous/json5"
)

type liveConfig struct {
	Seasons []int `json:"seasons"`
}

// fetches real pages, only runs when dev/.state/wikipedia_live.json5 exists
func TestLiveSeasonTable(t *testing.T) {
	contents, err := devenv.GetStateFile("wikipedia_live.json5")
	if err != nil {
		t.Skip("to run this test, create dev/.state/wikipedia_live.json5 containing { seasons: [1, 5] }")
	}
	var config liveConfig
	err = json5.Unmarshal(contents, &config)
	require.NoError(t, err)

	cleanup := telemetry.SetupForTesting("test:scrapers/wikipedia")
	defer cleanup()

	client := NewClient(ClientOptions{RequestsPerSecond: 1})
	for _, season := range config.Seasons {
		table, err := client.SeasonTable(context.Background(), season)
		require.NoError(t, err, "season %d", season)

		rows, err := ExtractRows(context.Background(), table)
		require.NoError(t, err)
		require.NotEmpty(t, rows)
		t.Logf("season %d: %d rows", season, len(rows))
	}
}
