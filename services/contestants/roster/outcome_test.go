package roster

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func outcomeRows(outcomes ...string) []Row {
	rows := make([]Row, len(outcomes))
	for i, o := range outcomes {
		rows[i] = Row{FieldOutcome: o}
	}
	return rows
}

func TestTidyOutcomes(t *testing.T) {
	testCases := []struct {
		name     string
		raw      []string
		expected []string
	}{
		{
			name:     "carry forward",
			raw:      []string{"Winner", "Runner-up", "Episode 7", "", "", "Episode 6"},
			expected: []string{"Winner", "Runner-up", "Week 7", "Week 7", "Week 7", "Week 6"},
		},
		{
			name:     "first row is left alone",
			raw:      []string{"Episode 1", "Episode 1"},
			expected: []string{"Episode 1", "Week 1"},
		},
		{
			name:     "blank first row",
			raw:      []string{"", ""},
			expected: []string{"", ""},
		},
		{
			name:     "empty batch",
			raw:      []string{},
			expected: []string{},
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, TidyOutcomes(outcomeRows(test.raw...)))
		})
	}
}

func TestTidyOutcomesMissingLabel(t *testing.T) {
	outcomes := TidyOutcomes([]Row{
		{FieldOutcome: "Week 2"},
		{FieldName: "no outcome cell"},
	})
	require.Equal(t, []string{"Week 2", "Week 2"}, outcomes)
}

func TestTidyOutcomesIdempotent(t *testing.T) {
	tidied := TidyOutcomes(outcomeRows("Winner", "Episode 9", "", "Episode 8", ""))
	for _, o := range tidied {
		require.NotEmpty(t, o)
		require.NotContains(t, o, "Episode")
	}
	require.Equal(t, tidied, TidyOutcomes(outcomeRows(tidied...)))
}

func TestOverrides(t *testing.T) {
	tidied := TidyOutcomes(outcomeRows("Winner", "Winner", "Runner-up", "Week 9", ""))

	patched := KnownOverrides.Apply(16, FieldOutcome, tidied)
	require.Equal(
		t,
		[]string{"Clare's Winner", "Tayshia's Winner", "Tayshia's Runner-Up", "Week 9", "Week 9"},
		patched,
	)
	require.Equal(t, "Winner", tidied[0], "Apply must not modify its input")

	require.Equal(t, tidied, KnownOverrides.Apply(15, FieldOutcome, tidied))
	require.Equal(t, tidied, KnownOverrides.Apply(16, FieldPlace, tidied))

	short := KnownOverrides.Apply(16, FieldOutcome, []string{"Winner"})
	require.Equal(t, []string{"Clare's Winner"}, short)

	require.Len(t, KnownOverrides.ForSeason(16), 3)
	require.Empty(t, KnownOverrides.ForSeason(1))
}
