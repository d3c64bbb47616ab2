package roster

import (
	"database/sql"
	"strconv"
	"testing"

	"bachelorette-db/lib/scrapers/wikipedia"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseAge(t *testing.T) {
	require.Equal(t, sql.NullInt64{Int64: 29, Valid: true}, ParseAge(" 29 "))
	require.False(t, ParseAge("").Valid)
	require.False(t, ParseAge("N/A").Valid)
}

func TestNormalizeEarlySeason(t *testing.T) {
	raw := []wikipedia.Row{
		{"Name": "Ryan Sutter", "Age": "28", "Hometown": "Vail, Colorado", "Job": "Firefighter", "Eliminated": "Winner"},
		{"Name": "Charlie Maher", "Age": "28", "Hometown": "Hermosa Beach, California", "Job": "Financial Analyst", "Eliminated": "Runner-up"},
		{"Name": "Russ", "Age": "30", "Hometown": "San Rafael, California", "Job": "Writer", "Eliminated": "Episode 5"},
		{"Name": "Greg", "Age": "28", "Hometown": "Manhattan Beach, California", "Job": "Entrepreneur", "Eliminated": "Episode 4"},
		{"Name": "Bob", "Age": "34", "Hometown": "Fort Lauderdale, Florida", "Job": "Accountant", "Eliminated": "Episode 4"},
		{"Name": "Brian", "Age": "unknown", "Hometown": "Chicago, Illinois", "Job": "Teacher", "Eliminated": ""},
	}

	records, err := NewNormalizer().Normalize(1, raw)
	if err != nil {
		t.Fatal(err)
	}

	expected := []Record{
		{Season: 1, Name: "Ryan Sutter", Age: sql.NullInt64{Int64: 28, Valid: true}, Occupation: "Firefighter", Hometown: "Vail, Colorado", Outcome: "Winner", Place: 1},
		{Season: 1, Name: "Charlie Maher", Age: sql.NullInt64{Int64: 28, Valid: true}, Occupation: "Financial Analyst", Hometown: "Hermosa Beach, California", Outcome: "Runner-up", Place: 2},
		{Season: 1, Name: "Russ", Age: sql.NullInt64{Int64: 30, Valid: true}, Occupation: "Writer", Hometown: "San Rafael, California", Outcome: "Week 5", Place: 3},
		{Season: 1, Name: "Greg", Age: sql.NullInt64{Int64: 28, Valid: true}, Occupation: "Entrepreneur", Hometown: "Manhattan Beach, California", Outcome: "Week 4", Place: 4},
		{Season: 1, Name: "Bob", Age: sql.NullInt64{Int64: 34, Valid: true}, Occupation: "Accountant", Hometown: "Fort Lauderdale, Florida", Outcome: "Week 4", Place: 4},
		{Season: 1, Name: "Brian", Occupation: "Teacher", Hometown: "Chicago, Illinois", Outcome: "Week 4", Place: 4},
	}
	if diff := cmp.Diff(expected, records); diff != "" {
		t.Fatalf("unexpected records (-want +got):\n%s", diff)
	}
}

func TestNormalizeTiedSeason(t *testing.T) {
	raw := []wikipedia.Row{
		{"Name": "JP Rosenbaum", "Age": "33", "Hometown": "Roslyn, New York", "Occupation": "Construction Manager", "Outcome": "Winner", "Place": "1"},
		{"Name": "Ed Swiderski", "Age": "29", "Hometown": "Chicago, Illinois", "Occupation": "Consultant", "Outcome": "Episode 9", "Place": "2"},
		{"Name": "Frank Neuschaefer", "Age": "32", "Hometown": "Chicago, Illinois", "Occupation": "Sales Executive", "Outcome": "5-6th"},
		{"Name": "Kasey Kahl", "Age": "28", "Hometown": "Scottsdale, Arizona", "Occupation": "Medical Sales"},
	}

	batch := Tidy(7, TiedPlacementFormat, KnownOverrides, raw)
	require.Equal(t, []string{"Winner", "Week 9", "Week 9", "Week 9"}, batch.Outcomes)
	require.Equal(t, []string{"1", "2", "5", "5"}, batch.Places)
	for _, row := range batch.Rows {
		require.Equal(t, "7", row[FieldSeason])
	}

	records, err := batch.Records()
	if err != nil {
		t.Fatal(err)
	}
	require.Len(t, records, 4)
	require.Equal(t, "Kasey Kahl", records[3].Name)
	require.Equal(t, 5, records[3].Place)
}

func TestNormalizeSeason16(t *testing.T) {
	raw := []wikipedia.Row{
		{"Name": "Dale Moss", "Outcome": "Engaged", "Place": "1"},
		{"Name": "Zac Clark", "Outcome": "", "Place": "1"},
		{"Name": "Ben Smith", "Outcome": "Episode 12", "Place": "2"},
		{"Name": "Ivan Hall", "Outcome": "Episode 12", "Place": "3"},
	}

	records, err := NewNormalizer().Normalize(16, raw)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "Clare's Winner", records[0].Outcome)
	require.Equal(t, "Tayshia's Winner", records[1].Outcome)
	require.Equal(t, "Tayshia's Runner-Up", records[2].Outcome)
	require.Equal(t, "Week 12", records[3].Outcome)
}

func TestNormalizeInvariants(t *testing.T) {
	normalizer := NewNormalizer()
	for _, season := range []int{2, 9} {
		raw := make([]wikipedia.Row, 0, 12)
		for i := 0; i < 12; i++ {
			row := wikipedia.Row{"Name": "Contestant " + strconv.Itoa(i)}
			if i%3 == 0 {
				row["Outcome"] = "Episode " + strconv.Itoa(12-i)
				row["Eliminated"] = row["Outcome"]
				row["Place"] = strconv.Itoa(i+1) + "-" + strconv.Itoa(i+3) + "th"
			}
			raw = append(raw, row)
		}

		records, err := normalizer.Normalize(season, raw)
		if err != nil {
			t.Fatal(err)
		}
		require.Len(t, records, len(raw))

		for i, r := range records {
			require.NotEmpty(t, r.Outcome, "season %d row %d", season, i)
			require.Positive(t, r.Place, "season %d row %d", season, i)
			if i > 0 {
				require.GreaterOrEqual(t, r.Place, records[i-1].Place, "season %d row %d", season, i)
			}
		}
	}
}

func TestNormalizeErrors(t *testing.T) {
	normalizer := NewNormalizer()

	_, err := normalizer.Normalize(42, []wikipedia.Row{{"Name": "A"}})
	require.ErrorIs(t, err, ErrUnknownFormat)

	_, err = normalizer.Normalize(5, []wikipedia.Row{{"Name": "A", "Place": "1"}})
	require.ErrorIs(t, err, ErrIncompleteRecord)

	_, err = normalizer.Normalize(5, []wikipedia.Row{{"Name": "A", "Outcome": "Winner", "Place": "Winner"}})
	require.ErrorIs(t, err, ErrIncompleteRecord)
}

func TestNormalizeBlankName(t *testing.T) {
	raw := []wikipedia.Row{
		{"Name": "Jason", "Outcome": "Winner", "Place": "1"},
		{},
		{"Name": "Luke", "Outcome": "Episode 8", "Place": "2"},
	}
	_, err := NewNormalizer().Normalize(5, raw)
	require.ErrorIs(t, err, ErrIncompleteRecord)
	require.ErrorContains(t, err, "season 5 row 1: blank name")
}

// a tied row that keeps its own Outcome cell while the Place cell spans
// from the row above ends up with the outcome as its place, the season is
// rejected instead of being stored with a made up place.
func TestNormalizeSpanningPlaceWithOwnOutcome(t *testing.T) {
	raw := []wikipedia.Row{
		{"Name": "Jason", "Age": "30", "Hometown": "Seattle", "Occupation": "Account Manager", "Outcome": "Winner", "Place": "1"},
		{"Name": "Luke", "Age": "28", "Hometown": "Austin, Texas", "Occupation": "Consultant", "Outcome": "Week 8", "Place": "2"},
		{"Name": "Chris", "Age": "31", "Hometown": "Denver, Colorado", "Occupation": "Attorney", "Outcome": "Week 7", "Place": "3-4th"},
		{"Name": "Sam", "Age": "27", "Hometown": "Miami, Florida", "Occupation": "Chef", "Outcome": "Week 7"},
		{"Name": "Tom", "Age": "33", "Hometown": "Reno, Nevada", "Occupation": "Pilot"},
	}

	batch := Tidy(5, TiedPlacementFormat, KnownOverrides, raw)
	require.Equal(t, []string{"1", "2", "3", "Week", "Week"}, batch.Places)

	_, err := NewNormalizer().Normalize(5, raw)
	require.ErrorIs(t, err, ErrIncompleteRecord)
	require.ErrorContains(t, err, "season 5 row 3: place 'Week' is not a number")
}
