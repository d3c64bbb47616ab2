package roster

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"bachelorette-db/lib/htmlutil"
	"bachelorette-db/lib/scrapers/wikipedia"
)

var ErrIncompleteRecord = errors.New("incomplete contestant record")

// Record is a normalized contestant, the unit written to storage.
type Record struct {
	Season     int
	Name       string
	Age        sql.NullInt64
	Occupation string
	Hometown   string
	Outcome    string
	Place      int
}

// ParseAge returns an invalid NullInt64 when the age is not a number.
func ParseAge(raw string) sql.NullInt64 {
	age, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: age, Valid: true}
}

func incomplete(season, row int, format string, args ...any) error {
	return fmt.Errorf(
		"%w: season %d row %d: %s",
		ErrIncompleteRecord, season, row, fmt.Sprintf(format, args...),
	)
}

func assemble(season int, rows []Row, outcomes, places []string) ([]Record, error) {
	records := make([]Record, len(rows))
	for i, row := range rows {
		name := htmlutil.Clean(row[FieldName])
		if name == "" {
			return nil, incomplete(season, i, "blank name")
		}
		outcome := htmlutil.Clean(outcomes[i])
		if outcome == "" {
			return nil, incomplete(season, i, "blank outcome")
		}
		place, err := strconv.Atoi(places[i])
		if err != nil {
			return nil, incomplete(season, i, "place '%s' is not a number", places[i])
		}

		records[i] = Record{
			Season:     season,
			Name:       name,
			Age:        ParseAge(row[FieldAge]),
			Occupation: htmlutil.Clean(row[FieldOccupation]),
			Hometown:   htmlutil.Clean(row[FieldHometown]),
			Outcome:    outcome,
			Place:      place,
		}
	}
	return records, nil
}

// Batch is the intermediate state of one season as it goes through the
// normalization passes.
type Batch struct {
	Season   int
	Format   Format
	Rows     []Row
	Outcomes []string
	Places   []string
}

// Tidy runs the normalization passes over the raw rows of one season.
func Tidy(season int, format Format, overrides Overrides, raw []wikipedia.Row) Batch {
	rows := format.Normalize(FromRaw(raw))
	for _, row := range rows {
		row[FieldSeason] = strconv.Itoa(season)
	}

	outcomes := TidyOutcomes(rows)
	outcomes = overrides.Apply(season, FieldOutcome, outcomes)

	places := format.TidyPlace(rows, outcomes)
	places = overrides.Apply(season, FieldPlace, places)

	return Batch{
		Season:   season,
		Format:   format,
		Rows:     rows,
		Outcomes: outcomes,
		Places:   places,
	}
}

// Records turns the batch into records, every record must have an outcome
// and a numeric place.
func (b Batch) Records() ([]Record, error) {
	return assemble(b.Season, b.Rows, b.Outcomes, b.Places)
}

// Normalizer picks the format of a season and applies the known overrides.
type Normalizer struct {
	Formats   FormatTable
	Overrides Overrides
}

func NewNormalizer() Normalizer {
	return Normalizer{
		Formats:   DefaultFormats(),
		Overrides: KnownOverrides,
	}
}

func (n Normalizer) Normalize(season int, raw []wikipedia.Row) ([]Record, error) {
	format, err := n.Formats.Lookup(season)
	if err != nil {
		return nil, err
	}
	return Tidy(season, format, n.Overrides, raw).Records()
}
