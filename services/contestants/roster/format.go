package roster

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var ErrUnknownFormat = errors.New("no table format registered for season")

// Format is one variant of the roster table layout. a season's format is
// looked up once and decides how its rows are normalized and ranked.
type Format interface {
	Name() string
	// Normalize renames season specific labels and fills in rows whose cells
	// were merged into a previous row, the result only uses the labels in Fields.
	Normalize(rows []Row) []Row
	// TidyPlace derives the placement of every row, `outcomes` are the tidied outcomes.
	TidyPlace(rows []Row, outcomes []string) []string
}

// positionalFormat ranks contestants by their position in the table, with
// adjacent contestants sharing an outcome sharing a place.
type positionalFormat struct {
	name    string
	renames [][2]string
}

func (f positionalFormat) Name() string {
	return f.name
}

func (f positionalFormat) Normalize(rows []Row) []Row {
	out := make([]Row, len(rows))
	for i, row := range rows {
		row = row.clone()
		for _, r := range f.renames {
			row.rename(r[0], r[1])
		}
		out[i] = row.project()
	}
	return out
}

type rank struct {
	outcome string
	place   int
}

func (f positionalFormat) TidyPlace(_ []Row, outcomes []string) []string {
	ranks := scan(outcomes, func(prev *rank, i int, outcome string) rank {
		if prev != nil && prev.outcome == outcome {
			return rank{outcome: outcome, place: prev.place}
		}
		return rank{outcome: outcome, place: i + 1}
	})
	places := make([]string, len(ranks))
	for i, r := range ranks {
		places[i] = strconv.Itoa(r.place)
	}
	return places
}

// tiedPlacementFormat tables carry an explicit Place column, contestants that
// tied share a single (row spanning) Place and Outcome cell.
type tiedPlacementFormat struct{}

func (tiedPlacementFormat) Name() string {
	return "tied_placement"
}

func (tiedPlacementFormat) Normalize(rows []Row) []Row {
	return scan(rows, func(prev *Row, _ int, row Row) Row {
		out := row.project()
		place := strings.TrimSpace(out[FieldPlace])
		if place != "" && !HasFootnote(place) {
			return out
		}

		// the Place cell spans from an earlier row, so the cells of this
		// row shifted left and the last one landed under Outcome.
		if outcome := out[FieldOutcome]; outcome != "" {
			out[FieldPlace] = outcome
		} else if prev != nil {
			out[FieldPlace] = (*prev)[FieldPlace]
		}
		out[FieldOutcome] = ""
		return out
	})
}

var placeSeparator = regexp.MustCompile(`[-–\s]`)
var leadingDigits = regexp.MustCompile(`^\d+`)

// LeadingPlace keeps the first number of a placement like "5-8th" or "3rd".
func LeadingPlace(raw string) string {
	token := placeSeparator.Split(strings.TrimSpace(raw), 2)[0]
	digits := leadingDigits.FindString(token)
	if digits != "" {
		return digits
	}
	return token
}

func (tiedPlacementFormat) TidyPlace(rows []Row, _ []string) []string {
	places := make([]string, len(rows))
	for i, row := range rows {
		places[i] = LeadingPlace(row[FieldPlace])
	}
	return places
}

var (
	// season 1 called the occupation column "Job"
	PilotFormat Format = positionalFormat{
		name: "pilot",
		renames: [][2]string{
			{"Job", FieldOccupation},
			{"Eliminated", FieldOutcome},
		},
	}
	EarlyFormat Format = positionalFormat{
		name: "early",
		renames: [][2]string{
			{"Eliminated", FieldOutcome},
		},
	}
	TiedPlacementFormat Format = tiedPlacementFormat{}
)

var formatsByName = map[string]Format{
	PilotFormat.Name():         PilotFormat,
	EarlyFormat.Name():         EarlyFormat,
	TiedPlacementFormat.Name(): TiedPlacementFormat,
}

func FormatByName(name string) (Format, error) {
	format, ok := formatsByName[name]
	if !ok {
		return nil, fmt.Errorf("unknown table format '%s'", name)
	}
	return format, nil
}

// FormatTable maps a season to the format of its roster table.
type FormatTable map[int]Format

const LastKnownSeason = 19

func DefaultFormats() FormatTable {
	table := FormatTable{
		1: PilotFormat,
		2: EarlyFormat,
		3: EarlyFormat,
	}
	for season := 4; season <= LastKnownSeason; season++ {
		table[season] = TiedPlacementFormat
	}
	return table
}

func (t FormatTable) Lookup(season int) (Format, error) {
	format, ok := t[season]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, season)
	}
	return format, nil
}

// With returns a copy of the table with `season` mapped to `format`.
func (t FormatTable) With(season int, format Format) FormatTable {
	out := make(FormatTable, len(t)+1)
	for k, v := range t {
		out[k] = v
	}
	out[season] = format
	return out
}

func (t FormatTable) Seasons() []int {
	seasons := make([]int, 0, len(t))
	for season := range t {
		seasons = append(seasons, season)
	}
	slices.Sort(seasons)
	return seasons
}
