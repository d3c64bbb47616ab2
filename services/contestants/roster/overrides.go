package roster

// Override pins the value of one field of one row of a season, it is used
// for tables whose shape the generic rules cannot express.
type Override struct {
	Season int
	Row    int
	Field  string
	Value  string
}

type Overrides []Override

// season 16 had two leads, so the top three rows describe two winners
var KnownOverrides = Overrides{
	{Season: 16, Row: 0, Field: FieldOutcome, Value: "Clare's Winner"},
	{Season: 16, Row: 1, Field: FieldOutcome, Value: "Tayshia's Winner"},
	{Season: 16, Row: 2, Field: FieldOutcome, Value: "Tayshia's Runner-Up"},
}

// Apply returns a copy of `values` (the tidied `field` of every row of
// `season`) with the matching overrides applied. overrides pointing past
// the last row are ignored.
func (o Overrides) Apply(season int, field string, values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	for _, override := range o {
		if override.Season != season || override.Field != field {
			continue
		}
		if override.Row < 0 || override.Row >= len(out) {
			continue
		}
		out[override.Row] = override.Value
	}
	return out
}

// ForSeason lists the overrides of a single season.
func (o Overrides) ForSeason(season int) Overrides {
	var out Overrides
	for _, override := range o {
		if override.Season == season {
			out = append(out, override)
		}
	}
	return out
}
