package roster

import (
	"regexp"

	"bachelorette-db/lib/scrapers/wikipedia"
)

// the fixed field vocabulary of a normalized row
const (
	FieldSeason     = "Season"
	FieldName       = "Name"
	FieldAge        = "Age"
	FieldHometown   = "Hometown"
	FieldOccupation = "Occupation"
	FieldOutcome    = "Outcome"
	FieldPlace      = "Place"
)

var Fields = []string{
	FieldSeason,
	FieldName,
	FieldAge,
	FieldHometown,
	FieldOccupation,
	FieldOutcome,
	FieldPlace,
}

// Row is a contestant row keyed by field label, absent labels are absent keys.
type Row map[string]string

func (r Row) clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

func (r Row) rename(from, to string) {
	value, ok := r[from]
	if !ok {
		return
	}
	r[to] = value
	delete(r, from)
}

// project drops every label outside of Fields.
func (r Row) project() Row {
	out := make(Row, len(Fields))
	for _, field := range Fields {
		value, ok := r[field]
		if ok {
			out[field] = value
		}
	}
	return out
}

func FromRaw(raw []wikipedia.Row) []Row {
	rows := make([]Row, len(raw))
	for i, r := range raw {
		rows[i] = Row(r).clone()
	}
	return rows
}

var footnoteMarker = regexp.MustCompile(`\[[^\]]+\]`)

// HasFootnote reports whether the value carries a footnote marker like "[a]" or "[12]".
func HasFootnote(value string) bool {
	return footnoteMarker.MatchString(value)
}
