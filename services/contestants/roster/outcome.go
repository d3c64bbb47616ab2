package roster

import "strings"

// TidyOutcomes returns the outcome of every row. the first row is kept as
// is, later rows say "Week" instead of "Episode" and blank outcomes repeat
// the outcome of the previous row.
func TidyOutcomes(rows []Row) []string {
	return scan(rows, func(prev *string, _ int, row Row) string {
		outcome := row[FieldOutcome]
		if prev == nil {
			return outcome
		}
		outcome = strings.ReplaceAll(outcome, "Episode", "Week")
		if outcome == "" {
			return *prev
		}
		return outcome
	})
}
