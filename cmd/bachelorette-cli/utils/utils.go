package utils

import (
	"database/sql"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
)

func NewTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}

func FormatAge(age sql.NullInt64) string {
	if !age.Valid {
		return "?"
	}
	return strconv.FormatInt(age.Int64, 10)
}
