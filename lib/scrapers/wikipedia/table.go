package wikipedia

import (
	"context"
	"errors"

	"bachelorette-db/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var ErrNoHeader = errors.New("table has no header row")

// Row maps a column label to the text of the cell under it.
type Row map[string]string

// Headers returns the labels of the first row of `table`, each label is the
// first content of a <th> cell, trimmed.
func Headers(table *goquery.Selection) []string {
	headerCells := table.Find("tr").First().Find("th")
	headers := make([]string, 0, headerCells.Length())
	headerCells.Each(func(_ int, th *goquery.Selection) {
		headers = append(headers, htmlutil.Clean(htmlutil.FirstContent(th.Get(0))))
	})
	return headers
}

// CellValue resolves the text of a single cell.
//   - a cell containing <b> is read through its first <b>.
//   - a cell with links is read as the trimmed text of its first link, unless
//     every link is a footnote (there are as many <sup> as <a>), in which case
//     the untrimmed first content of the cell is used.
//   - otherwise the trimmed first content is used.
func CellValue(cell *goquery.Selection) string {
	bold := cell.Find("b").First()
	if bold.Length() > 0 {
		cell = bold
	}

	links := cell.Find("a")
	if links.Length() == 0 {
		return htmlutil.Clean(htmlutil.FirstContent(cell.Get(0)))
	}
	if cell.Find("sup").Length() == links.Length() {
		return htmlutil.FirstContent(cell.Get(0))
	}
	return htmlutil.Clean(htmlutil.FirstContent(links.Get(0)))
}

// ExtractRows turns every row after the header into a Row. cells are paired
// with headers by position, so a row with fewer cells than headers simply
// lacks the trailing labels.
func ExtractRows(ctx context.Context, table *goquery.Selection) ([]Row, error) {
	_, span := tracer.Start(ctx, "ExtractRows")
	defer span.End()

	headers := Headers(table)
	if len(headers) == 0 {
		span.SetStatus(codes.Error, ErrNoHeader.Error())
		return nil, ErrNoHeader
	}

	trs := table.Find("tr")
	rows := make([]Row, 0, trs.Length()-1)
	trs.Slice(1, goquery.ToEnd).Each(func(_ int, tr *goquery.Selection) {
		row := Row{}
		tr.Find("td").Each(func(i int, td *goquery.Selection) {
			if i >= len(headers) {
				return
			}
			row[headers[i]] = CellValue(td)
		})
		rows = append(rows, row)
	})

	span.SetAttributes(
		attribute.StringSlice("headers", headers),
		attribute.Int("rows", len(rows)),
	)
	return rows, nil
}
