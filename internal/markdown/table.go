package markdown

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/yuin/goldmark/util"
)

// parseCSVRows reads literal as CSV. Rows may have different lengths. Rows
// without any non-blank cell are dropped. Malformed records are skipped.
func parseCSVRows(literal string) [][]string {
	reader := csv.NewReader(strings.NewReader(literal))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var rows [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				continue
			}
			break
		}

		cells := make([]string, 0, len(record))
		blank := true
		for _, cell := range record {
			cell = strings.TrimSpace(cell)
			if cell != "" {
				blank = false
			}
			cells = append(cells, cell)
		}
		if blank {
			continue
		}
		rows = append(rows, cells)
	}
	return rows
}

// writeCSVTable renders literal as an HTML table. The first row becomes the
// header. A single cell row spans every column.
func writeCSVTable(w util.BufWriter, literal string) {
	rows := parseCSVRows(literal)

	columns := 0
	for _, row := range rows {
		columns = max(columns, len(row))
	}

	_, _ = w.WriteString("<div class=\"csv-table\"><table>\n")
	for i, row := range rows {
		cellTag := "td"
		if i == 0 {
			cellTag = "th"
			_, _ = w.WriteString("<thead>\n")
		}
		if i == 1 {
			_, _ = w.WriteString("<tbody>\n")
		}

		_, _ = w.WriteString("<tr>")
		for _, cell := range row {
			_, _ = w.WriteString("<" + cellTag)
			if len(row) == 1 && columns > 1 {
				_, _ = w.WriteString(` colspan="` + strconv.Itoa(columns) + `"`)
			}
			_, _ = w.WriteString(">")
			_, _ = w.Write(util.EscapeHTML([]byte(cell)))
			_, _ = w.WriteString("</" + cellTag + ">")
		}
		_, _ = w.WriteString("</tr>\n")

		if i == 0 {
			_, _ = w.WriteString("</thead>\n")
		}
	}
	if len(rows) > 1 {
		_, _ = w.WriteString("</tbody>\n")
	}
	_, _ = w.WriteString("</table></div>\n")
}
