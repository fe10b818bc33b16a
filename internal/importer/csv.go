package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jackc/pgx/v5/pgtype"
)

// maxHeaderSearchRows bounds the scan for the header row. eBay exports
// carry a few preamble lines (report name, seller, date range) before the
// column headers.
var maxHeaderSearchRows = 20

// headerIndex maps column names (lowercase) to their position in a row.
type headerIndex map[string]int

// readReport reads a whole report, finds its header row, and returns the
// header index plus the data rows that follow it. The required column
// names must all appear in the header; extra columns are ignored.
func readReport(r io.Reader, required []string) (headerIndex, [][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("read report: %w", err)
	}
	data = sanitizeUTF8(data)

	records, err := parseCSV(data)
	if err != nil {
		return nil, nil, fmt.Errorf("parse report: %w", err)
	}

	hi := findHeader(records, required)
	if hi < 0 {
		return nil, nil, fmt.Errorf("header not found (expected columns: %v)", required)
	}

	return makeHeaderIndex(records[hi]), records[hi+1:], nil
}

func parseCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return r.ReadAll()
}

// findHeader returns the index of the first leading row that contains
// every required column name, or -1.
func findHeader(records [][]string, required []string) int {
	limit := maxHeaderSearchRows
	if len(records) < limit {
		limit = len(records)
	}

	for i := 0; i < limit; i++ {
		idx := makeHeaderIndex(records[i])
		if hasColumns(idx, required) {
			return i
		}
	}
	return -1
}

func hasColumns(idx headerIndex, required []string) bool {
	for _, name := range required {
		if _, ok := idx[strings.ToLower(name)]; !ok {
			return false
		}
	}
	return true
}

// makeHeaderIndex builds a headerIndex from a header row.
// Keys are lowercased for case-insensitive matching.
func makeHeaderIndex(header []string) headerIndex {
	idx := make(headerIndex, len(header))
	for i, h := range header {
		key := strings.ToLower(cleanCell(h))
		idx[key] = i
	}
	return idx
}

// getCell safely retrieves a cell value from a row by header name.
func getCell(row []string, idx headerIndex, name string) string {
	pos, ok := idx[strings.ToLower(name)]
	if !ok || pos >= len(row) {
		return ""
	}
	return cleanCell(row[pos])
}

// cleanCell removes common CSV artifacts from a cell value:
// - Trims whitespace
// - Removes Excel formula prefix (="...")
// - Removes surrounding quotes
func cleanCell(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "=\"") && strings.HasSuffix(s, "\"") {
		s = s[2 : len(s)-1]
	} else if strings.HasPrefix(s, "=") {
		s = s[1:]
	}

	s = strings.Trim(s, `"'`)

	return s
}

func isEmptyRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// sanitizeUTF8 replaces invalid byte sequences so the csv reader never
// chokes on exported reports with stray encodings.
func sanitizeUTF8(data []byte) []byte {
	if utf8.Valid(data) {
		return data
	}

	var buf bytes.Buffer
	buf.Grow(len(data))

	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			buf.WriteRune('�')
			data = data[1:]
		} else {
			buf.WriteRune(r)
			data = data[size:]
		}
	}

	return buf.Bytes()
}

// toNullText maps empty text to a null column value.
func toNullText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}
