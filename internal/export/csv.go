// Package export serializes diary entries for research use.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/javiermolinar/microdiary/internal/diary"
)

// Supported export formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// csvHeaders is the fixed CSV column order.
var csvHeaders = []string{
	"id",
	"date",
	"activity",
	"category",
	"startTime",
	"endTime",
	"notes",
	"createdAt",
	"updatedAt",
	"provenance.source",
	"provenance.clientId",
	"provenance.timeZone",
	"schemaVersion",
	"appVersion",
}

// utf8BOM makes spreadsheet tools detect UTF-8.
const utf8BOM = "\uFEFF"

// escapeCSVCell quotes a value when it contains a comma, quote or newline (RFC 4180).
func escapeCSVCell(value string) string {
	if strings.ContainsAny(value, ",\"\n\r") {
		return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
	}
	return value
}

func entryToRow(e *diary.Entry) string {
	values := []string{
		e.ID,
		e.Date,
		e.Activity,
		e.Category,
		e.StartTime,
		e.EndTime,
		e.Notes,
		formatTimestamp(e.CreatedAt),
		formatTimestamp(e.UpdatedAt),
		e.Provenance.Source,
		e.Provenance.ClientID,
		e.Provenance.TimeZone,
		e.SchemaVersion,
		e.AppVersion,
	}
	for i, v := range values {
		values[i] = escapeCSVCell(v)
	}
	return strings.Join(values, ",")
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

// BuildCSV renders entries as CSV with CRLF line endings.
func BuildCSV(entries []*diary.Entry) string {
	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, strings.Join(csvHeaders, ","))
	for _, e := range entries {
		lines = append(lines, entryToRow(e))
	}
	return strings.Join(lines, "\r\n")
}

// WriteCSV writes entries as CSV, optionally prefixed with a UTF-8 BOM.
func WriteCSV(w io.Writer, entries []*diary.Entry, withBOM bool) error {
	csv := BuildCSV(entries)
	if withBOM {
		csv = utf8BOM + csv
	}
	if _, err := io.WriteString(w, csv); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}

// FileName returns the default export file name for format.
func FileName(format string, now time.Time) string {
	return fmt.Sprintf("microdiary-%s.%s", now.UTC().Format("2006-01-02"), format)
}
