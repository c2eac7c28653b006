package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"
)

const NotAvailable = "N/A"

var ErrUnsupportedFormat = errors.New("unsupported report format")

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat defaults to CSV.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, raw)
	}
}

func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}

func (f Format) Filename(base string) string {
	return base + "." + string(f)
}

// Render writes rows, a slice of structs with csv tags, as one sheet.
func Render(w io.Writer, format Format, sheet string, rows any) error {
	switch format {
	case FormatCSV:
		if err := gocsv.Marshal(rows, w); err != nil {
			return fmt.Errorf("rendering csv: %w", err)
		}
		return nil
	case FormatXLSX:
		return renderXLSX(w, sheet, rows)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

func renderXLSX(w io.Writer, sheet string, rows any) error {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	if err := gocsv.MarshalCSV(rows, &sheetWriter{file: file, sheet: sheet}); err != nil {
		return fmt.Errorf("rendering rows: %w", err)
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}

	return nil
}

// sheetWriter receives the header and rows gocsv extracts from the tagged
// structs and lays them out as consecutive sheet rows.
type sheetWriter struct {
	file  *excelize.File
	sheet string
	row   int
	err   error
}

var _ gocsv.CSVWriter = (*sheetWriter)(nil)

func (s *sheetWriter) Write(record []string) error {
	s.row++
	cell, err := excelize.CoordinatesToCellName(1, s.row)
	if err != nil {
		s.err = fmt.Errorf("locating row %d: %w", s.row, err)
		return s.err
	}

	values := make([]any, len(record))
	for i, value := range record {
		values[i] = value
	}

	if err := s.file.SetSheetRow(s.sheet, cell, &values); err != nil {
		s.err = fmt.Errorf("writing row %d: %w", s.row, err)
		return s.err
	}
	return nil
}

func (s *sheetWriter) Flush() {}

func (s *sheetWriter) Error() error {
	return s.err
}

func Text(value string) string {
	if strings.TrimSpace(value) == "" {
		return NotAvailable
	}
	return value
}

func TextPtr(value *string) string {
	if value == nil {
		return NotAvailable
	}
	return Text(*value)
}

func Number(value *float64) string {
	if value == nil {
		return NotAvailable
	}
	return strconv.FormatFloat(*value, 'f', -1, 64)
}

func Date(value *time.Time) string {
	if value == nil || value.IsZero() {
		return NotAvailable
	}
	return value.UTC().Format(time.DateOnly)
}
