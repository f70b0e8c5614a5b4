// Package exportfile reads observation exports from disk.
//
// CSV (and .txt) exports are decoded to UTF-8 with any byte order mark
// removed and handed to the life-list tokenizer as text. XLSX exports are read
// from their first sheet and arrive already split into cells. Both are
// normalized to Unicode NFC so equal names compare equal regardless of how the
// exporting tool composed accents.
package exportfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"lifelist/internal/lifelist"
)

var (
	// ErrUnsupportedFormat indicates the file extension is not a known export format.
	ErrUnsupportedFormat = errors.New("unsupported export format")
	// ErrFileTooLarge indicates the export exceeds the configured size limit.
	ErrFileTooLarge = errors.New("export file too large")
)

// Format identifies how an export was encoded.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// Export is the decoded content of one export file. CSV exports carry Text;
// XLSX exports carry Header and Rows.
type Export struct {
	Path   string
	Format Format
	Size   int64
	Text   string
	Header []string
	Rows   [][]string
}

// Merge builds the life list from the export.
func (e *Export) Merge() (lifelist.List, lifelist.MergeStats, error) {
	if e.Format == FormatXLSX {
		return lifelist.MergeWithStats(e.Header, e.Rows)
	}
	return lifelist.ParseCSVWithStats(e.Text)
}

// DetectFormat maps a file name to its export format.
func DetectFormat(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".txt":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Read loads the export at path. Files larger than maxBytes are rejected; a
// non-positive maxBytes disables the limit. A missing file yields an error
// wrapping fs.ErrNotExist.
func Read(path string, maxBytes int64) (*Export, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("data file not found: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("read export %s: is a directory", path)
	}
	if maxBytes > 0 && info.Size() > maxBytes {
		return nil, fmt.Errorf("%w: %s is %d bytes, limit is %d", ErrFileTooLarge, path, info.Size(), maxBytes)
	}

	export := &Export{Path: path, Format: format, Size: info.Size()}
	switch format {
	case FormatXLSX:
		export.Header, export.Rows, err = readXLSX(path)
	default:
		export.Text, err = readText(path)
	}
	if err != nil {
		return nil, err
	}
	return export, nil
}

func readText(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open export: %w", err)
	}
	defer file.Close()

	decoder := transform.Chain(unicode.BOMOverride(unicode.UTF8.NewDecoder()), norm.NFC)
	data, err := io.ReadAll(transform.NewReader(file, decoder))
	if err != nil {
		return "", fmt.Errorf("decode export: %w", err)
	}
	return string(data), nil
}

func readXLSX(path string) ([]string, [][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, errors.New("xlsx export has no sheets")
	}
	sheet := sheets[0]

	// Raw values keep date cells as serial numbers instead of the
	// locale-formatted text Excel would display.
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, fmt.Errorf("read rows from xlsx: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}

	dateCol := -1
	for i, label := range rows[0] {
		if strings.TrimSpace(label) == lifelist.ColumnDate {
			dateCol = i
			break
		}
	}
	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	for r, row := range rows {
		for i, cell := range row {
			if r > 0 && i == dateCol {
				cell = xlsxDate(f, sheet, i+1, r+1, cell, date1904)
			}
			row[i] = norm.NFC.String(cell)
		}
	}
	return rows[0], rows[1:], nil
}

// xlsxDate rewrites a numeric date cell as YYYY-MM-DD. Text cells and values
// that are not date serials are returned unchanged.
func xlsxDate(f *excelize.File, sheet string, col, row int, raw string, date1904 bool) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return raw
	}
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return raw
	}
	cellType, err := f.GetCellType(sheet, axis)
	if err != nil {
		return raw
	}
	switch cellType {
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		serial, err := strconv.ParseFloat(value, 64)
		if err != nil || serial <= 0 {
			return raw
		}
		t, err := excelize.ExcelDateToTime(serial, date1904)
		if err != nil {
			return raw
		}
		return t.Format(time.DateOnly)
	case excelize.CellTypeDate:
		if t, err := time.Parse(time.RFC3339, value); err == nil {
			return t.Format(time.DateOnly)
		}
		if len(value) >= 10 {
			if _, err := time.Parse(time.DateOnly, value[:10]); err == nil {
				return value[:10]
			}
		}
	}
	return raw
}
