package lifelist

import "strings"

// Header labels matched, after trimming, against the export's first row.
const (
	ColumnScientificName = "Scientific Name"
	ColumnCommonName     = "Common Name"
	ColumnDate           = "Date"
)

// MergeStats describes how the rows of one import were consumed. It is
// informational only and never changes the merged list.
type MergeStats struct {
	// Rows counts the data rows offered to the merger.
	Rows int `json:"rows"`
	// Skipped counts rows dropped for being blank or lacking a scientific name.
	Skipped int `json:"skipped"`
	// Undated counts kept rows whose date was missing or unrecognized.
	Undated int `json:"undated"`
	// Species is the number of records in the merged list.
	Species int `json:"species"`
}

type columnIndex struct {
	scientific int
	common     int
	date       int
}

func locateColumns(header []string) (columnIndex, error) {
	cols := columnIndex{
		scientific: findColumn(header, ColumnScientificName),
		common:     findColumn(header, ColumnCommonName),
		date:       findColumn(header, ColumnDate),
	}
	if cols.scientific < 0 {
		return columnIndex{}, &MissingColumnError{Column: ColumnScientificName}
	}
	return cols, nil
}

func findColumn(header []string, label string) int {
	for i, cell := range header {
		if strings.TrimSpace(cell) == label {
			return i
		}
	}
	return -1
}

// Merge folds tokenized rows into a life list using header to locate the
// columns. See MergeWithStats.
func Merge(header []string, rows [][]string) (List, error) {
	list, _, err := MergeWithStats(header, rows)
	return list, err
}

// MergeWithStats folds tokenized rows into a life list and reports how the
// rows were consumed.
//
// The header must contain "Scientific Name"; otherwise a *MissingColumnError
// is returned and no list is produced. "Common Name" and "Date" are optional.
// The first row naming a species fixes its common name. Later rows only move
// LastSeen forward, and only with a recognized date. Records keep the order
// in which their species first appeared.
//
// Names are compared and stored exactly as given after trimming. Exports
// read through internal/exportfile are NFC-normalized first, so a stored
// scientific_name may differ byte-for-byte from a decomposed spelling in the
// source file; normalize to NFC before matching against raw export text.
func MergeWithStats(header []string, rows [][]string) (List, MergeStats, error) {
	cols, err := locateColumns(header)
	if err != nil {
		return nil, MergeStats{}, err
	}

	var stats MergeStats
	list := make(List, 0)
	positions := make(map[string]int)

	for _, row := range rows {
		stats.Rows++
		name := cellAt(row, cols.scientific)
		if name == "" {
			stats.Skipped++
			continue
		}

		seen := NormalizeDate(cellAt(row, cols.date))
		if !seen.OK() {
			stats.Undated++
		}

		pos, exists := positions[name]
		if !exists {
			positions[name] = len(list)
			list = append(list, SeenSpecies{
				ScientificName: name,
				CommonName:     cellAt(row, cols.common),
				LastSeen:       seen.String(),
			})
			continue
		}
		if seen.After(list[pos].Seen()) {
			list[pos].LastSeen = seen.String()
		}
	}

	stats.Species = len(list)
	return list, stats, nil
}

// cellAt returns the trimmed cell at idx, or "" when the column is absent or
// the row is too short.
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// ParseCSV tokenizes an entire export and merges it. See ParseCSVWithStats.
func ParseCSV(text string) (List, error) {
	list, _, err := ParseCSVWithStats(text)
	return list, err
}

// ParseCSVWithStats splits text on LF or CRLF line endings, treats the first
// line as the header, and merges every later non-blank line. Text with no
// header line fails like a header without "Scientific Name".
func ParseCSVWithStats(text string) (List, MergeStats, error) {
	lines := strings.Split(text, "\n")
	header := SplitLine(strings.TrimSuffix(lines[0], "\r"))

	rows := make([][]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rows = append(rows, SplitLine(line))
	}
	return MergeWithStats(header, rows)
}
