package lifelist

import (
	"errors"
	"reflect"
	"testing"
)

const robinExport = "Submission ID,Common Name,Scientific Name,Date\n" +
	"S1,American Robin,Turdus migratorius,2023-01-02\n" +
	"S2,American Robin,Turdus migratorius,3/5/2023\n"

func TestParseCSVRobinExample(t *testing.T) {
	list, err := ParseCSV(robinExport)
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	want := List{{ScientificName: "Turdus migratorius", CommonName: "American Robin", LastSeen: "2023-03-05"}}
	if !reflect.DeepEqual(list, want) {
		t.Fatalf("list mismatch: got %+v, want %+v", list, want)
	}
}

func TestParseCSVLaterDateWinsRegardlessOfOrder(t *testing.T) {
	text := "Common Name,Scientific Name,Date\r\n" +
		"American Robin,Turdus migratorius,3/5/2023\r\n" +
		"American Robin,Turdus migratorius,2023-01-02\r\n"

	list, err := ParseCSV(text)
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 record, got %d", len(list))
	}
	if list[0].LastSeen != "2023-03-05" {
		t.Errorf("LastSeen mismatch: got %q, want %q", list[0].LastSeen, "2023-03-05")
	}
}

func TestMergeUnrecognizedDateNeverClears(t *testing.T) {
	header := []string{"Scientific Name", "Date"}
	rows := [][]string{
		{"Sialia sialis", "not-a-date"},
		{"Sialia sialis", "2022-06-01"},
		{"Sialia sialis", "garbage"},
		{"Sialia sialis", ""},
	}

	list, err := Merge(header, rows)
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if len(list) != 1 || list[0].LastSeen != "2022-06-01" {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestMergeUndatedSpeciesHasNoLastSeen(t *testing.T) {
	list, err := Merge([]string{"Scientific Name", "Date"}, [][]string{{"Sialia sialis", "sometime"}})
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if list[0].LastSeen != "" || list[0].Seen().OK() {
		t.Errorf("expected absent LastSeen, got %q", list[0].LastSeen)
	}
}

func TestMergeCommonNameFixedAtFirstSight(t *testing.T) {
	header := []string{"Common Name", "Scientific Name"}
	rows := [][]string{
		{"", "Corvus corax"},
		{"Common Raven", "Corvus corax"},
	}

	list, err := Merge(header, rows)
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if list[0].CommonName != "" {
		t.Errorf("CommonName mismatch: got %q, want empty", list[0].CommonName)
	}
}

func TestMergePreservesFirstInsertionOrder(t *testing.T) {
	header := []string{"Scientific Name", "Date"}
	rows := [][]string{
		{"Cardinalis cardinalis", "2021-01-01"},
		{"Cyanocitta cristata", "2020-01-01"},
		{"Cardinalis cardinalis", "2024-01-01"},
		{"Poecile atricapillus", ""},
	}

	list, err := Merge(header, rows)
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	var names []string
	for _, species := range list {
		names = append(names, species.ScientificName)
	}
	want := []string{"Cardinalis cardinalis", "Cyanocitta cristata", "Poecile atricapillus"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("order mismatch: got %q, want %q", names, want)
	}
}

func TestMergeSkipsBlankNamesAndShortRows(t *testing.T) {
	header := []string{"Date", "Common Name", "Scientific Name"}
	rows := [][]string{
		{"2023-01-01", "Nobody", "   "},
		{"2023-01-01", "Short row"},
		{},
		{" 2023-02-02 ", " Mallard ", " Anas platyrhynchos "},
	}

	list, stats, err := MergeWithStats(header, rows)
	if err != nil {
		t.Fatalf("MergeWithStats failed: %v", err)
	}
	want := List{{ScientificName: "Anas platyrhynchos", CommonName: "Mallard", LastSeen: "2023-02-02"}}
	if !reflect.DeepEqual(list, want) {
		t.Fatalf("list mismatch: got %+v, want %+v", list, want)
	}
	wantStats := MergeStats{Rows: 4, Skipped: 3, Undated: 0, Species: 1}
	if stats != wantStats {
		t.Errorf("stats mismatch: got %+v, want %+v", stats, wantStats)
	}
}

func TestMergeOptionalColumnsMissing(t *testing.T) {
	list, stats, err := MergeWithStats([]string{"Scientific Name"}, [][]string{{"Bubo virginianus"}})
	if err != nil {
		t.Fatalf("MergeWithStats failed: %v", err)
	}
	want := List{{ScientificName: "Bubo virginianus"}}
	if !reflect.DeepEqual(list, want) {
		t.Errorf("list mismatch: got %+v, want %+v", list, want)
	}
	if stats.Undated != 1 {
		t.Errorf("Undated mismatch: got %d, want 1", stats.Undated)
	}
}

func TestMergeMissingScientificNameColumn(t *testing.T) {
	list, err := Merge([]string{"Common Name", "Date"}, [][]string{{"American Robin", "2023-01-01"}})
	if list != nil {
		t.Errorf("expected no list, got %+v", list)
	}
	if !errors.Is(err, ErrMissingRequiredColumn) {
		t.Fatalf("expected ErrMissingRequiredColumn, got %v", err)
	}
	var missing *MissingColumnError
	if !errors.As(err, &missing) {
		t.Fatalf("expected *MissingColumnError, got %T", err)
	}
	if missing.Column != ColumnScientificName {
		t.Errorf("Column mismatch: got %q, want %q", missing.Column, ColumnScientificName)
	}
	if got, want := err.Error(), `file missing required column "Scientific Name"`; got != want {
		t.Errorf("message mismatch: got %q, want %q", got, want)
	}
}

func TestMergeHeaderLabelsAreTrimmedButExact(t *testing.T) {
	if _, err := Merge([]string{"  Scientific Name  "}, nil); err != nil {
		t.Errorf("trimmed header should match: %v", err)
	}
	if _, err := Merge([]string{"scientific name"}, nil); !errors.Is(err, ErrMissingRequiredColumn) {
		t.Errorf("case-different header should not match, got %v", err)
	}
}

func TestParseCSVEmptyInput(t *testing.T) {
	for _, text := range []string{"", "\n", "\r\n\r\n"} {
		if _, err := ParseCSV(text); !errors.Is(err, ErrMissingRequiredColumn) {
			t.Errorf("ParseCSV(%q): expected missing column error, got %v", text, err)
		}
	}
}

func TestParseCSVHeaderOnly(t *testing.T) {
	list, err := ParseCSV("Scientific Name,Common Name\n")
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Errorf("expected empty non-nil list, got %#v", list)
	}
}

func TestParseCSVQuotedFields(t *testing.T) {
	text := "Common Name,Scientific Name,Date\n" +
		"\"Say\"\"s Phoebe\",Sayornis saya,4/1/2022\n" +
		"\"Owl, Great Horned\",\"Bubo, Virginianus\",2022-05-06\n" +
		"   \n"

	list, stats, err := ParseCSVWithStats(text)
	if err != nil {
		t.Fatalf("ParseCSVWithStats failed: %v", err)
	}
	want := List{
		{ScientificName: "Sayornis saya", CommonName: `Say"s Phoebe`, LastSeen: "2022-04-01"},
		{ScientificName: "Bubo, Virginianus", CommonName: "Owl, Great Horned", LastSeen: "2022-05-06"},
	}
	if !reflect.DeepEqual(list, want) {
		t.Fatalf("list mismatch: got %+v, want %+v", list, want)
	}
	if stats.Rows != 2 || stats.Species != 2 {
		t.Errorf("stats mismatch: %+v", stats)
	}
}
