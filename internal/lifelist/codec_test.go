package lifelist

import (
	"reflect"
	"strings"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	list := List{
		{ScientificName: "Turdus migratorius", CommonName: "American Robin", LastSeen: "2023-03-05"},
		{ScientificName: "Sayornis saya", CommonName: `Say"s Phoebe`, SpeciesCode: "saypho"},
		{ScientificName: "Bubo virginianus"},
	}

	encoded, err := Encode(list)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	decoded, ok := Decode(encoded)
	if !ok {
		t.Fatalf("Decode rejected %q", encoded)
	}
	if !reflect.DeepEqual(decoded, list) {
		t.Errorf("round trip mismatch: got %+v, want %+v", decoded, list)
	}
}

func TestEncodeOmitsAbsentFields(t *testing.T) {
	encoded, err := Encode(List{{ScientificName: "Bubo virginianus"}})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	want := `[{"scientific_name":"Bubo virginianus","common_name":""}]`
	if encoded != want {
		t.Errorf("encoding mismatch: got %s, want %s", encoded, want)
	}
}

func TestEncodeNilList(t *testing.T) {
	encoded, err := Encode(nil)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if encoded != "[]" {
		t.Errorf("got %q, want []", encoded)
	}
	decoded, ok := Decode(encoded)
	if !ok || len(decoded) != 0 {
		t.Errorf("expected empty list, got %+v ok=%v", decoded, ok)
	}
}

func TestDecodeRejectsForeignValues(t *testing.T) {
	for _, raw := range []string{
		"",
		"null",
		"{}",
		`"text"`,
		"[1,2]",
		`[{"scientific_name":5}]`,
		`[{"scientific_name":"x"}`,
		`[null,{"scientific_name":"x"}]`,
		`[{"scientific_name":"x"},null]`,
		`[{"common_name":"Nameless"}]`,
		`[{"scientific_name":""}]`,
		`[{}]`,
		"not json",
	} {
		if list, ok := Decode(raw); ok {
			t.Errorf("Decode(%q) accepted: %+v", raw, list)
		}
	}
}

func TestDecodeToleratesUnknownFields(t *testing.T) {
	raw := `[{"scientific_name":"Corvus corax","common_name":"Common Raven","extra":true}]`
	list, ok := Decode(raw)
	if !ok {
		t.Fatal("Decode rejected value with unknown field")
	}
	if len(list) != 1 || !strings.EqualFold(list[0].CommonName, "common raven") {
		t.Errorf("unexpected list: %+v", list)
	}
}
