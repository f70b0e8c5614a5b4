package lifelist

import (
	"reflect"
	"testing"
)

func sampleList() List {
	return List{
		{ScientificName: "Turdus migratorius", CommonName: "American Robin", LastSeen: "2023-03-05"},
		{ScientificName: "Bubo virginianus", CommonName: "Great Horned Owl"},
		{ScientificName: "Sialia sialis", CommonName: "Eastern Bluebird", LastSeen: "2024-01-10"},
		{ScientificName: "Corvus corax", CommonName: "Common Raven", LastSeen: "2023-03-05"},
	}
}

func TestListIsLifer(t *testing.T) {
	list := sampleList()
	if list.IsLifer("Turdus migratorius") {
		t.Error("seen species reported as lifer")
	}
	if list.IsLifer("  Sialia sialis ") {
		t.Error("whitespace around name should be ignored")
	}
	if !list.IsLifer("Aquila chrysaetos") {
		t.Error("unseen species should be a lifer")
	}
	if !List(nil).IsLifer("Turdus migratorius") {
		t.Error("every species is a lifer against an empty list")
	}
}

func TestListIndex(t *testing.T) {
	index := sampleList().Index()
	if len(index) != 4 {
		t.Fatalf("index size mismatch: got %d, want 4", len(index))
	}
	if got := index["Corvus corax"].CommonName; got != "Common Raven" {
		t.Errorf("CommonName mismatch: got %q, want %q", got, "Common Raven")
	}
}

func TestListMostRecent(t *testing.T) {
	list := sampleList()
	got := list.MostRecent(3)

	var names []string
	for _, species := range got {
		names = append(names, species.ScientificName)
	}
	want := []string{"Sialia sialis", "Turdus migratorius", "Corvus corax"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("order mismatch: got %q, want %q", names, want)
	}
	if list[0].ScientificName != "Turdus migratorius" {
		t.Error("MostRecent modified the receiver")
	}

	all := list.MostRecent(0)
	if len(all) != 4 || all[3].ScientificName != "Bubo virginianus" {
		t.Errorf("undated species should sort last: %+v", all)
	}
}
