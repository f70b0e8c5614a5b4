package lifelist

import (
	"sort"
	"strings"
)

// SeenSpecies is the canonical life-list record for one species.
type SeenSpecies struct {
	ScientificName string `json:"scientific_name"`
	CommonName     string `json:"common_name"`
	// SpeciesCode is an external taxonomy code. Imports never populate it.
	SpeciesCode string `json:"species_code,omitempty"`
	// LastSeen is the canonical YYYY-MM-DD of the latest recognized
	// observation, or empty when no row carried a recognized date.
	LastSeen string `json:"last_seen,omitempty"`
}

// Seen returns LastSeen as an ObservedDate.
func (s SeenSpecies) Seen() ObservedDate {
	return ObservedDate{value: s.LastSeen}
}

// List is a life list ordered by first insertion. It holds at most one
// record per scientific name.
type List []SeenSpecies

// Index returns the records keyed by scientific name.
func (l List) Index() map[string]SeenSpecies {
	index := make(map[string]SeenSpecies, len(l))
	for _, species := range l {
		index[species.ScientificName] = species
	}
	return index
}

// Lookup finds the record for a scientific name. Surrounding whitespace in
// name is ignored.
func (l List) Lookup(name string) (SeenSpecies, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return SeenSpecies{}, false
	}
	for _, species := range l {
		if species.ScientificName == name {
			return species, true
		}
	}
	return SeenSpecies{}, false
}

// IsLifer reports whether name would be a new species for this list.
func (l List) IsLifer(name string) bool {
	_, seen := l.Lookup(name)
	return !seen
}

// MostRecent returns up to n records ordered by LastSeen, newest first.
// Undated records sort last and ties keep insertion order. A non-positive n
// returns every record. The receiver is not modified.
func (l List) MostRecent(n int) List {
	sorted := make(List, len(l))
	copy(sorted, l)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Seen().After(sorted[j].Seen())
	})
	if n > 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}
