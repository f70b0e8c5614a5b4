package lifelist

import (
	"encoding/json"
	"fmt"
)

// Encode renders the list as a JSON array of records in list order. A nil
// list encodes as "[]".
func Encode(list List) (string, error) {
	if list == nil {
		list = List{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return "", fmt.Errorf("encode life list: %w", err)
	}
	return string(data), nil
}

// Decode parses a value produced by Encode. It reports false for anything
// that is not a JSON array of record objects, including "null", an array
// holding null, and any record without a scientific name, so callers can
// treat foreign or corrupt values as "no list". Other fields are not
// validated.
func Decode(raw string) (List, bool) {
	var records []*SeenSpecies
	if err := json.Unmarshal([]byte(raw), &records); err != nil || records == nil {
		return nil, false
	}
	list := make(List, 0, len(records))
	for _, record := range records {
		if record == nil || record.ScientificName == "" {
			return nil, false
		}
		list = append(list, *record)
	}
	return list, true
}
