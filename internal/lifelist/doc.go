// Package lifelist turns an eBird-style observation export into a life list:
// one record per scientific name, carrying the most recent recognized
// observation date.
//
// The package owns the three pure steps of an import. SplitLine tokenizes one
// line of quoted comma-separated text, NormalizeDate reduces a raw date token
// to a canonical YYYY-MM-DD value (or reports it unrecognized), and Merge
// folds the tokenized rows into an ordered, deduplicated List. ParseCSV wires
// the three together for a whole export. Scientific names are matched by
// exact string equality; file imports NFC-normalize them beforehand, so the
// stored names are in NFC.
//
// Persistence is delegated to a KeyValue supplied by the caller. Store encodes
// the list as JSON under a single key and decodes it defensively: anything
// that does not look like a life list reads back as "no list yet".
//
// The only hard failure of an import is a header without the
// "Scientific Name" column, reported as a *MissingColumnError. Malformed rows,
// unknown date shapes, and short rows are tolerated by omission.
package lifelist
