// Package kvstore provides the durable key-value backends the life list is
// persisted in.
//
// Every backend satisfies lifelist.KeyValue and io.Closer. DB covers the two
// SQL backends: SQLite through modernc.org/sqlite (the default, one file in
// the data directory) and PostgreSQL through pgx's database/sql driver. Both
// keep a single kv table guarded by a schema_version row. JSONFile keeps every
// key in one JSON object written atomically, and Memory serves tests and
// throwaway runs.
//
// Open selects a backend from configuration.
package kvstore
