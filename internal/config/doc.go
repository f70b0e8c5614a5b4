// Package config loads, normalizes, and validates lifelist configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, loads a .env file from the working directory, and honours
// environment fallbacks such as LIFELIST_DATABASE_URL. Struct-level rules are
// declared as validate tags and reported as "section.key must ..." messages.
//
// Always obtain settings through this package so the store, importer, and CLI
// see sanitized paths and canonical backend names.
package config
