// Package postgres provides PostgreSQL-backed implementations of the store
// interfaces. It uses database/sql over the pgx stdlib driver and maps
// low-level database errors onto the store package's sentinel errors.
package postgres
