// Package postgres provides PostgreSQL implementations of the store interfaces.
//
// It owns the pgx connection pool construction, the embedded goose schema
// migrations, and the mapping of PostgreSQL errors onto the store package's
// sentinel errors. Every store method acquires a connection from the pool for
// the duration of one statement and releases it on return.
package postgres
