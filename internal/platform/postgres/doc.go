// Package postgres implements the store interfaces on top of PostgreSQL,
// accessed through database/sql with the pgx driver.
package postgres
