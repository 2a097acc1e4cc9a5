// Package store defines the persistence interfaces and errors for the
// application. Concrete implementations live in internal/platform/postgres.
package store
