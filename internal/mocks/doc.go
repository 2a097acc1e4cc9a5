// Package mocks provides hand-written mock implementations of the
// application's interfaces for use in tests. Each mock exposes function
// fields to override behavior per test case, with simple in-memory
// defaults when no override is set.
package mocks
