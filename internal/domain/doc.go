// Package domain contains the core entities of the task manager: users and
// their tasks. Entities validate themselves; persistence and transport
// concerns live elsewhere.
package domain
