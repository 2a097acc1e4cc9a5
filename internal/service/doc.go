// Package service contains the application services: user registration and
// login, and owner-scoped task management. Services orchestrate the domain
// entities, stores, and auth primitives; they are constructed once at
// startup and hold no per-request state.
package service
