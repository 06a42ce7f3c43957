// Package memory holds map-backed implementations of the domain repositories.
// They are used by tests and by the server when DB_URL is "memory".
package memory
