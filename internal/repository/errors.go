// Package repository is the persistence layer: every handler talks to
// the database through one of these repositories instead of holding a
// process-wide session. Sentinel errors let handlers translate
// failures into HTTP statuses without inspecting gorm internals.
package repository

import "errors"

// ErrNotFound is returned when an id lookup misses. Handlers should
// translate this into an HTTP 404 response.
var ErrNotFound = errors.New("record not found")

// ErrVenueNotFound and ErrArtistNotFound are returned when a show
// references a venue or artist that does not exist; nothing is
// persisted in that case.
var (
	ErrVenueNotFound  = errors.New("venue not found")
	ErrArtistNotFound = errors.New("artist not found")
)
