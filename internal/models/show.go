package models

import "time"

// Show is the join row between a venue and an artist. Rows are
// create-only: once the start time passes they are immutable history,
// and they only disappear when a parent venue or artist is deleted.
type Show struct {
	ID        uint      `gorm:"primaryKey"`
	StartTime time.Time `gorm:"not null"`
	VenueID   uint      `gorm:"not null;index"`
	Venue     Venue     `gorm:"constraint:OnDelete:CASCADE"`
	ArtistID  uint      `gorm:"not null;index"`
	Artist    Artist    `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}
