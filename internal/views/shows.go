// Package views builds the read models served to the pages: flat
// record projections, the city/state venue board, search results and
// the per-venue / per-artist detail pages with their past/upcoming
// show split. Everything here is computed from already-fetched rows;
// nothing is stored.
package views

import (
	"time"

	"fyyur/internal/models"
)

// StartTimeLayout is the display format for show start times.
const StartTimeLayout = "01/02/2006, 15:04:05"

// ShowEntry is a show denormalized with the display fields of both of
// its parents.
type ShowEntry struct {
	VenueID         uint   `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	VenueImageLink  string `json:"venue_image_link"`
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// NewShowEntry expects the show's Venue and Artist to be preloaded.
func NewShowEntry(show models.Show) ShowEntry {
	return ShowEntry{
		VenueID:         show.Venue.ID,
		VenueName:       show.Venue.Name,
		VenueImageLink:  show.Venue.ImageLink,
		ArtistID:        show.Artist.ID,
		ArtistName:      show.Artist.Name,
		ArtistImageLink: show.Artist.ImageLink,
		StartTime:       show.StartTime.Format(StartTimeLayout),
	}
}

// SplitShows partitions shows into past and upcoming. A show is
// upcoming iff its start time is strictly after now; a show starting
// exactly at now is past. The two slices are disjoint and together
// cover every input row.
func SplitShows(shows []models.Show, now time.Time) (past, upcoming []ShowEntry) {
	past, upcoming = []ShowEntry{}, []ShowEntry{}
	for _, show := range shows {
		entry := NewShowEntry(show)
		if show.StartTime.After(now) {
			upcoming = append(upcoming, entry)
		} else {
			past = append(past, entry)
		}
	}
	return past, upcoming
}

// ShowBoard is the /shows listing: every show denormalized.
func ShowBoard(shows []models.Show) []ShowEntry {
	entries := make([]ShowEntry, 0, len(shows))
	for _, show := range shows {
		entries = append(entries, NewShowEntry(show))
	}
	return entries
}
