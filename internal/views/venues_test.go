package views

import (
	"testing"
	"time"

	"fyyur/internal/models"
	"fyyur/internal/repository"
)

func TestGroupVenuesByCity(t *testing.T) {
	rows := []repository.VenueWithCount{
		{Venue: models.Venue{ID: 3, Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA"}, UpcomingShowNumber: 1},
		{Venue: models.Venue{ID: 2, Name: "The Dueling Pianos Bar", City: "New York", State: "NY"}, UpcomingShowNumber: 0},
		{Venue: models.Venue{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA"}, UpcomingShowNumber: 2},
	}

	areas := GroupVenuesByCity(rows)
	if len(areas) != 2 {
		t.Fatalf("expected 2 city groups, got %d", len(areas))
	}

	if areas[0].City != "New York" || areas[0].State != "NY" {
		t.Fatalf("expected New York first, got %s/%s", areas[0].City, areas[0].State)
	}
	if len(areas[0].Venues) != 1 || areas[0].Venues[0].ID != 2 {
		t.Fatalf("unexpected New York venues: %+v", areas[0].Venues)
	}

	sf := areas[1]
	if sf.City != "San Francisco" || len(sf.Venues) != 2 {
		t.Fatalf("unexpected San Francisco group: %+v", sf)
	}
	if sf.Venues[0].ID != 1 || sf.Venues[1].ID != 3 {
		t.Fatalf("venues not ordered by id: %+v", sf.Venues)
	}
	if sf.Venues[0].UpcomingShowNumber != 2 {
		t.Fatalf("expected upcoming show count 2, got %d", sf.Venues[0].UpcomingShowNumber)
	}
}

func TestGroupVenuesByCitySameCityDifferentState(t *testing.T) {
	rows := []repository.VenueWithCount{
		{Venue: models.Venue{ID: 1, Name: "East Side", City: "Springfield", State: "MA"}},
		{Venue: models.Venue{ID: 2, Name: "West Side", City: "Springfield", State: "IL"}},
	}

	areas := GroupVenuesByCity(rows)
	if len(areas) != 2 {
		t.Fatalf("expected 2 groups for same city in different states, got %d", len(areas))
	}
	if areas[0].State != "IL" || areas[1].State != "MA" {
		t.Fatalf("groups not ordered by state: %+v", areas)
	}
}

func TestNewVenueSearchResults(t *testing.T) {
	rows := []repository.VenueWithCount{
		{Venue: models.Venue{ID: 1, Name: "The Musical Hop"}, UpcomingShowNumber: 1},
		{Venue: models.Venue{ID: 3, Name: "Park Square Live Music & Coffee"}},
	}

	results := NewVenueSearchResults(rows)
	if results.Count != 2 || len(results.Data) != 2 {
		t.Fatalf("count/data mismatch: count=%d len=%d", results.Count, len(results.Data))
	}
	if results.Data[0].UpcomingShowNumber != 1 {
		t.Fatalf("expected materialized count 1, got %d", results.Data[0].UpcomingShowNumber)
	}

	empty := NewVenueSearchResults(nil)
	if empty.Count != 0 || empty.Data == nil {
		t.Fatalf("expected empty non-nil results, got %+v", empty)
	}
}

func TestNewVenueDetail(t *testing.T) {
	now := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	venue := models.Venue{
		ID:     1,
		Name:   "The Musical Hop",
		City:   "San Francisco",
		State:  "CA",
		Genres: []string{"Jazz", "Reggae", "Swing"},
	}
	shows := []models.Show{
		{
			StartTime: time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC),
			Venue:     venue,
			Artist:    models.Artist{ID: 4, Name: "Guns N Petals", ImageLink: "https://example.com/petals.jpg"},
		},
		{
			StartTime: now.Add(72 * time.Hour),
			Venue:     venue,
			Artist:    models.Artist{ID: 5, Name: "Matt Quevedo"},
		},
	}

	detail := NewVenueDetail(venue, shows, now)
	if detail.PastShowsCount != len(detail.PastShows) || detail.PastShowsCount != 1 {
		t.Fatalf("past count mismatch: count=%d len=%d", detail.PastShowsCount, len(detail.PastShows))
	}
	if detail.UpcomingShowsCount != len(detail.UpcomingShows) || detail.UpcomingShowsCount != 1 {
		t.Fatalf("upcoming count mismatch: count=%d len=%d", detail.UpcomingShowsCount, len(detail.UpcomingShows))
	}
	if detail.PastShows[0].ArtistName != "Guns N Petals" {
		t.Fatalf("expected past show by Guns N Petals, got %+v", detail.PastShows[0])
	}
	if detail.PastShows[0].StartTime != "05/21/2019, 21:30:00" {
		t.Fatalf("unexpected start time format: %q", detail.PastShows[0].StartTime)
	}
	if detail.Name != "The Musical Hop" || len(detail.Genres) != 3 {
		t.Fatalf("basic info not merged: %+v", detail.VenueInfo)
	}
}
