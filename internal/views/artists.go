package views

import (
	"time"

	"fyyur/internal/models"
	"fyyur/internal/repository"
)

// ArtistInfo is the flat basic-info projection of an artist.
type ArtistInfo struct {
	ID                 uint     `json:"id"`
	Name               string   `json:"name"`
	Genres             []string `json:"genres"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
	Website            string   `json:"website"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description"`
}

func NewArtistInfo(artist models.Artist) ArtistInfo {
	return ArtistInfo{
		ID:                 artist.ID,
		Name:               artist.Name,
		Genres:             artist.Genres,
		City:               artist.City,
		State:              artist.State,
		Phone:              artist.Phone,
		ImageLink:          artist.ImageLink,
		FacebookLink:       artist.FacebookLink,
		Website:            artist.Website,
		SeekingVenue:       artist.SeekingVenue,
		SeekingDescription: artist.SeekingDescription,
	}
}

// ArtistList is the /artists page: basic infos only.
func ArtistList(artists []models.Artist) []ArtistInfo {
	infos := make([]ArtistInfo, 0, len(artists))
	for _, artist := range artists {
		infos = append(infos, NewArtistInfo(artist))
	}
	return infos
}

// ArtistSummary is the basic info plus the materialized count of
// upcoming shows.
type ArtistSummary struct {
	ArtistInfo
	UpcomingShowNumber int `json:"upcoming_show_number"`
}

func NewArtistSummary(row repository.ArtistWithCount) ArtistSummary {
	return ArtistSummary{
		ArtistInfo:         NewArtistInfo(row.Artist),
		UpcomingShowNumber: row.UpcomingShowNumber,
	}
}

// ArtistSearchResults is the search response shape for artists.
type ArtistSearchResults struct {
	Count int             `json:"count"`
	Data  []ArtistSummary `json:"data"`
}

func NewArtistSearchResults(rows []repository.ArtistWithCount) ArtistSearchResults {
	data := make([]ArtistSummary, 0, len(rows))
	for _, row := range rows {
		data = append(data, NewArtistSummary(row))
	}
	return ArtistSearchResults{Count: len(data), Data: data}
}

// ArtistDetail is the individual artist page.
type ArtistDetail struct {
	ArtistInfo
	PastShows          []ShowEntry `json:"past_shows"`
	UpcomingShows      []ShowEntry `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

func NewArtistDetail(artist models.Artist, shows []models.Show, now time.Time) ArtistDetail {
	past, upcoming := SplitShows(shows, now)
	return ArtistDetail{
		ArtistInfo:         NewArtistInfo(artist),
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
}
