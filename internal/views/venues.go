package views

import (
	"sort"
	"time"

	"fyyur/internal/models"
	"fyyur/internal/repository"
)

// VenueInfo is the flat basic-info projection of a venue: every scalar
// and array attribute, shows excluded. It seeds every other venue view.
type VenueInfo struct {
	ID                 uint     `json:"id"`
	Name               string   `json:"name"`
	Genres             []string `json:"genres"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	Address            string   `json:"address"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
	Website            string   `json:"website"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
}

func NewVenueInfo(venue models.Venue) VenueInfo {
	return VenueInfo{
		ID:                 venue.ID,
		Name:               venue.Name,
		Genres:             venue.Genres,
		City:               venue.City,
		State:              venue.State,
		Phone:              venue.Phone,
		Address:            venue.Address,
		ImageLink:          venue.ImageLink,
		FacebookLink:       venue.FacebookLink,
		Website:            venue.Website,
		SeekingTalent:      venue.SeekingTalent,
		SeekingDescription: venue.SeekingDescription,
	}
}

// VenueSummary is the basic info plus the materialized count of
// upcoming shows.
type VenueSummary struct {
	VenueInfo
	UpcomingShowNumber int `json:"upcoming_show_number"`
}

func NewVenueSummary(row repository.VenueWithCount) VenueSummary {
	return VenueSummary{
		VenueInfo:          NewVenueInfo(row.Venue),
		UpcomingShowNumber: row.UpcomingShowNumber,
	}
}

// CityVenues is one group of the venue board: all venues sharing a
// (city, state) pair.
type CityVenues struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

// GroupVenuesByCity buckets venues by (city, state). Groups are sorted
// by city then state, venues by id within each group.
func GroupVenuesByCity(rows []repository.VenueWithCount) []CityVenues {
	index := make(map[[2]string]int)
	areas := []CityVenues{}
	for _, row := range rows {
		key := [2]string{row.City, row.State}
		i, ok := index[key]
		if !ok {
			i = len(areas)
			index[key] = i
			areas = append(areas, CityVenues{City: row.City, State: row.State})
		}
		areas[i].Venues = append(areas[i].Venues, NewVenueSummary(row))
	}

	sort.Slice(areas, func(i, j int) bool {
		if areas[i].City != areas[j].City {
			return areas[i].City < areas[j].City
		}
		return areas[i].State < areas[j].State
	})
	for i := range areas {
		venues := areas[i].Venues
		sort.Slice(venues, func(a, b int) bool { return venues[a].ID < venues[b].ID })
	}
	return areas
}

// VenueSearchResults is the search response shape: the match count and
// one summary per matched venue.
type VenueSearchResults struct {
	Count int            `json:"count"`
	Data  []VenueSummary `json:"data"`
}

func NewVenueSearchResults(rows []repository.VenueWithCount) VenueSearchResults {
	data := make([]VenueSummary, 0, len(rows))
	for _, row := range rows {
		data = append(data, NewVenueSummary(row))
	}
	return VenueSearchResults{Count: len(data), Data: data}
}

// VenueDetail is the individual venue page: basic info merged with the
// past/upcoming show split and the two counts.
type VenueDetail struct {
	VenueInfo
	PastShows          []ShowEntry `json:"past_shows"`
	UpcomingShows      []ShowEntry `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

func NewVenueDetail(venue models.Venue, shows []models.Show, now time.Time) VenueDetail {
	past, upcoming := SplitShows(shows, now)
	return VenueDetail{
		VenueInfo:          NewVenueInfo(venue),
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
}
