package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"fyyur/internal/helpers"
	"fyyur/internal/middleware"
	"fyyur/internal/models"
	"fyyur/internal/repository"
	"fyyur/internal/views"
)

// parseVenueForm reads the venue listing form. Field-level problems are
// aggregated so they can be flashed back in one message.
func parseVenueForm(c *gin.Context) (models.Venue, []string) {
	venue := models.Venue{
		Name:               c.PostForm("name"),
		City:               c.PostForm("city"),
		State:              c.PostForm("state"),
		Address:            c.PostForm("address"),
		Phone:              c.PostForm("phone"),
		Genres:             helpers.CollectIndexed(c, "genres"),
		ImageLink:          c.PostForm("image_link"),
		FacebookLink:       c.PostForm("facebook_link"),
		Website:            c.PostForm("website"),
		SeekingTalent:      helpers.ParseCheckbox(c.PostForm("seeking_talent")),
		SeekingDescription: c.PostForm("seeking_description"),
	}

	var problems []string
	if venue.Name == "" {
		problems = append(problems, "name: this field is required")
	}
	if venue.City == "" {
		problems = append(problems, "city: this field is required")
	}
	return venue, problems
}

func ListVenues(c *gin.Context) {
	gormDB := middleware.GetDB(c)
	if gormDB == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	repo := repository.NewVenueRepository(gormDB)
	rows, err := repo.WithUpcomingCounts(time.Now())
	if err != nil {
		log.Error().Err(err).Msg("venue board query failed")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving venues.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"areas": views.GroupVenuesByCity(rows)})
}

func SearchVenues(c *gin.Context) {
	gormDB := middleware.GetDB(c)
	if gormDB == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	term := c.PostForm("search_term")
	repo := repository.NewVenueRepository(gormDB)
	rows, err := repo.SearchByName(term, time.Now())
	if err != nil {
		log.Error().Err(err).Str("term", term).Msg("venue search failed")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error searching venues.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"results":     views.NewVenueSearchResults(rows),
		"search_term": term,
	})
}

func GetVenue(c *gin.Context) {
	venueID, err := helpers.StringToID(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid venue id.")
		return
	}

	gormDB := middleware.GetDB(c)
	if gormDB == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	venue, err := repository.NewVenueRepository(gormDB).ByID(venueID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Venue not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving venue.")
		return
	}

	shows, err := repository.NewShowRepository(gormDB).ByVenue(venueID)
	if err != nil {
		log.Error().Err(err).Uint("venue_id", venueID).Msg("venue shows query failed")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving venue.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"venue": views.NewVenueDetail(*venue, shows, time.Now())})
}

func CreateVenue(c *gin.Context) {
	venue, problems := parseVenueForm(c)
	if len(problems) > 0 {
		helpers.RespondWithError(c, http.StatusBadRequest, "Please fix the following errors: "+strings.Join(problems, ", "))
		return
	}

	gormDB := middleware.GetDB(c)
	if gormDB == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	if err := repository.NewVenueRepository(gormDB).Create(&venue); err != nil {
		log.Error().Err(err).Str("name", venue.Name).Msg("venue insert failed")
		helpers.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("An error occurred. Venue %s could not be listed.", venue.Name))
		return
	}

	helpers.RespondWithNotice(c, http.StatusCreated, fmt.Sprintf("Venue %s was successfully listed!", venue.Name), gin.H{
		"venue_id": venue.ID,
	})
}

// UpdateVenue is a full-record overwrite: every editable field is taken
// from the form, supplied or not.
func UpdateVenue(c *gin.Context) {
	venueID, err := helpers.StringToID(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid venue id.")
		return
	}

	form, problems := parseVenueForm(c)
	if len(problems) > 0 {
		helpers.RespondWithError(c, http.StatusBadRequest, "Please fix the following errors: "+strings.Join(problems, ", "))
		return
	}

	gormDB := middleware.GetDB(c)
	if gormDB == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	repo := repository.NewVenueRepository(gormDB)
	venue, err := repo.ByID(venueID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Venue not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding venue.")
		return
	}

	venue.Name = form.Name
	venue.City = form.City
	venue.State = form.State
	venue.Address = form.Address
	venue.Phone = form.Phone
	venue.Genres = form.Genres
	venue.ImageLink = form.ImageLink
	venue.FacebookLink = form.FacebookLink
	venue.Website = form.Website
	venue.SeekingTalent = form.SeekingTalent
	venue.SeekingDescription = form.SeekingDescription

	if err := repo.Update(venue); err != nil {
		log.Error().Err(err).Uint("venue_id", venueID).Msg("venue update failed")
		helpers.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("An error occurred. Venue %s could not be updated.", form.Name))
		return
	}

	helpers.RespondWithNotice(c, http.StatusOK, fmt.Sprintf("Venue %s was successfully updated!", venue.Name), gin.H{
		"venue_id": venue.ID,
	})
}

func DeleteVenue(c *gin.Context) {
	venueID, err := helpers.StringToID(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid venue id.")
		return
	}

	gormDB := middleware.GetDB(c)
	if gormDB == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	if err := repository.NewVenueRepository(gormDB).Delete(venueID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Venue not found.")
			return
		}
		log.Error().Err(err).Uint("venue_id", venueID).Msg("venue delete failed")
		helpers.RespondWithError(c, http.StatusInternalServerError, "It was not possible to delete this Venue")
		return
	}

	helpers.RespondWithNotice(c, http.StatusOK, "The venue has been removed together with all of its shows.", nil)
}
