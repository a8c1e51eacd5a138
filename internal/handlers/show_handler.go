package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"fyyur/internal/helpers"
	"fyyur/internal/middleware"
	"fyyur/internal/models"
	"fyyur/internal/repository"
	"fyyur/internal/views"
)

func ListShows(c *gin.Context) {
	gormDB := middleware.GetDB(c)
	if gormDB == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	shows, err := repository.NewShowRepository(gormDB).All()
	if err != nil {
		log.Error().Err(err).Msg("show listing query failed")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving shows.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"shows": views.ShowBoard(shows)})
}

func CreateShow(c *gin.Context) {
	var problems []string

	venueID, err := helpers.StringToID(c.PostForm("venue_id"))
	if err != nil {
		problems = append(problems, "venue_id: a numeric venue id is required")
	}
	artistID, err := helpers.StringToID(c.PostForm("artist_id"))
	if err != nil {
		problems = append(problems, "artist_id: a numeric artist id is required")
	}
	startTime, err := helpers.ParseStartTime(c.PostForm("start_time"))
	if err != nil {
		problems = append(problems, "start_time: an RFC 3339 timestamp is required")
	}

	if len(problems) > 0 {
		helpers.RespondWithError(c, http.StatusBadRequest, "Please fix the following errors: "+strings.Join(problems, ", "))
		return
	}

	gormDB := middleware.GetDB(c)
	if gormDB == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	show := models.Show{
		VenueID:   venueID,
		ArtistID:  artistID,
		StartTime: startTime,
	}

	if err := repository.NewShowRepository(gormDB).Create(&show); err != nil {
		switch {
		case errors.Is(err, repository.ErrVenueNotFound):
			helpers.RespondWithError(c, http.StatusBadRequest, "An error occurred. Show could not be listed: venue does not exist.")
		case errors.Is(err, repository.ErrArtistNotFound):
			helpers.RespondWithError(c, http.StatusBadRequest, "An error occurred. Show could not be listed: artist does not exist.")
		default:
			log.Error().Err(err).Uint("venue_id", venueID).Uint("artist_id", artistID).Msg("show insert failed")
			helpers.RespondWithError(c, http.StatusInternalServerError, "An error occurred. Show could not be listed.")
		}
		return
	}

	helpers.RespondWithNotice(c, http.StatusCreated, "Show was successfully listed!", gin.H{
		"show_id": show.ID,
	})
}
