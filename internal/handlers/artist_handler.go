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

func parseArtistForm(c *gin.Context) (models.Artist, []string) {
	artist := models.Artist{
		Name:               c.PostForm("name"),
		City:               c.PostForm("city"),
		State:              c.PostForm("state"),
		Phone:              c.PostForm("phone"),
		Genres:             helpers.CollectIndexed(c, "genres"),
		ImageLink:          c.PostForm("image_link"),
		FacebookLink:       c.PostForm("facebook_link"),
		Website:            c.PostForm("website"),
		SeekingVenue:       helpers.ParseCheckbox(c.PostForm("seeking_venue")),
		SeekingDescription: c.PostForm("seeking_description"),
	}

	var problems []string
	if artist.Name == "" {
		problems = append(problems, "name: this field is required")
	}
	if artist.City == "" {
		problems = append(problems, "city: this field is required")
	}
	return artist, problems
}

func ListArtists(c *gin.Context) {
	gormDB := middleware.GetDB(c)
	if gormDB == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	artists, err := repository.NewArtistRepository(gormDB).All()
	if err != nil {
		log.Error().Err(err).Msg("artist listing query failed")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving artists.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"artists": views.ArtistList(artists)})
}

func SearchArtists(c *gin.Context) {
	gormDB := middleware.GetDB(c)
	if gormDB == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	term := c.PostForm("search_term")
	rows, err := repository.NewArtistRepository(gormDB).SearchByName(term, time.Now())
	if err != nil {
		log.Error().Err(err).Str("term", term).Msg("artist search failed")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error searching artists.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"results":     views.NewArtistSearchResults(rows),
		"search_term": term,
	})
}

func GetArtist(c *gin.Context) {
	artistID, err := helpers.StringToID(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid artist id.")
		return
	}

	gormDB := middleware.GetDB(c)
	if gormDB == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	artist, err := repository.NewArtistRepository(gormDB).ByID(artistID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Artist not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving artist.")
		return
	}

	shows, err := repository.NewShowRepository(gormDB).ByArtist(artistID)
	if err != nil {
		log.Error().Err(err).Uint("artist_id", artistID).Msg("artist shows query failed")
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving artist.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"artist": views.NewArtistDetail(*artist, shows, time.Now())})
}

func CreateArtist(c *gin.Context) {
	artist, problems := parseArtistForm(c)
	if len(problems) > 0 {
		helpers.RespondWithError(c, http.StatusBadRequest, "Please fix the following errors: "+strings.Join(problems, ", "))
		return
	}

	gormDB := middleware.GetDB(c)
	if gormDB == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	if err := repository.NewArtistRepository(gormDB).Create(&artist); err != nil {
		log.Error().Err(err).Str("name", artist.Name).Msg("artist insert failed")
		helpers.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("An error occurred. Artist %s could not be listed.", artist.Name))
		return
	}

	helpers.RespondWithNotice(c, http.StatusCreated, fmt.Sprintf("Artist %s was successfully listed!", artist.Name), gin.H{
		"artist_id": artist.ID,
	})
}

// UpdateArtist mirrors UpdateVenue: a full-record overwrite from the
// submitted form.
func UpdateArtist(c *gin.Context) {
	artistID, err := helpers.StringToID(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid artist id.")
		return
	}

	form, problems := parseArtistForm(c)
	if len(problems) > 0 {
		helpers.RespondWithError(c, http.StatusBadRequest, "Please fix the following errors: "+strings.Join(problems, ", "))
		return
	}

	gormDB := middleware.GetDB(c)
	if gormDB == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	repo := repository.NewArtistRepository(gormDB)
	artist, err := repo.ByID(artistID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Artist not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding artist.")
		return
	}

	artist.Name = form.Name
	artist.City = form.City
	artist.State = form.State
	artist.Phone = form.Phone
	artist.Genres = form.Genres
	artist.ImageLink = form.ImageLink
	artist.FacebookLink = form.FacebookLink
	artist.Website = form.Website
	artist.SeekingVenue = form.SeekingVenue
	artist.SeekingDescription = form.SeekingDescription

	if err := repo.Update(artist); err != nil {
		log.Error().Err(err).Uint("artist_id", artistID).Msg("artist update failed")
		helpers.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("An error occurred. Artist %s could not be updated.", form.Name))
		return
	}

	helpers.RespondWithNotice(c, http.StatusOK, fmt.Sprintf("Artist %s was successfully updated!", artist.Name), gin.H{
		"artist_id": artist.ID,
	})
}

func DeleteArtist(c *gin.Context) {
	artistID, err := helpers.StringToID(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid artist id.")
		return
	}

	gormDB := middleware.GetDB(c)
	if gormDB == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	if err := repository.NewArtistRepository(gormDB).Delete(artistID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Artist not found.")
			return
		}
		log.Error().Err(err).Uint("artist_id", artistID).Msg("artist delete failed")
		helpers.RespondWithError(c, http.StatusInternalServerError, "It was not possible to delete this Artist")
		return
	}

	helpers.RespondWithNotice(c, http.StatusOK, "The artist has been removed together with all of its shows.", nil)
}
