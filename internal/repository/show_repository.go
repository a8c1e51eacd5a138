package repository

import (
	"errors"

	"gorm.io/gorm"

	"fyyur/internal/models"
)

type ShowRepository interface {
	All() ([]models.Show, error)
	ByVenue(venueID uint) ([]models.Show, error)
	ByArtist(artistID uint) ([]models.Show, error)
	Create(show *models.Show) error
}

type showRepository struct {
	db *gorm.DB
}

func NewShowRepository(db *gorm.DB) ShowRepository {
	return &showRepository{db: db}
}

func (r *showRepository) All() ([]models.Show, error) {
	var shows []models.Show
	err := r.db.Preload("Venue").Preload("Artist").Order("start_time").Find(&shows).Error
	if err != nil {
		return nil, err
	}
	return shows, nil
}

func (r *showRepository) ByVenue(venueID uint) ([]models.Show, error) {
	var shows []models.Show
	err := r.db.Preload("Venue").Preload("Artist").Where("venue_id = ?", venueID).Find(&shows).Error
	if err != nil {
		return nil, err
	}
	return shows, nil
}

func (r *showRepository) ByArtist(artistID uint) ([]models.Show, error) {
	var shows []models.Show
	err := r.db.Preload("Venue").Preload("Artist").Where("artist_id = ?", artistID).Find(&shows).Error
	if err != nil {
		return nil, err
	}
	return shows, nil
}

// Create persists a show after checking both foreign keys. A dangling
// venue or artist id leaves the store unchanged.
func (r *showRepository) Create(show *models.Show) error {
	var venue models.Venue
	if err := r.db.Where("id = ?", show.VenueID).First(&venue).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVenueNotFound
		}
		return err
	}

	var artist models.Artist
	if err := r.db.Where("id = ?", show.ArtistID).First(&artist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrArtistNotFound
		}
		return err
	}

	return r.db.Create(show).Error
}
