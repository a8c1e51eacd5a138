package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"fyyur/internal/models"
)

// ArtistWithCount is an artist row annotated with the number of its
// shows scheduled strictly after the reference time.
type ArtistWithCount struct {
	models.Artist
	UpcomingShowNumber int
}

type ArtistRepository interface {
	All() ([]models.Artist, error)
	ByID(id uint) (*models.Artist, error)
	SearchByName(term string, now time.Time) ([]ArtistWithCount, error)
	Create(artist *models.Artist) error
	Update(artist *models.Artist) error
	Delete(id uint) error
}

type artistRepository struct {
	db *gorm.DB
}

func NewArtistRepository(db *gorm.DB) ArtistRepository {
	return &artistRepository{db: db}
}

func (r *artistRepository) All() ([]models.Artist, error) {
	var artists []models.Artist
	if err := r.db.Order("id").Find(&artists).Error; err != nil {
		return nil, err
	}
	return artists, nil
}

func (r *artistRepository) ByID(id uint) (*models.Artist, error) {
	var artist models.Artist
	if err := r.db.Where("id = ?", id).First(&artist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &artist, nil
}

// SearchByName matches the term as a case-insensitive substring of the
// artist name. An empty term matches every artist.
func (r *artistRepository) SearchByName(term string, now time.Time) ([]ArtistWithCount, error) {
	var rows []ArtistWithCount
	err := r.db.Model(&models.Artist{}).
		Select("artists.*, count(shows.id) AS upcoming_show_number").
		Joins("LEFT JOIN shows ON shows.artist_id = artists.id AND shows.start_time > ?", now).
		Where("artists.name ILIKE ?", "%"+term+"%").
		Group("artists.id").
		Order("artists.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *artistRepository) Create(artist *models.Artist) error {
	return r.db.Create(artist).Error
}

func (r *artistRepository) Update(artist *models.Artist) error {
	return r.db.Save(artist).Error
}

// Delete removes the artist row; the database cascade removes its shows.
// Same contract as venue deletion.
func (r *artistRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Artist{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
