package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"fyyur/internal/models"
)

// VenueWithCount is a venue row annotated with the number of its shows
// scheduled strictly after the reference time.
type VenueWithCount struct {
	models.Venue
	UpcomingShowNumber int
}

type VenueRepository interface {
	All() ([]models.Venue, error)
	ByID(id uint) (*models.Venue, error)
	WithUpcomingCounts(now time.Time) ([]VenueWithCount, error)
	SearchByName(term string, now time.Time) ([]VenueWithCount, error)
	Create(venue *models.Venue) error
	Update(venue *models.Venue) error
	Delete(id uint) error
}

type venueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) VenueRepository {
	return &venueRepository{db: db}
}

func (r *venueRepository) All() ([]models.Venue, error) {
	var venues []models.Venue
	if err := r.db.Order("id").Find(&venues).Error; err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *venueRepository) ByID(id uint) (*models.Venue, error) {
	var venue models.Venue
	if err := r.db.Where("id = ?", id).First(&venue).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &venue, nil
}

// upcomingJoin attaches the upcoming-show count to each venue row in a
// single grouped query instead of issuing one count per venue.
func (r *venueRepository) upcomingJoin(now time.Time) *gorm.DB {
	return r.db.Model(&models.Venue{}).
		Select("venues.*, count(shows.id) AS upcoming_show_number").
		Joins("LEFT JOIN shows ON shows.venue_id = venues.id AND shows.start_time > ?", now).
		Group("venues.id")
}

func (r *venueRepository) WithUpcomingCounts(now time.Time) ([]VenueWithCount, error) {
	var rows []VenueWithCount
	err := r.upcomingJoin(now).
		Order("venues.city, venues.state, venues.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// SearchByName matches the term as a case-insensitive substring of the
// venue name. An empty term matches every venue.
func (r *venueRepository) SearchByName(term string, now time.Time) ([]VenueWithCount, error) {
	var rows []VenueWithCount
	err := r.upcomingJoin(now).
		Where("venues.name ILIKE ?", "%"+term+"%").
		Order("venues.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *venueRepository) Create(venue *models.Venue) error {
	return r.db.Create(venue).Error
}

func (r *venueRepository) Update(venue *models.Venue) error {
	return r.db.Save(venue).Error
}

// Delete removes the venue row; the database cascade removes its shows.
func (r *venueRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Venue{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
