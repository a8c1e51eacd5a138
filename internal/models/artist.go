package models

import (
	"time"

	"github.com/lib/pq"
)

type Artist struct {
	ID                 uint           `gorm:"primaryKey"`
	Name               string         `gorm:"not null"`
	City               string         `gorm:"size:120;not null"`
	State              string         `gorm:"size:120"`
	Phone              string         `gorm:"size:120"`
	Genres             pq.StringArray `gorm:"type:text[]"`
	ImageLink          string         `gorm:"size:500"`
	FacebookLink       string         `gorm:"size:120"`
	Website            string         `gorm:"size:120"`
	SeekingVenue       bool
	SeekingDescription string `gorm:"size:500"`
	Shows              []Show
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
