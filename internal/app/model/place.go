package model

import (
	"time"
)

// Place is a shop/location where a chocolate was bought, resolved from the
// Google Places API. Rows are upserted by GooglePlaceID: the same physical
// place referenced from many reviews stays a single row.
type Place struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	GooglePlaceID string    `gorm:"uniqueIndex;not null" json:"google_place_id"`
	Name          string    `gorm:"not null" json:"name"`
	Address       *string   `json:"address,omitempty"`
	Lat           *float64  `json:"lat,omitempty"`
	Lng           *float64  `json:"lng,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Reviews []Review `gorm:"foreignKey:PlaceID" json:"reviews,omitempty"`
}

func (Place) TableName() string {
	return "places"
}
