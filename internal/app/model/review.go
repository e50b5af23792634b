package model

import (
	"time"
)

type Review struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	Title         string    `gorm:"not null" json:"title"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	Mintiness     int       `gorm:"not null" json:"mintiness"`      // 1-5
	ChocoRichness int       `gorm:"not null" json:"choco_richness"` // 1-5
	ChocolateID   uint      `gorm:"not null;index" json:"chocolate_id"`
	PlaceID       *uint     `gorm:"index" json:"place_id,omitempty"`
	ImagePath     *string   `json:"image_path,omitempty"`
	UserID        uint      `gorm:"not null;index" json:"user_id"` // author, immutable
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Chocolate *Chocolate `gorm:"foreignKey:ChocolateID" json:"chocolate,omitempty"`
	Place     *Place     `gorm:"foreignKey:PlaceID" json:"place,omitempty"`
	User      *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Comments  []Comment  `gorm:"foreignKey:ReviewID" json:"comments,omitempty"`
}

func (Review) TableName() string {
	return "reviews"
}

// Request DTOs

type CreateReviewRequest struct {
	Title         string  `json:"title" binding:"required,min=1,max=100"`
	Content       string  `json:"content" binding:"required,min=1"`
	Mintiness     int     `json:"mintiness" binding:"required,min=1,max=5"`
	ChocoRichness int     `json:"choco_richness" binding:"required,min=1,max=5"`
	ChocolateID   uint    `json:"chocolate_id" binding:"required"`
	ImagePath     *string `json:"image_path" binding:"omitempty,max=500"`

	// Where the chocolate was bought; resolved against the Places API
	// and upserted into the places table before the review is saved.
	GooglePlaceID *string `json:"google_place_id" binding:"omitempty,max=200"`
}

type UpdateReviewRequest struct {
	Title         *string `json:"title" binding:"omitempty,min=1,max=100"`
	Content       *string `json:"content" binding:"omitempty,min=1"`
	Mintiness     *int    `json:"mintiness" binding:"omitempty,min=1,max=5"`
	ChocoRichness *int    `json:"choco_richness" binding:"omitempty,min=1,max=5"`
	ImagePath     *string `json:"image_path" binding:"omitempty,max=500"`
	GooglePlaceID *string `json:"google_place_id" binding:"omitempty,max=200"`
}

type ReviewListQuery struct {
	Page     int `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}
