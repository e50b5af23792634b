package model

import (
	"time"
)

// Category groups chocolates (dark, milk, white, ...). Reference data
// seeded at migration time; chocolates point at it optionally.
type Category struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}
