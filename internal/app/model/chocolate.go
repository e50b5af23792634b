package model

import (
	"time"

	"github.com/lib/pq"
)

type ChocolateStatus string

// Status is carried as opaque data; nothing at the service layer
// enforces a workflow between the two values.
const (
	StatusDraft     ChocolateStatus = "DRAFT"
	StatusPublished ChocolateStatus = "PUBLISHED"
)

type Chocolate struct {
	ID           uint            `gorm:"primarykey" json:"id"`
	Name         string          `gorm:"not null" json:"name"`
	Description  string          `gorm:"type:text;not null" json:"description"`
	CacaoPercent *int            `json:"cacao_percent,omitempty"`
	Price        *int            `json:"price,omitempty"`
	HasMint      bool            `gorm:"default:false" json:"has_mint"`
	Status       ChocolateStatus `gorm:"type:varchar(20);default:'PUBLISHED'" json:"status"`
	FlavorNotes  pq.StringArray  `gorm:"type:text[]" json:"flavor_notes,omitempty"`
	BrandID      uint            `gorm:"not null;index" json:"brand_id"`
	CategoryID   *uint           `gorm:"index" json:"category_id,omitempty"`
	UserID       uint            `gorm:"not null;index" json:"user_id"` // creator, immutable
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`

	Brand    *Brand    `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	User     *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Reviews  []Review  `gorm:"foreignKey:ChocolateID" json:"reviews,omitempty"`
}

func (Chocolate) TableName() string {
	return "chocolates"
}

// Request DTOs

type CreateChocolateRequest struct {
	Name         string          `json:"name" binding:"required,min=1,max=100"`
	Description  string          `json:"description" binding:"required,min=1"`
	CacaoPercent *int            `json:"cacao_percent" binding:"omitempty,min=0,max=100"`
	Price        *int            `json:"price" binding:"omitempty,min=0"`
	HasMint      bool            `json:"has_mint"`
	Status       ChocolateStatus `json:"status" binding:"omitempty,oneof=DRAFT PUBLISHED"`
	FlavorNotes  []string        `json:"flavor_notes" binding:"omitempty,max=10,dive,max=50"`
	BrandID      uint            `json:"brand_id" binding:"required"`
	CategoryID   *uint           `json:"category_id"`
}

type UpdateChocolateRequest struct {
	Name         *string          `json:"name" binding:"omitempty,min=1,max=100"`
	Description  *string          `json:"description" binding:"omitempty,min=1"`
	CacaoPercent *int             `json:"cacao_percent" binding:"omitempty,min=0,max=100"`
	Price        *int             `json:"price" binding:"omitempty,min=0"`
	HasMint      *bool            `json:"has_mint"`
	Status       *ChocolateStatus `json:"status" binding:"omitempty,oneof=DRAFT PUBLISHED"`
	FlavorNotes  []string         `json:"flavor_notes" binding:"omitempty,max=10,dive,max=50"`
	BrandID      *uint            `json:"brand_id"`
	CategoryID   *uint            `json:"category_id"`
}

type ChocolateListQuery struct {
	Page       int             `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize   int             `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
	BrandID    *uint           `form:"brand_id"`
	CategoryID *uint           `form:"category_id"`
	Status     ChocolateStatus `form:"status" binding:"omitempty,oneof=DRAFT PUBLISHED"`
	Search     string          `form:"search"`
}
