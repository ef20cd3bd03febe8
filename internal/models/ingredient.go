package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ingredient is something that can be put on a pizza at a given cost
type Ingredient struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Name      string          `gorm:"size:255;not null" json:"name"`
	Cost      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"cost"`
	CreatedAt time.Time       `json:"-"`
	UpdatedAt time.Time       `json:"-"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}
