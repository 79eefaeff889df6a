package models

import (
	"time"
)

type Product struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	SellerID uint    `gorm:"index;not null" json:"seller_id"`
	Name     string  `gorm:"size:255;not null" json:"name"`
	Qty      int     `gorm:"not null;check:qty >= 0" json:"qty"`
	Price    float64 `gorm:"type:numeric(10,2);not null;check:price >= 0" json:"price"`
	Image    string  `gorm:"size:255" json:"image"`
	Type     string  `gorm:"size:50;index" json:"type"` // groceries, electronics, etc.

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Seller Seller `gorm:"foreignKey:SellerID" json:"seller"`
}
