package models

import (
	"time"
)

type Account struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Informasi Login
	PhoneNumber string `gorm:"unique;not null;size:20" json:"phone_number"`
	Password    string `gorm:"not null" json:"-"`

	// Profil
	Name    string `gorm:"size:255" json:"name"`
	Address string `gorm:"size:255" json:"address"`

	// Wishlist is free text; the frontend stores whatever it wants here.
	Wishlist string `gorm:"type:text" json:"wishlist"`

	// Set once the account registers a seller identity. The unique index
	// guarantees an account can never be linked to two sellers.
	SellerID *uint `gorm:"uniqueIndex" json:"seller_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Seller *Seller `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
}
