package models

import (
	"time"
)

type Seller struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Location string  `gorm:"size:255;not null" json:"location"`
	Rating   float64 `gorm:"type:numeric(2,1);default:0;check:rating >= 0 AND rating < 10" json:"rating"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
