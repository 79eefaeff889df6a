package models

import (
	"time"
)

type TransactionStatus string

const (
	StatusOrdered    TransactionStatus = "ORDERED"
	StatusReady      TransactionStatus = "READY"
	StatusCompleted  TransactionStatus = "COMPLETED"
	StatusIncomplete TransactionStatus = "INCOMPLETE"
)

type Transaction struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	AccountID uint              `gorm:"index;not null" json:"account_id"`
	SellerID  uint              `gorm:"index;not null" json:"seller_id"`
	ProductID uint              `gorm:"index;not null" json:"product_id"`
	Qty       int               `gorm:"not null" json:"qty"`
	Total     float64           `gorm:"type:numeric(10,2);not null" json:"total"`
	Status    TransactionStatus `gorm:"size:20;default:'ORDERED'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
