package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrProductNotFound is returned when no product exists for the given ID.
	ErrProductNotFound = errors.New("product not found")
	// ErrNonPositivePrice is returned when a write would persist a non-positive price.
	ErrNonPositivePrice = errors.New("product price must be positive")
)

// Product represents a product record in the store. CreatedAt is stamped once
// on the first insert and never touched again; UpdatedAt is refreshed on every
// save. Both stamps are applied by the storage layer atomically with the write.
// Two products with the same ID are the same row.
type Product struct {
	ID          uint            `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string          `json:"name" gorm:"type:varchar(255);not null"`
	Description string          `json:"description" gorm:"type:varchar(1000)"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Quantity    int             `json:"quantity" gorm:"not null"`
	CreatedAt   time.Time       `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time       `json:"updatedAt" gorm:"autoUpdateTime"`
}

// TableName sets the table name used by GORM.
func (Product) TableName() string {
	return "products"
}
