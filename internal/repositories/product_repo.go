package repositories

import (
	"productapi/internal/models"
)

// ProductRepository defines the interface for product data access. Save is an
// upsert: a product without an ID is inserted and gets one assigned, a product
// with an ID overwrites the stored row. Lookups that match nothing return
// models.ErrProductNotFound.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	GetByName(name string) (*models.Product, error)
	Save(product *models.Product) error
	Delete(id uint) error
	ExistsByID(id uint) (bool, error)
}
