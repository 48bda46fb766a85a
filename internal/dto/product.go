package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"productapi/internal/models"
)

// priceScale is the fixed number of fractional digits prices are stored with.
const priceScale = 2

// ProductRequest is the request body for creating a product (POST) or fully
// replacing one (PUT). All four business fields are mandatory; Quantity is a
// pointer so that an explicit 0 can be told apart from a missing field.
type ProductRequest struct {
	Name        string          `json:"name" validate:"required,notblank,max=255"`
	Description string          `json:"description" validate:"omitempty,max=1000"`
	Price       decimal.Decimal `json:"price" validate:"required,gte=0.01"`
	Quantity    *int            `json:"quantity" validate:"required,gte=0"`
}

// ProductUpdateRequest is the request body for partial updates (PATCH). Every
// field is optional; a nil field means "leave the stored value unchanged".
// JSON null and omission both decode to nil and are treated identically.
type ProductUpdateRequest struct {
	Name        *string          `json:"name" validate:"omitempty,notblank,max=255"`
	Description *string          `json:"description" validate:"omitempty,max=1000"`
	Price       *decimal.Decimal `json:"price" validate:"omitempty,gte=0.01"`
	Quantity    *int             `json:"quantity" validate:"omitempty,gte=0"`
}

// ProductResponse is the read-only wire projection of a product entity. It is
// constructed only by NewProductResponse and never accepted as input.
type ProductResponse struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ErrorResponse is the uniform error envelope returned by the API.
type ErrorResponse struct {
	Timestamp time.Time         `json:"timestamp"`
	Status    int               `json:"status"`
	Error     string            `json:"error"`
	Message   string            `json:"message"`
	Path      string            `json:"path,omitempty"`
	Errors    map[string]string `json:"errors,omitempty"`
}

// ToEntity builds a fresh entity from the request. The ID is left unset so the
// storage layer assigns one on first save.
func (r ProductRequest) ToEntity() models.Product {
	return models.Product{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price.Round(priceScale),
		Quantity:    *r.Quantity,
	}
}

// ApplyTo overwrites all four business fields of the entity with the request's
// values. ID and CreatedAt are never touched; UpdatedAt is refreshed by the
// storage layer on save.
func (r ProductRequest) ApplyTo(product *models.Product) {
	product.Name = r.Name
	product.Description = r.Description
	product.Price = r.Price.Round(priceScale)
	product.Quantity = *r.Quantity
}

// ApplyTo merges only the fields present in the request onto the entity,
// field by field. Absent fields keep the entity's stored values, so a body
// carrying only a price never resets the name or quantity. An empty body is a
// valid no-op merge.
func (r ProductUpdateRequest) ApplyTo(product *models.Product) {
	if r.Name != nil {
		product.Name = *r.Name
	}
	if r.Description != nil {
		product.Description = *r.Description
	}
	if r.Price != nil {
		product.Price = r.Price.Round(priceScale)
	}
	if r.Quantity != nil {
		product.Quantity = *r.Quantity
	}
}

// NewProductResponse maps an entity to its wire projection.
func NewProductResponse(product models.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Quantity:    product.Quantity,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

// NewProductResponses maps a slice of entities to wire projections.
func NewProductResponses(products []models.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, NewProductResponse(product))
	}
	return responses
}
