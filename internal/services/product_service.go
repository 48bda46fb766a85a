package services

import (
	"errors"

	"github.com/rs/zerolog"

	"productapi/internal/dto"
	"productapi/internal/models"
	"productapi/internal/repositories"
)

// ProductService orchestrates product CRUD: lookup, merge, persist, and the
// entity to response mapping. Not-found is reported as
// models.ErrProductNotFound, never as a panic or a generic failure.
type ProductService struct {
	repo   repositories.ProductRepository
	logger zerolog.Logger
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{
		repo:   repo,
		logger: logger,
	}
}

// GetAllProducts retrieves all products mapped to response DTOs.
func (s *ProductService) GetAllProducts() ([]dto.ProductResponse, error) {
	s.logger.Info().Msg("retrieving all products")
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int("count", len(products)).Msg("products retrieved")
	return dto.NewProductResponses(products), nil
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id uint) (dto.ProductResponse, error) {
	s.logger.Info().Uint("id", id).Msg("retrieving product")
	product, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			s.logger.Warn().Uint("id", id).Msg("product not found")
		}
		return dto.ProductResponse{}, err
	}
	return dto.NewProductResponse(*product), nil
}

// CreateProduct builds a fresh entity from the validated request and persists
// it. The positive-price rule is re-checked here even though validation already
// enforced it upstream.
func (s *ProductService) CreateProduct(req dto.ProductRequest) (dto.ProductResponse, error) {
	s.logger.Info().Str("name", req.Name).Msg("creating product")

	product := req.ToEntity()
	if !product.Price.IsPositive() {
		return dto.ProductResponse{}, models.ErrNonPositivePrice
	}

	if err := s.repo.Save(&product); err != nil {
		return dto.ProductResponse{}, err
	}
	s.logger.Info().Uint("id", product.ID).Msg("product created")
	return dto.NewProductResponse(product), nil
}

// UpdateProduct fully replaces the business fields of an existing product
// (PUT semantics). Returns models.ErrProductNotFound when the ID has no row.
func (s *ProductService) UpdateProduct(id uint, req dto.ProductRequest) (dto.ProductResponse, error) {
	s.logger.Info().Uint("id", id).Msg("updating product")

	product, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			s.logger.Warn().Uint("id", id).Msg("product not found for update")
		}
		return dto.ProductResponse{}, err
	}

	req.ApplyTo(product)
	if !product.Price.IsPositive() {
		return dto.ProductResponse{}, models.ErrNonPositivePrice
	}

	if err := s.repo.Save(product); err != nil {
		return dto.ProductResponse{}, err
	}
	s.logger.Info().Uint("id", product.ID).Msg("product updated")
	return dto.NewProductResponse(*product), nil
}

// PatchProduct merges only the fields present in the request onto an existing
// product (PATCH semantics). An empty request body is a valid no-op merge;
// only UpdatedAt changes on persist.
func (s *ProductService) PatchProduct(id uint, req dto.ProductUpdateRequest) (dto.ProductResponse, error) {
	s.logger.Info().Uint("id", id).Msg("partially updating product")

	product, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			s.logger.Warn().Uint("id", id).Msg("product not found for partial update")
		}
		return dto.ProductResponse{}, err
	}

	req.ApplyTo(product)
	if !product.Price.IsPositive() {
		return dto.ProductResponse{}, models.ErrNonPositivePrice
	}

	if err := s.repo.Save(product); err != nil {
		return dto.ProductResponse{}, err
	}
	s.logger.Info().Uint("id", product.ID).Msg("product partially updated")
	return dto.NewProductResponse(*product), nil
}

// DeleteProduct deletes a product by its ID. The existence check and the
// delete are two separate storage calls; under concurrent deletion this can
// race, which is accepted.
func (s *ProductService) DeleteProduct(id uint) error {
	s.logger.Info().Uint("id", id).Msg("deleting product")

	exists, err := s.repo.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		s.logger.Warn().Uint("id", id).Msg("product not found for deletion")
		return models.ErrProductNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.logger.Info().Uint("id", id).Msg("product deleted")
	return nil
}
