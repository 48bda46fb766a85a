package services_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"productapi/internal/dto"
	"productapi/internal/models"
	"productapi/internal/services"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByName(name string) (*models.Product, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Save(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockProductRepository) ExistsByID(id uint) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func newService(repo *MockProductRepository) *services.ProductService {
	return services.NewProductService(repo, zerolog.Nop())
}

func intPtr(i int) *int                { return &i }
func strPtr(s string) *string          { return &s }
func decPtr(s string) *decimal.Decimal { d := decimal.RequireFromString(s); return &d }

func storedProduct() models.Product {
	return models.Product{
		ID:          1,
		Name:        "Widget",
		Description: "A widget",
		Price:       decimal.RequireFromString("9.99"),
		Quantity:    5,
		CreatedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		UpdatedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newService(mockRepo)

	stored := []models.Product{storedProduct()}
	mockRepo.On("GetAll").Return(stored, nil).Once()

	responses, err := service.GetAllProducts()

	assert.NoError(t, err)
	assert.Len(t, responses, 1)
	assert.Equal(t, uint(1), responses[0].ID)
	assert.Equal(t, "Widget", responses[0].Name)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newService(mockRepo)

	stored := storedProduct()
	mockRepo.On("GetByID", uint(1)).Return(&stored, nil).Once()
	response, err := service.GetProductByID(1)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), response.ID)
	assert.Equal(t, "Widget", response.Name)
	mockRepo.AssertExpectations(t)

	// Not-found surfaces as the sentinel, never as a generic failure.
	mockRepo.On("GetByID", uint(99)).Return(nil, models.ErrProductNotFound).Once()
	_, err = service.GetProductByID(99)
	assert.ErrorIs(t, err, models.ErrProductNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newService(mockRepo)

	req := dto.ProductRequest{
		Name:        "Widget",
		Description: "A widget",
		Price:       decimal.RequireFromString("9.99"),
		Quantity:    intPtr(5),
	}

	mockRepo.On("Save", mock.AnythingOfType("*models.Product")).Run(func(args mock.Arguments) {
		product := args.Get(0).(*models.Product)
		product.ID = 1
		product.CreatedAt = time.Now()
		product.UpdatedAt = product.CreatedAt
	}).Return(nil).Once()

	response, err := service.CreateProduct(req)

	assert.NoError(t, err)
	assert.Equal(t, uint(1), response.ID)
	assert.Equal(t, "Widget", response.Name)
	assert.Equal(t, 5, response.Quantity)
	assert.False(t, response.CreatedAt.IsZero())
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct_NonPositivePrice(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newService(mockRepo)

	req := dto.ProductRequest{
		Name:     "Widget",
		Price:    decimal.Zero,
		Quantity: intPtr(5),
	}

	_, err := service.CreateProduct(req)

	assert.ErrorIs(t, err, models.ErrNonPositivePrice)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestProductService_CreateProduct_RepoError(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newService(mockRepo)

	req := dto.ProductRequest{
		Name:     "Widget",
		Price:    decimal.RequireFromString("9.99"),
		Quantity: intPtr(5),
	}

	mockRepo.On("Save", mock.AnythingOfType("*models.Product")).Return(fmt.Errorf("database error")).Once()

	_, err := service.CreateProduct(req)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newService(mockRepo)

	stored := storedProduct()
	req := dto.ProductRequest{
		Name:        "Gadget",
		Description: "",
		Price:       decimal.RequireFromString("19.50"),
		Quantity:    intPtr(0),
	}

	mockRepo.On("GetByID", uint(1)).Return(&stored, nil).Once()
	mockRepo.On("Save", mock.AnythingOfType("*models.Product")).Return(nil).Once()

	response, err := service.UpdateProduct(1, req)

	assert.NoError(t, err)
	// Full replace: every business field takes the request's value.
	assert.Equal(t, uint(1), response.ID)
	assert.Equal(t, "Gadget", response.Name)
	assert.Equal(t, "", response.Description)
	assert.True(t, response.Price.Equal(decimal.RequireFromString("19.50")))
	assert.Equal(t, 0, response.Quantity)
	assert.Equal(t, storedProduct().CreatedAt, response.CreatedAt)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newService(mockRepo)

	req := dto.ProductRequest{
		Name:     "Gadget",
		Price:    decimal.RequireFromString("19.50"),
		Quantity: intPtr(1),
	}

	mockRepo.On("GetByID", uint(99)).Return(nil, models.ErrProductNotFound).Once()

	_, err := service.UpdateProduct(99, req)

	assert.ErrorIs(t, err, models.ErrProductNotFound)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestProductService_PatchProduct_PriceOnly(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newService(mockRepo)

	stored := storedProduct()
	req := dto.ProductUpdateRequest{Price: decPtr("19.50")}

	mockRepo.On("GetByID", uint(1)).Return(&stored, nil).Once()
	mockRepo.On("Save", mock.AnythingOfType("*models.Product")).Return(nil).Once()

	response, err := service.PatchProduct(1, req)

	assert.NoError(t, err)
	// Only the supplied field changes; the rest keep their stored values.
	assert.True(t, response.Price.Equal(decimal.RequireFromString("19.50")))
	assert.Equal(t, "Widget", response.Name)
	assert.Equal(t, "A widget", response.Description)
	assert.Equal(t, 5, response.Quantity)
	mockRepo.AssertExpectations(t)
}

func TestProductService_PatchProduct_EmptyBody(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newService(mockRepo)

	stored := storedProduct()
	mockRepo.On("GetByID", uint(1)).Return(&stored, nil).Once()
	mockRepo.On("Save", mock.AnythingOfType("*models.Product")).Return(nil).Once()

	response, err := service.PatchProduct(1, dto.ProductUpdateRequest{})

	assert.NoError(t, err)
	assert.Equal(t, "Widget", response.Name)
	assert.Equal(t, 5, response.Quantity)
	assert.True(t, response.Price.Equal(decimal.RequireFromString("9.99")))
	mockRepo.AssertExpectations(t)
}

func TestProductService_PatchProduct_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newService(mockRepo)

	mockRepo.On("GetByID", uint(99)).Return(nil, models.ErrProductNotFound).Once()

	_, err := service.PatchProduct(99, dto.ProductUpdateRequest{Name: strPtr("Gadget")})

	assert.ErrorIs(t, err, models.ErrProductNotFound)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newService(mockRepo)

	mockRepo.On("ExistsByID", uint(1)).Return(true, nil).Once()
	mockRepo.On("Delete", uint(1)).Return(nil).Once()

	err := service.DeleteProduct(1)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newService(mockRepo)

	mockRepo.On("ExistsByID", uint(99)).Return(false, nil).Once()

	err := service.DeleteProduct(99)

	assert.ErrorIs(t, err, models.ErrProductNotFound)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything)
}
