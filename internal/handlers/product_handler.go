package handlers

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/rs/zerolog"

	"productapi/internal/dto"
	"productapi/internal/models"
	"productapi/internal/services"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: dto.NewValidator(),
		logger:   logger,
	}
}

// RegisterRoutes registers the product routes with the Fiber app. Read routes
// are open; write routes run behind the given auth gate.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, writeGate fiber.Handler) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", writeGate, h.HandleCreateProduct)
	productRoutes.Put("/:id", writeGate, h.HandleUpdateProduct)
	productRoutes.Patch("/:id", writeGate, h.HandlePatchProduct)
	productRoutes.Delete("/:id", writeGate, h.HandleDeleteProduct)
}

// HandleGetProducts retrieves all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		return h.handleServiceError(c, err)
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, ok := h.parseID(c)
	if !ok {
		return errorEnvelope(c, fiber.StatusBadRequest, "Invalid product ID", nil)
	}

	product, err := h.service.GetProductByID(id)
	if err != nil {
		return h.handleServiceError(c, err)
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a new product from a validated request body.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return errorEnvelope(c, fiber.StatusBadRequest, "Invalid request body", nil)
	}

	if err := h.validate.Struct(req); err != nil {
		return errorEnvelope(c, fiber.StatusBadRequest, "Validation failed", dto.Violations(err))
	}

	product, err := h.service.CreateProduct(req)
	if err != nil {
		return h.handleServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct fully replaces an existing product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, ok := h.parseID(c)
	if !ok {
		return errorEnvelope(c, fiber.StatusBadRequest, "Invalid product ID", nil)
	}

	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return errorEnvelope(c, fiber.StatusBadRequest, "Invalid request body", nil)
	}

	if err := h.validate.Struct(req); err != nil {
		return errorEnvelope(c, fiber.StatusBadRequest, "Validation failed", dto.Violations(err))
	}

	product, err := h.service.UpdateProduct(id, req)
	if err != nil {
		return h.handleServiceError(c, err)
	}
	return c.JSON(product)
}

// HandlePatchProduct partially updates an existing product. An empty body is
// valid and leaves every business field unchanged.
func (h *ProductHandler) HandlePatchProduct(c *fiber.Ctx) error {
	id, ok := h.parseID(c)
	if !ok {
		return errorEnvelope(c, fiber.StatusBadRequest, "Invalid product ID", nil)
	}

	var req dto.ProductUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return errorEnvelope(c, fiber.StatusBadRequest, "Invalid request body", nil)
	}

	if err := h.validate.Struct(req); err != nil {
		return errorEnvelope(c, fiber.StatusBadRequest, "Validation failed", dto.Violations(err))
	}

	product, err := h.service.PatchProduct(id, req)
	if err != nil {
		return h.handleServiceError(c, err)
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes a product by its ID.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, ok := h.parseID(c)
	if !ok {
		return errorEnvelope(c, fiber.StatusBadRequest, "Invalid product ID", nil)
	}

	if err := h.service.DeleteProduct(id); err != nil {
		return h.handleServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ProductHandler) parseID(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, false
	}
	return uint(id), true
}

// handleServiceError maps service faults onto the error envelope: not-found to
// 404, the positive-price business rule to 400, everything else to a generic
// 500 whose detail is only logged.
func (h *ProductHandler) handleServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, models.ErrProductNotFound):
		return errorEnvelope(c, fiber.StatusNotFound, "Product not found", nil)
	case errors.Is(err, models.ErrNonPositivePrice):
		return errorEnvelope(c, fiber.StatusBadRequest, err.Error(), nil)
	default:
		h.logger.Error().Err(err).Str("path", c.Path()).Msg("unexpected failure")
		return errorEnvelope(c, fiber.StatusInternalServerError, "An unexpected error occurred", nil)
	}
}

func errorEnvelope(c *fiber.Ctx, status int, message string, violations map[string]string) error {
	return c.Status(status).JSON(dto.ErrorResponse{
		Timestamp: time.Now(),
		Status:    status,
		Error:     utils.StatusMessage(status),
		Message:   message,
		Path:      c.Path(),
		Errors:    violations,
	})
}
