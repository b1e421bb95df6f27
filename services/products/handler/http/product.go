package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/farmchain/backend/internal/pkg/logger"
	"github.com/farmchain/backend/internal/pkg/middleware"
	"github.com/farmchain/backend/internal/pkg/models"
	"github.com/farmchain/backend/internal/utils"
	"github.com/farmchain/backend/services/products"
	"github.com/farmchain/backend/services/products/usecase"
)

// ProductHandler handles HTTP requests for product listings
type ProductHandler struct {
	productUC products.ProductUC
}

// NewProductHandler creates a new product handler
func NewProductHandler(productUC products.ProductUC) *ProductHandler {
	return &ProductHandler{productUC: productUC}
}

// List handles GET /products
func (h *ProductHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	filter := models.ProductFilter{
		Category: c.QueryParam("category"),
		Query:    c.QueryParam("q"),
		Page:     page,
		Limit:    limit,
	}

	items, total, err := h.productUC.ListPublic(c.Request().Context(), filter)
	if err != nil {
		logger.Error("Failed to list products", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list products")
	}

	page, limit, _ = utils.Pagination(filter.Page, filter.Limit, 20, 100)
	pages := int((total + int64(limit) - 1) / int64(limit))
	return utils.PagedSuccessResponse(c, items, page, pages, total, limit)
}

// Get handles GET /products/:id
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.productUC.GetPublic(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrProductNotFound) {
			return utils.NotFoundResponse(c, "Product not found")
		}
		logger.Error("Failed to get product", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to get product")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", product)
}

// Create handles POST /products (supplier)
func (h *ProductHandler) Create(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid product fields")
	}

	product, err := h.productUC.Create(c.Request().Context(), user.ID.Hex(), &req)
	if err != nil {
		logger.Error("Failed to create product", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to create product")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Product created", product)
}

// Update handles PUT /products/:id (supplier, own product)
func (h *ProductHandler) Update(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid product fields")
	}

	product, err := h.productUC.Update(c.Request().Context(), user.ID.Hex(), c.Param("id"), &req)
	if err != nil {
		return h.mapWriteError(c, err, "Failed to update product")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Product updated", product)
}

// Delete handles DELETE /products/:id (supplier, own product)
func (h *ProductHandler) Delete(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.productUC.Delete(c.Request().Context(), user.ID.Hex(), c.Param("id")); err != nil {
		return h.mapWriteError(c, err, "Failed to delete product")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Product deleted", nil)
}

// ListMine handles GET /products/mine (supplier)
func (h *ProductHandler) ListMine(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	items, total, err := h.productUC.ListMine(c.Request().Context(), user.ID.Hex(), page, limit)
	if err != nil {
		logger.Error("Failed to list supplier products", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list products")
	}

	page, limit, _ = utils.Pagination(page, limit, 20, 100)
	pages := int((total + int64(limit) - 1) / int64(limit))
	return utils.PagedSuccessResponse(c, items, page, pages, total, limit)
}

// Analytics handles GET /products/analytics (supplier)
func (h *ProductHandler) Analytics(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	analytics, err := h.productUC.Analytics(c.Request().Context(), user.ID.Hex())
	if err != nil {
		logger.Error("Failed to build supplier analytics", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to build analytics")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", analytics)
}

// UpdateStatus handles PUT /products/:id/status (admin moderation)
func (h *ProductHandler) UpdateStatus(c echo.Context) error {
	var req models.UpdateProductStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid status")
	}

	product, err := h.productUC.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, usecase.ErrProductNotFound) {
			return utils.NotFoundResponse(c, "Product not found")
		}
		logger.Error("Failed to moderate product", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to update status")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Status updated", product)
}

func (h *ProductHandler) mapWriteError(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, usecase.ErrProductNotFound):
		return utils.NotFoundResponse(c, "Product not found")
	case errors.Is(err, usecase.ErrNotOwner):
		return utils.ForbiddenResponse(c, "Not your product")
	default:
		logger.Error(fallback, logger.Err(err))
		return utils.InternalServerErrorResponse(c, fallback)
	}
}
