package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/farmchain/backend/services/products/handler/http"
)

// Handler wires the product HTTP handlers onto the router
type Handler struct {
	productHandler *http.ProductHandler
}

// NewHandler creates the product handler group
func NewHandler(productHandler *http.ProductHandler) *Handler {
	return &Handler{productHandler: productHandler}
}

// RegisterRoutes mounts the product endpoints. Public reads stay open;
// writes sit behind the supplier guard and moderation behind the admin
// guard.
func (h *Handler) RegisterRoutes(g *echo.Group, supplierGuard, adminGuard echo.MiddlewareFunc) {
	productGroup := g.Group("/products")

	productGroup.GET("", h.productHandler.List)

	// Static segments before the :id wildcard
	productGroup.GET("/mine", h.productHandler.ListMine, supplierGuard)
	productGroup.GET("/analytics", h.productHandler.Analytics, supplierGuard)

	productGroup.GET("/:id", h.productHandler.Get)
	productGroup.POST("", h.productHandler.Create, supplierGuard)
	productGroup.PUT("/:id", h.productHandler.Update, supplierGuard)
	productGroup.DELETE("/:id", h.productHandler.Delete, supplierGuard)
	productGroup.PUT("/:id/status", h.productHandler.UpdateStatus, adminGuard)
}
