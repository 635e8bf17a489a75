package http

import (
	"errors"
	"net/http"

	"github.com/michaeliyer/canCockOne/internal/dto"
	"github.com/michaeliyer/canCockOne/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type VariantHandler struct {
	catalog service.CatalogService
	log     *zap.Logger
}

func NewVariantHandler(catalog service.CatalogService, log *zap.Logger) *VariantHandler {
	return &VariantHandler{catalog: catalog, log: log}
}

func (h *VariantHandler) Create(c *gin.Context) {
	var req dto.CreateVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid variant payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewError("invalid request body"))
		return
	}

	variant, err := h.catalog.CreateVariant(c.Request.Context(), service.VariantInput{
		ProductID:    req.ProductID,
		Size:         req.Size,
		UnitPrice:    req.UnitPrice,
		UnitsInStock: req.UnitsInStock,
		SKU:          req.SKU,
	})
	if err != nil {
		h.log.Error("failed to create variant", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.CreateVariantResponse{
		Message:   "Variant added",
		VariantID: variant.ID,
	})
}

func (h *VariantHandler) ListByProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	variants, err := h.catalog.ListVariants(c.Request.Context(), id)
	if err != nil {
		h.log.Error("failed to list variants", zap.Error(err), zap.Uint("product_id", id))
		c.JSON(http.StatusInternalServerError, dto.NewError(err.Error()))
		return
	}
	c.JSON(http.StatusOK, variants)
}

func (h *VariantHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid variant payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewError("invalid request body"))
		return
	}

	err := h.catalog.UpdateVariant(c.Request.Context(), id, service.VariantInput{
		Size:         req.Size,
		UnitPrice:    req.UnitPrice,
		UnitsInStock: req.UnitsInStock,
		SKU:          req.SKU,
	})
	if err != nil {
		if errors.Is(err, service.ErrVariantNotFound) {
			c.JSON(http.StatusNotFound, dto.NewError(err.Error()))
			return
		}
		h.log.Error("failed to update variant", zap.Error(err), zap.Uint("id", id))
		c.JSON(http.StatusInternalServerError, dto.NewError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Variant updated"})
}

func (h *VariantHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.catalog.DeleteVariant(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrVariantNotFound) {
			c.JSON(http.StatusNotFound, dto.NewError(err.Error()))
			return
		}
		h.log.Error("failed to delete variant", zap.Error(err), zap.Uint("id", id))
		c.JSON(http.StatusInternalServerError, dto.NewError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Variant deleted"})
}

// AddStock accepts any signed quantity and does not verify the variant
// exists; an unknown id is a no-op success.
func (h *VariantHandler) AddStock(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.AddStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid addstock payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewError("invalid request body"))
		return
	}

	if err := h.catalog.AddStock(c.Request.Context(), id, req.Quantity); err != nil {
		h.log.Error("failed to add stock", zap.Error(err), zap.Uint("id", id))
		c.JSON(http.StatusInternalServerError, dto.NewError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Stock added successfully"})
}
