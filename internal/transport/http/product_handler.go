package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/michaeliyer/canCockOne/internal/dto"
	"github.com/michaeliyer/canCockOne/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProductHandler struct {
	catalog service.CatalogService
	log     *zap.Logger
}

func NewProductHandler(catalog service.CatalogService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{catalog: catalog, log: log}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewError("invalid id"))
		return 0, false
	}
	return uint(id), true
}

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		h.log.Error("failed to list products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewError(err.Error()))
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid product payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewError("invalid request body"))
		return
	}

	product, err := h.catalog.CreateProduct(c.Request.Context(), productInput(req))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductFieldsRequired), errors.Is(err, service.ErrPriceNegative):
			c.JSON(http.StatusBadRequest, dto.NewError(err.Error()))
		default:
			// Duplicate SKU lands here: the unique-constraint failure is
			// surfaced as the storage error, not classified separately.
			h.log.Error("failed to create product", zap.Error(err))
			c.JSON(http.StatusInternalServerError, dto.NewError(err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, dto.CreateProductResponse{
		Message:   "Product added successfully",
		ProductID: product.ID,
		Product:   product,
	})
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid product payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewError("invalid request body"))
		return
	}

	product, err := h.catalog.UpdateProduct(c.Request.Context(), id, productInput(req))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductFieldsRequired), errors.Is(err, service.ErrPriceNegative):
			c.JSON(http.StatusBadRequest, dto.NewError(err.Error()))
		case errors.Is(err, service.ErrProductNotFound):
			c.JSON(http.StatusNotFound, dto.NewError(err.Error()))
		default:
			h.log.Error("failed to update product", zap.Error(err), zap.Uint("id", id))
			c.JSON(http.StatusInternalServerError, dto.NewError(err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, dto.UpdateProductResponse{
		Message: "Product updated successfully",
		Product: product,
	})
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.catalog.DeleteProduct(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, dto.NewError(err.Error()))
			return
		}
		h.log.Error("failed to delete product", zap.Error(err), zap.Uint("id", id))
		c.JSON(http.StatusInternalServerError, dto.NewError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Product deleted successfully"})
}

func productInput(req dto.ProductRequest) service.ProductInput {
	return service.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		BasePrice:   req.BasePrice,
		SKU:         req.SKU,
		Category:    req.Category,
	}
}
