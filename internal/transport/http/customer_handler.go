package http

import (
	"errors"
	"net/http"

	"github.com/michaeliyer/canCockOne/internal/dto"
	"github.com/michaeliyer/canCockOne/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CustomerHandler struct {
	catalog service.CatalogService
	log     *zap.Logger
}

func NewCustomerHandler(catalog service.CatalogService, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{catalog: catalog, log: log}
}

func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.catalog.ListCustomers(c.Request.Context())
	if err != nil {
		h.log.Error("failed to list customers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewError(err.Error()))
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid customer payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewError("invalid request body"))
		return
	}

	customer, err := h.catalog.CreateCustomer(c.Request.Context(), service.CustomerInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Notes: req.Notes,
	})
	if err != nil {
		if errors.Is(err, service.ErrCustomerNameRequired) {
			c.JSON(http.StatusBadRequest, dto.NewError(err.Error()))
			return
		}
		h.log.Error("failed to create customer", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewError(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, dto.CreateCustomerResponse{
		Message:    "Customer added!",
		CustomerID: customer.ID,
		Customer:   customer,
	})
}
