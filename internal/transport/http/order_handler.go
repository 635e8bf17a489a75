package http

import (
	"errors"
	"net/http"

	"github.com/michaeliyer/canCockOne/internal/dto"
	"github.com/michaeliyer/canCockOne/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderHandler struct {
	orders service.OrderService
	log    *zap.Logger
}

func NewOrderHandler(orders service.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{orders: orders, log: log}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid order payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewError("invalid request body"))
		return
	}

	items := make([]service.OrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, service.OrderItemInput{VariantID: it.VariantID, Quantity: it.Quantity})
	}

	_, err := h.orders.CreateOrder(c.Request.Context(), service.CreateOrderInput{
		CustomerID: req.CustomerID,
		Items:      items,
		TotalPrice: req.TotalPrice,
		Payments:   req.Payments,
		Balance:    req.Balance,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCustomerRequired),
			errors.Is(err, service.ErrEmptyItems),
			errors.Is(err, service.ErrQuantityInvalid):
			c.JSON(http.StatusBadRequest, dto.NewError(err.Error()))
		default:
			// Includes a missing variant: the transaction has already been
			// rolled back, nothing was persisted.
			h.log.Error("order creation failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, dto.NewError(err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Order placed successfully!"})
}

func (h *OrderHandler) List(c *gin.Context) {
	rows, err := h.orders.ListOrders(c.Request.Context())
	if err != nil {
		h.log.Error("failed to list orders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewError(err.Error()))
		return
	}
	c.JSON(http.StatusOK, rows)
}
