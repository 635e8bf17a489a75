// Package dto defines the request and response schemas of the HTTP surface.
// Field names mirror the wire format the frontend already speaks: products
// use camelCase basePrice, everything else is snake_case.
package dto

import (
	"github.com/michaeliyer/canCockOne/internal/models"

	"github.com/shopspring/decimal"
)

type CreateCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

type CreateCustomerResponse struct {
	Message    string           `json:"message"`
	CustomerID uint             `json:"customer_id"`
	Customer   *models.Customer `json:"customer"`
}

type ProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	BasePrice   decimal.Decimal `json:"basePrice"`
	SKU         string          `json:"sku"`
	Category    string          `json:"category"`
}

type CreateProductResponse struct {
	Message   string          `json:"message"`
	ProductID uint            `json:"product_id"`
	Product   *models.Product `json:"product"`
}

type UpdateProductResponse struct {
	Message string          `json:"message"`
	Product *models.Product `json:"product"`
}

type CreateVariantRequest struct {
	ProductID    uint            `json:"product_id"`
	Size         string          `json:"size"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	UnitsInStock int             `json:"units_in_stock"`
	SKU          string          `json:"sku"`
}

type UpdateVariantRequest struct {
	Size         string          `json:"size"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	UnitsInStock int             `json:"units_in_stock"`
	SKU          string          `json:"sku"`
}

type CreateVariantResponse struct {
	Message   string `json:"message"`
	VariantID uint   `json:"variant_id"`
}

type AddStockRequest struct {
	Quantity int `json:"quantity"`
}

type OrderItemRequest struct {
	VariantID uint `json:"variant_id"`
	Quantity  int  `json:"quantity"`
}

// CreateOrderRequest: totals are optional and trusted when supplied; the
// server only backfills total_price from the item subtotals when absent.
type CreateOrderRequest struct {
	CustomerID uint               `json:"customer_id"`
	Items      []OrderItemRequest `json:"items"`
	TotalPrice *decimal.Decimal   `json:"total_price"`
	Payments   *decimal.Decimal   `json:"payments"`
	Balance    *decimal.Decimal   `json:"balance"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func NewError(msg string) ErrorResponse { return ErrorResponse{Error: msg} }
