package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is stored as text. Orders are created "open" and nothing in
// the current flow transitions them further.
type OrderStatus string

const (
	OrderStatusOpen OrderStatus = "open"
)

type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	Email     string    `gorm:"type:text" json:"email"`
	Phone     string    `gorm:"type:text" json:"phone"`
	Notes     string    `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

func (Customer) TableName() string { return "customers" }

type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"type:text;not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	BasePrice   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"base_price"`
	SKU         string          `gorm:"type:text;not null;uniqueIndex" json:"sku"`
	Category    string          `gorm:"type:text" json:"category"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	Variants []Variant `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Product) TableName() string { return "products" }

// Variant is the sellable unit: price and stock live here, not on the
// product.
type Variant struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	ProductID    uint            `gorm:"not null;index" json:"product_id"`
	Size         string          `gorm:"type:text" json:"size"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(10,2)" json:"unit_price"`
	UnitsInStock int             `gorm:"not null;default:0" json:"units_in_stock"`
	UnitsSold    int             `gorm:"not null;default:0" json:"units_sold"`
	SKU          string          `gorm:"type:text" json:"sku"`
	CreatedAt    time.Time       `json:"created_at"`
}

func (Variant) TableName() string { return "product_variants" }

type Order struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	CustomerID uint            `gorm:"not null;index" json:"customer_id"`
	Date       time.Time       `gorm:"not null;index" json:"date"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_price"`
	Payments   decimal.Decimal `gorm:"type:decimal(10,2)" json:"payments"`
	Balance    decimal.Decimal `gorm:"type:decimal(10,2)" json:"balance"`
	Status     OrderStatus     `gorm:"type:text;not null;default:'open'" json:"status"`
	CreatedAt  time.Time       `json:"created_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

func (Order) TableName() string { return "orders" }

type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"not null;index" json:"order_id"`
	ProductID uint            `gorm:"not null" json:"product_id"`
	VariantID uint            `gorm:"not null;index" json:"variant_id"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(10,2)" json:"subtotal"`
	CreatedAt time.Time       `json:"created_at"`
}

func (OrderItem) TableName() string { return "order_items" }
