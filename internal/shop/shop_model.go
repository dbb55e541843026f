package shop

import (
	"github.com/meutimefc/api/internal/models"
	"gorm.io/gorm"
)

// Product is a storefront article belonging to one team's shop.
type Product struct {
	gorm.Model
	TeamID      uint               `gorm:"index" json:"team_id"`
	Name        string             `gorm:"not null" json:"name"`
	Description string             `json:"description"`
	Price       float64            `gorm:"not null" json:"price"`
	Image       string             `json:"image"`
	Sizes       models.StringSlice `gorm:"type:json" json:"sizes"`
	Stock       int                `gorm:"default:0" json:"stock"`
}

type Order struct {
	gorm.Model
	Number string      `gorm:"uniqueIndex;not null" json:"number"`
	UserID uint        `gorm:"index" json:"user_id"`
	TeamID uint        `gorm:"index" json:"team_id"`
	Total  float64     `json:"total"`
	Status string      `gorm:"default:'pending'" json:"status"`
	Items  []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

// OrderItem snapshots a product line at purchase time; later catalog edits
// do not rewrite past orders.
type OrderItem struct {
	gorm.Model
	OrderID   uint    `gorm:"index" json:"order_id"`
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Size      string  `json:"size"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Image       string   `json:"image"`
	Sizes       []string `json:"sizes"`
	Stock       int      `json:"stock" binding:"gte=0"`
}

type UpdateProductRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	Image       *string   `json:"image"`
	Sizes       *[]string `json:"sizes"`
	Stock       *int      `json:"stock"`
}

// CheckoutRequest carries the client cart to the server. Quantities and
// prices are re-validated against the catalog before the order is created.
type CheckoutRequest struct {
	Items []CheckoutItem `json:"items" binding:"required,min=1,dive"`
}

type CheckoutItem struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}
