package domain

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Sentinel errors surfaced by the product use cases
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock in source warehouse")
)

// Product represents a stock line in a warehouse
type Product struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"index;not null"`
	Description string         `json:"description"`
	Quantity    int            `json:"quantity" gorm:"not null;default:0"`
	IsActive    bool           `json:"is_active" gorm:"default:true"`
	WarehouseID uint           `json:"warehouse_id" gorm:"not null;index"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// InStock reports whether the line has stock left
func (p *Product) InStock() bool {
	return p.Quantity > 0 && p.IsActive
}

// ProductRepository defines the contract for product data access
type ProductRepository interface {
	Create(product *Product) error
	FindByID(id uint) (*Product, error)
	FindAll(limit, offset int) ([]Product, error)
	FindByWarehouse(warehouseID uint, limit, offset int) ([]Product, error)
	Update(product *Product) error
	Delete(id uint) error
	Count() (int64, error)

	// Transfer moves quantity units of the product from the source to the
	// target warehouse as one atomic unit and returns the destination line.
	Transfer(ctx context.Context, productID, sourceWarehouseID, targetWarehouseID uint, quantity int) (*Product, error)
}
