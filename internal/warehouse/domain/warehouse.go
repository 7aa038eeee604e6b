package domain

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Sentinel errors surfaced by the warehouse use cases
var (
	ErrWarehouseNotFound = errors.New("warehouse not found")
	ErrNameTaken         = errors.New("warehouse name already exists")
)

// Warehouse represents the warehouse entity
type Warehouse struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"uniqueIndex;not null"`
	Location    string         `json:"location" gorm:"not null"`
	Capacity    int            `json:"capacity" gorm:"not null"`
	RentalPrice float64        `json:"rental_price"`
	Type        string         `json:"type"`
	IsAvailable bool           `json:"is_available" gorm:"default:true"`
	OwnerID     uint           `json:"owner_id" gorm:"not null;index"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Warehouse) TableName() string {
	return "warehouses"
}

// WarehouseRepository defines the contract for warehouse data access
type WarehouseRepository interface {
	Create(warehouse *Warehouse) error
	FindByID(id uint) (*Warehouse, error)
	FindByName(name string) (*Warehouse, error)
	FindAll(limit, offset int) ([]Warehouse, error)
	FindByOwner(ownerID uint) ([]Warehouse, error)
	Update(warehouse *Warehouse) error
	Delete(id uint) error
	Count() (int64, error)
}
