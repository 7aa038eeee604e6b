package command

import (
	"fmt"
	"time"

	"github.com/YarenOpuz/smart-stock/internal/product/domain"
	whdomain "github.com/YarenOpuz/smart-stock/internal/warehouse/domain"
)

// CreateProductCommand represents the command to create a new product
type CreateProductCommand struct {
	Name        string
	Description string
	Quantity    int
	WarehouseID uint
}

// CreateProductHandler handles product creation
type CreateProductHandler struct {
	repo       domain.ProductRepository
	warehouses whdomain.WarehouseRepository
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(repo domain.ProductRepository, warehouses whdomain.WarehouseRepository) *CreateProductHandler {
	return &CreateProductHandler{repo: repo, warehouses: warehouses}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(cmd CreateProductCommand) (*domain.Product, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if cmd.Quantity < 0 {
		return nil, fmt.Errorf("quantity cannot be negative")
	}
	if cmd.WarehouseID == 0 {
		return nil, fmt.Errorf("warehouse is required")
	}

	// The owning warehouse must exist
	if _, err := h.warehouses.FindByID(cmd.WarehouseID); err != nil {
		return nil, fmt.Errorf("warehouse %d: %w", cmd.WarehouseID, whdomain.ErrWarehouseNotFound)
	}

	product := &domain.Product{
		Name:        cmd.Name,
		Description: cmd.Description,
		Quantity:    cmd.Quantity,
		IsActive:    true,
		WarehouseID: cmd.WarehouseID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := h.repo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}
