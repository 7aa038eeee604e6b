package command

import (
	"fmt"
	"time"

	"github.com/YarenOpuz/smart-stock/internal/product/domain"
	whdomain "github.com/YarenOpuz/smart-stock/internal/warehouse/domain"
)

// UpdateProductCommand lists exactly the mutable product fields
type UpdateProductCommand struct {
	ID          uint
	Name        string
	Description string
	Quantity    int
	IsActive    bool
	WarehouseID uint
}

// UpdateProductHandler handles product updates
type UpdateProductHandler struct {
	repo       domain.ProductRepository
	warehouses whdomain.WarehouseRepository
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(repo domain.ProductRepository, warehouses whdomain.WarehouseRepository) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo, warehouses: warehouses}
}

// Handle executes the update product command
func (h *UpdateProductHandler) Handle(cmd UpdateProductCommand) (*domain.Product, error) {
	if cmd.ID == 0 {
		return nil, fmt.Errorf("invalid product id")
	}
	if cmd.Name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if cmd.Quantity < 0 {
		return nil, fmt.Errorf("quantity cannot be negative")
	}

	product, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}

	// Re-validate the foreign key when the product moves
	if cmd.WarehouseID != product.WarehouseID {
		if _, err := h.warehouses.FindByID(cmd.WarehouseID); err != nil {
			return nil, fmt.Errorf("warehouse %d: %w", cmd.WarehouseID, whdomain.ErrWarehouseNotFound)
		}
	}

	product.Name = cmd.Name
	product.Description = cmd.Description
	product.Quantity = cmd.Quantity
	product.IsActive = cmd.IsActive
	product.WarehouseID = cmd.WarehouseID
	product.UpdatedAt = time.Now()

	if err := h.repo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}
