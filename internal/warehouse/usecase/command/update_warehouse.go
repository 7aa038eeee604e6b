package command

import (
	"fmt"
	"time"

	"github.com/YarenOpuz/smart-stock/internal/warehouse/domain"
)

// UpdateWarehouseCommand lists exactly the mutable warehouse fields
type UpdateWarehouseCommand struct {
	ID          uint
	Name        string
	Location    string
	Capacity    int
	RentalPrice float64
	Type        string
	IsAvailable bool
}

// UpdateWarehouseHandler handles warehouse updates
type UpdateWarehouseHandler struct {
	repo domain.WarehouseRepository
}

// NewUpdateWarehouseHandler creates a new update warehouse handler
func NewUpdateWarehouseHandler(repo domain.WarehouseRepository) *UpdateWarehouseHandler {
	return &UpdateWarehouseHandler{repo: repo}
}

// Handle executes the update warehouse command
func (h *UpdateWarehouseHandler) Handle(cmd UpdateWarehouseCommand) (*domain.Warehouse, error) {
	if cmd.ID == 0 {
		return nil, fmt.Errorf("invalid warehouse id")
	}
	if cmd.Name == "" {
		return nil, fmt.Errorf("warehouse name is required")
	}
	if cmd.Capacity <= 0 {
		return nil, fmt.Errorf("capacity must be positive")
	}

	warehouse, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, domain.ErrWarehouseNotFound
	}

	// Re-validate uniqueness when the name changes
	if cmd.Name != warehouse.Name {
		if existing, _ := h.repo.FindByName(cmd.Name); existing != nil {
			return nil, domain.ErrNameTaken
		}
	}

	warehouse.Name = cmd.Name
	warehouse.Location = cmd.Location
	warehouse.Capacity = cmd.Capacity
	warehouse.RentalPrice = cmd.RentalPrice
	warehouse.Type = cmd.Type
	warehouse.IsAvailable = cmd.IsAvailable
	warehouse.UpdatedAt = time.Now()

	if err := h.repo.Update(warehouse); err != nil {
		return nil, fmt.Errorf("failed to update warehouse: %w", err)
	}

	return warehouse, nil
}
