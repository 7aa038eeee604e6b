package command

import (
	"fmt"
	"time"

	"github.com/YarenOpuz/smart-stock/internal/warehouse/domain"
)

// CreateWarehouseCommand represents the command to create a warehouse.
// OwnerID always comes from the authenticated caller, never from the body.
type CreateWarehouseCommand struct {
	Name        string
	Location    string
	Capacity    int
	RentalPrice float64
	Type        string
	OwnerID     uint
}

// CreateWarehouseHandler handles warehouse creation
type CreateWarehouseHandler struct {
	repo domain.WarehouseRepository
}

// NewCreateWarehouseHandler creates a new create warehouse handler
func NewCreateWarehouseHandler(repo domain.WarehouseRepository) *CreateWarehouseHandler {
	return &CreateWarehouseHandler{repo: repo}
}

// Handle executes the create warehouse command
func (h *CreateWarehouseHandler) Handle(cmd CreateWarehouseCommand) (*domain.Warehouse, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("warehouse name is required")
	}
	if cmd.Location == "" {
		return nil, fmt.Errorf("location is required")
	}
	if cmd.Capacity <= 0 {
		return nil, fmt.Errorf("capacity must be positive")
	}
	if cmd.RentalPrice < 0 {
		return nil, fmt.Errorf("rental price cannot be negative")
	}
	if cmd.OwnerID == 0 {
		return nil, fmt.Errorf("owner is required")
	}

	// Warehouse names are unique
	if existing, _ := h.repo.FindByName(cmd.Name); existing != nil {
		return nil, domain.ErrNameTaken
	}

	warehouse := &domain.Warehouse{
		Name:        cmd.Name,
		Location:    cmd.Location,
		Capacity:    cmd.Capacity,
		RentalPrice: cmd.RentalPrice,
		Type:        cmd.Type,
		IsAvailable: true,
		OwnerID:     cmd.OwnerID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := h.repo.Create(warehouse); err != nil {
		return nil, fmt.Errorf("failed to create warehouse: %w", err)
	}

	return warehouse, nil
}
