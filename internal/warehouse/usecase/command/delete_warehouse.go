package command

import (
	"fmt"

	"github.com/YarenOpuz/smart-stock/internal/warehouse/domain"
)

// DeleteWarehouseCommand represents the command to delete a warehouse
type DeleteWarehouseCommand struct {
	ID uint
}

// DeleteWarehouseHandler handles warehouse deletion
type DeleteWarehouseHandler struct {
	repo domain.WarehouseRepository
}

// NewDeleteWarehouseHandler creates a new delete warehouse handler
func NewDeleteWarehouseHandler(repo domain.WarehouseRepository) *DeleteWarehouseHandler {
	return &DeleteWarehouseHandler{repo: repo}
}

// Handle executes the delete warehouse command
func (h *DeleteWarehouseHandler) Handle(cmd DeleteWarehouseCommand) error {
	if cmd.ID == 0 {
		return fmt.Errorf("invalid warehouse id")
	}

	if _, err := h.repo.FindByID(cmd.ID); err != nil {
		return domain.ErrWarehouseNotFound
	}

	if err := h.repo.Delete(cmd.ID); err != nil {
		return fmt.Errorf("failed to delete warehouse: %w", err)
	}

	return nil
}
