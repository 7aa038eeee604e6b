package query

import (
	"fmt"

	"github.com/YarenOpuz/smart-stock/internal/warehouse/domain"
)

// GetWarehouseQuery represents the query to get a warehouse by ID
type GetWarehouseQuery struct {
	ID uint
}

// GetWarehouseHandler handles get warehouse queries
type GetWarehouseHandler struct {
	repo domain.WarehouseRepository
}

// NewGetWarehouseHandler creates a new get warehouse handler
func NewGetWarehouseHandler(repo domain.WarehouseRepository) *GetWarehouseHandler {
	return &GetWarehouseHandler{repo: repo}
}

// Handle executes the get warehouse query
func (h *GetWarehouseHandler) Handle(query GetWarehouseQuery) (*domain.Warehouse, error) {
	if query.ID == 0 {
		return nil, fmt.Errorf("invalid warehouse id")
	}

	warehouse, err := h.repo.FindByID(query.ID)
	if err != nil {
		return nil, domain.ErrWarehouseNotFound
	}

	return warehouse, nil
}
