package query

import (
	"fmt"

	"github.com/YarenOpuz/smart-stock/internal/warehouse/domain"
)

// ListWarehousesQuery represents the query to list warehouses
type ListWarehousesQuery struct {
	Limit  int
	Offset int
}

// ListWarehousesHandler handles list warehouses queries
type ListWarehousesHandler struct {
	repo domain.WarehouseRepository
}

// NewListWarehousesHandler creates a new list warehouses handler
func NewListWarehousesHandler(repo domain.WarehouseRepository) *ListWarehousesHandler {
	return &ListWarehousesHandler{repo: repo}
}

// Handle executes the list warehouses query
func (h *ListWarehousesHandler) Handle(query ListWarehousesQuery) ([]domain.Warehouse, error) {
	if query.Limit <= 0 {
		query.Limit = 100
	}

	warehouses, err := h.repo.FindAll(query.Limit, query.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list warehouses: %w", err)
	}

	return warehouses, nil
}
