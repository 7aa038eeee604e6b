package query

import (
	"fmt"

	userdomain "github.com/YarenOpuz/smart-stock/internal/user/domain"
	"github.com/YarenOpuz/smart-stock/internal/warehouse/domain"
)

// ListUserWarehousesQuery lists the warehouses owned by a user
type ListUserWarehousesQuery struct {
	UserID uint
}

// ListUserWarehousesHandler handles list user warehouses queries
type ListUserWarehousesHandler struct {
	repo  domain.WarehouseRepository
	users userdomain.UserRepository
}

// NewListUserWarehousesHandler creates a new list user warehouses handler
func NewListUserWarehousesHandler(repo domain.WarehouseRepository, users userdomain.UserRepository) *ListUserWarehousesHandler {
	return &ListUserWarehousesHandler{repo: repo, users: users}
}

// Handle executes the query; unknown users are an error, users without
// warehouses get an empty list
func (h *ListUserWarehousesHandler) Handle(query ListUserWarehousesQuery) ([]domain.Warehouse, error) {
	if query.UserID == 0 {
		return nil, fmt.Errorf("invalid user id")
	}

	if _, err := h.users.FindByID(query.UserID); err != nil {
		return nil, userdomain.ErrUserNotFound
	}

	warehouses, err := h.repo.FindByOwner(query.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list warehouses for user %d: %w", query.UserID, err)
	}

	return warehouses, nil
}
