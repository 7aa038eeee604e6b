//go:build wireinject
// +build wireinject

package warehouse

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	userdomain "github.com/YarenOpuz/smart-stock/internal/user/domain"
	userrepo "github.com/YarenOpuz/smart-stock/internal/user/repository"
	"github.com/YarenOpuz/smart-stock/internal/warehouse/delivery/http"
	"github.com/YarenOpuz/smart-stock/internal/warehouse/domain"
	"github.com/YarenOpuz/smart-stock/internal/warehouse/repository"
	"github.com/YarenOpuz/smart-stock/internal/warehouse/usecase/command"
	"github.com/YarenOpuz/smart-stock/internal/warehouse/usecase/query"
)

// ProvideWarehouseRepository provides the warehouse repository
func ProvideWarehouseRepository(db *gorm.DB) domain.WarehouseRepository {
	return repository.NewGormWarehouseRepository(db)
}

// ProvideUserRepository provides the user repository used for owner lookups
func ProvideUserRepository(db *gorm.DB) userdomain.UserRepository {
	return userrepo.NewGormUserRepository(db)
}

var HandlerSet = wire.NewSet(
	ProvideWarehouseRepository,
	ProvideUserRepository,
	command.NewCreateWarehouseHandler,
	command.NewUpdateWarehouseHandler,
	command.NewDeleteWarehouseHandler,
	query.NewGetWarehouseHandler,
	query.NewListWarehousesHandler,
	query.NewListUserWarehousesHandler,
)

// InitializeWarehouseHandler initializes the HTTP handler with all dependencies
func InitializeWarehouseHandler(db *gorm.DB) (*http.WarehouseHandler, error) {
	wire.Build(
		HandlerSet,
		http.NewWarehouseHandlerWithDI,
	)
	return nil, nil
}
