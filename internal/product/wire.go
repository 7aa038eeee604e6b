//go:build wireinject
// +build wireinject

package product

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/YarenOpuz/smart-stock/internal/product/cache"
	"github.com/YarenOpuz/smart-stock/internal/product/delivery/http"
	"github.com/YarenOpuz/smart-stock/internal/product/domain"
	"github.com/YarenOpuz/smart-stock/internal/product/repository"
	"github.com/YarenOpuz/smart-stock/internal/product/usecase/command"
	"github.com/YarenOpuz/smart-stock/internal/product/usecase/query"
	whdomain "github.com/YarenOpuz/smart-stock/internal/warehouse/domain"
	whrepo "github.com/YarenOpuz/smart-stock/internal/warehouse/repository"
)

// ProvideProductRepository provides the product repository with tracing
func ProvideProductRepository(db *gorm.DB) domain.ProductRepository {
	return repository.NewGormProductRepositoryWithTracing(db)
}

// ProvideWarehouseRepository provides the warehouse repository used for FK checks
func ProvideWarehouseRepository(db *gorm.DB) whdomain.WarehouseRepository {
	return whrepo.NewGormWarehouseRepository(db)
}

var HandlerSet = wire.NewSet(
	ProvideProductRepository,
	ProvideWarehouseRepository,
	command.NewCreateProductHandler,
	command.NewUpdateProductHandler,
	command.NewDeleteProductHandler,
	command.NewTransferStockHandler,
	query.NewGetProductHandler,
	query.NewListProductsHandler,
)

// InitializeProductHandler initializes the HTTP handler with all dependencies
func InitializeProductHandler(db *gorm.DB, events command.EventPublisher, productCache *cache.ProductCache) (*http.ProductHandler, error) {
	wire.Build(
		HandlerSet,
		http.NewProductHandlerWithDI,
	)
	return nil, nil
}
