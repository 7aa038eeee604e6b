package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/YarenOpuz/smart-stock/internal/product/domain"
)

var tracer = otel.Tracer("product-repository")

// GormProductRepositoryWithTracing wraps GormProductRepository with tracing
type GormProductRepositoryWithTracing struct {
	*GormProductRepository
}

// NewGormProductRepositoryWithTracing creates a new repository with tracing
func NewGormProductRepositoryWithTracing(db *gorm.DB) *GormProductRepositoryWithTracing {
	return &GormProductRepositoryWithTracing{
		GormProductRepository: NewGormProductRepository(db),
	}
}

// Transfer with tracing
func (r *GormProductRepositoryWithTracing) Transfer(ctx context.Context, productID, sourceWarehouseID, targetWarehouseID uint, quantity int) (*domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.Transfer",
		trace.WithAttributes(
			attribute.Int("product.id", int(productID)),
			attribute.Int("warehouse.source_id", int(sourceWarehouseID)),
			attribute.Int("warehouse.target_id", int(targetWarehouseID)),
			attribute.Int("stock.quantity", quantity),
		),
	)
	defer span.End()

	result, err := r.GormProductRepository.Transfer(ctx, productID, sourceWarehouseID, targetWarehouseID, quantity)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("product.result_id", int(result.ID)))
	return result, nil
}

// CreateWithContext records a span around Create
func (r *GormProductRepositoryWithTracing) CreateWithContext(ctx context.Context, product *domain.Product) error {
	_, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("product.name", product.Name),
			attribute.Int("warehouse.id", int(product.WarehouseID)),
		),
	)
	defer span.End()

	if err := r.GormProductRepository.Create(product); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("product.id", int(product.ID)))
	return nil
}

// FindByIDWithContext records a span around FindByID
func (r *GormProductRepositoryWithTracing) FindByIDWithContext(ctx context.Context, id uint) (*domain.Product, error) {
	_, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(
			attribute.Int("product.id", int(id)),
		),
	)
	defer span.End()

	product, err := r.GormProductRepository.FindByID(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("product.name", product.Name))
	return product, nil
}
