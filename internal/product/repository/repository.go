package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/YarenOpuz/smart-stock/internal/product/domain"
	whdomain "github.com/YarenOpuz/smart-stock/internal/warehouse/domain"
)

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Product{})
}

func (r *GormProductRepository) Create(product *domain.Product) error {
	return r.db.Create(product).Error
}

func (r *GormProductRepository) FindByID(id uint) (*domain.Product, error) {
	var product domain.Product
	err := r.db.First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) FindAll(limit, offset int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Limit(limit).Offset(offset).Find(&products).Error
	return products, err
}

func (r *GormProductRepository) FindByWarehouse(warehouseID uint, limit, offset int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Where("warehouse_id = ?", warehouseID).Limit(limit).Offset(offset).Find(&products).Error
	return products, err
}

func (r *GormProductRepository) Update(product *domain.Product) error {
	return r.db.Save(product).Error
}

func (r *GormProductRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Product{}, id).Error
}

func (r *GormProductRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Product{}).Count(&count).Error
	return count, err
}

// Transfer moves stock between warehouses in a single transaction.
// The source line is locked for the duration of the transaction so that
// concurrent transfers against the same line serialize; the decrement is
// additionally guarded by a quantity check so the non-negative invariant
// holds even on stores that ignore row locks.
func (r *GormProductRepository) Transfer(ctx context.Context, productID, sourceWarehouseID, targetWarehouseID uint, quantity int) (*domain.Product, error) {
	var result domain.Product

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The product must exist in the stated source warehouse
		var source domain.Product
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND warehouse_id = ?", productID, sourceWarehouseID).
			First(&source).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("product %d not in source warehouse %d: %w", productID, sourceWarehouseID, domain.ErrProductNotFound)
			}
			return err
		}

		if source.Quantity < quantity {
			return fmt.Errorf("have %d, need %d: %w", source.Quantity, quantity, domain.ErrInsufficientStock)
		}

		// The target warehouse must exist
		var target whdomain.Warehouse
		if err := tx.First(&target, targetWarehouseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("target warehouse %d: %w", targetWarehouseID, whdomain.ErrWarehouseNotFound)
			}
			return err
		}

		// Decrement the source line; a zero-quantity line is kept, not deleted
		res := tx.Model(&domain.Product{}).
			Where("id = ? AND quantity >= ?", source.ID, quantity).
			Update("quantity", gorm.Expr("quantity - ?", quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("source line changed concurrently: %w", domain.ErrInsufficientStock)
		}

		// Merge into an existing line in the target warehouse keyed by
		// (warehouse, name, description), or create a new one
		var dest domain.Product
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("warehouse_id = ? AND name = ? AND description = ?", targetWarehouseID, source.Name, source.Description).
			First(&dest).Error
		switch {
		case err == nil:
			if err := tx.Model(&dest).Update("quantity", gorm.Expr("quantity + ?", quantity)).Error; err != nil {
				return err
			}
			if err := tx.First(&dest, dest.ID).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			dest = domain.Product{
				Name:        source.Name,
				Description: source.Description,
				Quantity:    quantity,
				IsActive:    true,
				WarehouseID: targetWarehouseID,
			}
			if err := tx.Create(&dest).Error; err != nil {
				return err
			}
		default:
			return err
		}

		result = dest
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}
