package repository

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/YarenOpuz/smart-stock/internal/product/domain"
	whdomain "github.com/YarenOpuz/smart-stock/internal/warehouse/domain"
)

func initTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to connect to in-memory db")

	require.NoError(t, db.AutoMigrate(&whdomain.Warehouse{}, &domain.Product{}))

	return db
}

func seedWarehouse(t *testing.T, db *gorm.DB, name string) *whdomain.Warehouse {
	t.Helper()

	warehouse := &whdomain.Warehouse{
		Name:        name,
		Location:    "Istanbul",
		Capacity:    1000,
		IsAvailable: true,
		OwnerID:     1,
	}
	require.NoError(t, db.Create(warehouse).Error)
	return warehouse
}

func seedProduct(t *testing.T, db *gorm.DB, warehouseID uint, name string, quantity int) *domain.Product {
	t.Helper()

	product := &domain.Product{
		Name:        name,
		Description: "pallet of " + name,
		Quantity:    quantity,
		IsActive:    true,
		WarehouseID: warehouseID,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func TestTransferCreatesNewLineInTarget(t *testing.T) {
	db := initTestDB(t)
	repo := NewGormProductRepository(db)

	source := seedWarehouse(t, db, "source")
	target := seedWarehouse(t, db, "target")
	product := seedProduct(t, db, source.ID, "bolts", 50)

	dest, err := repo.Transfer(context.Background(), product.ID, source.ID, target.ID, 20)
	require.NoError(t, err)

	require.NotEqual(t, product.ID, dest.ID)
	require.Equal(t, target.ID, dest.WarehouseID)
	require.Equal(t, "bolts", dest.Name)
	require.Equal(t, product.Description, dest.Description)
	require.Equal(t, 20, dest.Quantity)
	require.True(t, dest.IsActive)

	updated, err := repo.FindByID(product.ID)
	require.NoError(t, err)
	require.Equal(t, 30, updated.Quantity)
}

func TestTransferMergesIntoExistingLine(t *testing.T) {
	db := initTestDB(t)
	repo := NewGormProductRepository(db)

	source := seedWarehouse(t, db, "source")
	target := seedWarehouse(t, db, "target")
	product := seedProduct(t, db, source.ID, "bolts", 50)
	existing := seedProduct(t, db, target.ID, "bolts", 5)

	dest, err := repo.Transfer(context.Background(), product.ID, source.ID, target.ID, 20)
	require.NoError(t, err)

	require.Equal(t, existing.ID, dest.ID, "stock must merge into the matching line")
	require.Equal(t, 25, dest.Quantity)

	updated, err := repo.FindByID(product.ID)
	require.NoError(t, err)
	require.Equal(t, 30, updated.Quantity)

	// Total stock across both warehouses is conserved
	var total int64
	require.NoError(t, db.Model(&domain.Product{}).Select("COALESCE(SUM(quantity), 0)").Scan(&total).Error)
	require.EqualValues(t, 55, total)
}

func TestTransferDifferentDescriptionCreatesNewLine(t *testing.T) {
	db := initTestDB(t)
	repo := NewGormProductRepository(db)

	source := seedWarehouse(t, db, "source")
	target := seedWarehouse(t, db, "target")
	product := seedProduct(t, db, source.ID, "bolts", 50)

	other := &domain.Product{
		Name:        "bolts",
		Description: "a different batch",
		Quantity:    5,
		IsActive:    true,
		WarehouseID: target.ID,
	}
	require.NoError(t, db.Create(other).Error)

	dest, err := repo.Transfer(context.Background(), product.ID, source.ID, target.ID, 10)
	require.NoError(t, err)

	require.NotEqual(t, other.ID, dest.ID, "lines with different descriptions must not merge")
	require.Equal(t, 10, dest.Quantity)
}

func TestTransferInsufficientStock(t *testing.T) {
	db := initTestDB(t)
	repo := NewGormProductRepository(db)

	source := seedWarehouse(t, db, "source")
	target := seedWarehouse(t, db, "target")
	product := seedProduct(t, db, source.ID, "bolts", 10)

	_, err := repo.Transfer(context.Background(), product.ID, source.ID, target.ID, 11)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Nothing changed
	updated, err := repo.FindByID(product.ID)
	require.NoError(t, err)
	require.Equal(t, 10, updated.Quantity)

	var count int64
	require.NoError(t, db.Model(&domain.Product{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestTransferProductNotInSourceWarehouse(t *testing.T) {
	db := initTestDB(t)
	repo := NewGormProductRepository(db)

	source := seedWarehouse(t, db, "source")
	target := seedWarehouse(t, db, "target")
	product := seedProduct(t, db, target.ID, "bolts", 10)

	_, err := repo.Transfer(context.Background(), product.ID, source.ID, target.ID, 5)
	require.ErrorIs(t, err, domain.ErrProductNotFound)

	updated, err := repo.FindByID(product.ID)
	require.NoError(t, err)
	require.Equal(t, 10, updated.Quantity)
}

func TestTransferUnknownProduct(t *testing.T) {
	db := initTestDB(t)
	repo := NewGormProductRepository(db)

	source := seedWarehouse(t, db, "source")
	target := seedWarehouse(t, db, "target")

	_, err := repo.Transfer(context.Background(), 999, source.ID, target.ID, 5)
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestTransferTargetWarehouseMissing(t *testing.T) {
	db := initTestDB(t)
	repo := NewGormProductRepository(db)

	source := seedWarehouse(t, db, "source")
	product := seedProduct(t, db, source.ID, "bolts", 10)

	_, err := repo.Transfer(context.Background(), product.ID, source.ID, 999, 5)
	require.ErrorIs(t, err, whdomain.ErrWarehouseNotFound)

	// Aborted transaction leaves the source untouched
	updated, err := repo.FindByID(product.ID)
	require.NoError(t, err)
	require.Equal(t, 10, updated.Quantity)
}

func TestTransferEntireQuantityKeepsZeroLine(t *testing.T) {
	db := initTestDB(t)
	repo := NewGormProductRepository(db)

	source := seedWarehouse(t, db, "source")
	target := seedWarehouse(t, db, "target")
	product := seedProduct(t, db, source.ID, "bolts", 10)

	dest, err := repo.Transfer(context.Background(), product.ID, source.ID, target.ID, 10)
	require.NoError(t, err)
	require.Equal(t, 10, dest.Quantity)

	// The emptied line stays behind with zero quantity
	updated, err := repo.FindByID(product.ID)
	require.NoError(t, err)
	require.Equal(t, 0, updated.Quantity)
	require.False(t, updated.InStock())
}

func TestTransferSequentialAccumulation(t *testing.T) {
	db := initTestDB(t)
	repo := NewGormProductRepository(db)

	source := seedWarehouse(t, db, "source")
	target := seedWarehouse(t, db, "target")
	product := seedProduct(t, db, source.ID, "bolts", 30)

	var destID uint
	for i := 0; i < 3; i++ {
		dest, err := repo.Transfer(context.Background(), product.ID, source.ID, target.ID, 10)
		require.NoError(t, err)
		if destID == 0 {
			destID = dest.ID
		}
		require.Equal(t, destID, dest.ID, "repeated transfers must land on the same line")
	}

	dest, err := repo.FindByID(destID)
	require.NoError(t, err)
	require.Equal(t, 30, dest.Quantity)

	updated, err := repo.FindByID(product.ID)
	require.NoError(t, err)
	require.Equal(t, 0, updated.Quantity)
}

func TestTransferSameWarehouseIsNoOp(t *testing.T) {
	db := initTestDB(t)
	repo := NewGormProductRepository(db)

	source := seedWarehouse(t, db, "source")
	product := seedProduct(t, db, source.ID, "bolts", 10)

	dest, err := repo.Transfer(context.Background(), product.ID, source.ID, source.ID, 4)
	require.NoError(t, err)

	require.Equal(t, product.ID, dest.ID)
	require.Equal(t, 10, dest.Quantity, "stock must be conserved on a self transfer")
}
