package command

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/YarenOpuz/smart-stock/internal/product/domain"
	"github.com/YarenOpuz/smart-stock/internal/product/repository"
	whdomain "github.com/YarenOpuz/smart-stock/internal/warehouse/domain"
	"github.com/YarenOpuz/smart-stock/kafka"
)

type capturingPublisher struct {
	events []kafka.StockTransferredEvent
	fail   bool
}

func (p *capturingPublisher) PublishStockTransferred(_ context.Context, event kafka.StockTransferredEvent) error {
	if p.fail {
		return errors.New("broker unavailable")
	}
	p.events = append(p.events, event)
	return nil
}

func setupTransfer(t *testing.T) (*gorm.DB, domain.ProductRepository) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&whdomain.Warehouse{}, &domain.Product{}))

	return db, repository.NewGormProductRepository(db)
}

func TestTransferStockValidation(t *testing.T) {
	_, repo := setupTransfer(t)
	handler := NewTransferStockHandler(repo, nil)

	cases := []struct {
		name string
		cmd  TransferStockCommand
	}{
		{"missing product", TransferStockCommand{SourceWarehouseID: 1, TargetWarehouseID: 2, Quantity: 1}},
		{"missing source", TransferStockCommand{ProductID: 1, TargetWarehouseID: 2, Quantity: 1}},
		{"missing target", TransferStockCommand{ProductID: 1, SourceWarehouseID: 1, Quantity: 1}},
		{"zero quantity", TransferStockCommand{ProductID: 1, SourceWarehouseID: 1, TargetWarehouseID: 2}},
		{"negative quantity", TransferStockCommand{ProductID: 1, SourceWarehouseID: 1, TargetWarehouseID: 2, Quantity: -5}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := handler.Handle(context.Background(), tc.cmd)
			require.Error(t, err)
		})
	}
}

func TestTransferStockPublishesEvent(t *testing.T) {
	db, repo := setupTransfer(t)

	source := &whdomain.Warehouse{Name: "a", Location: "x", Capacity: 10, OwnerID: 1}
	target := &whdomain.Warehouse{Name: "b", Location: "y", Capacity: 10, OwnerID: 1}
	require.NoError(t, db.Create(source).Error)
	require.NoError(t, db.Create(target).Error)

	product := &domain.Product{Name: "bolts", Quantity: 8, IsActive: true, WarehouseID: source.ID}
	require.NoError(t, db.Create(product).Error)

	publisher := &capturingPublisher{}
	handler := NewTransferStockHandler(repo, publisher)

	result, err := handler.Handle(context.Background(), TransferStockCommand{
		ProductID:         product.ID,
		SourceWarehouseID: source.ID,
		TargetWarehouseID: target.ID,
		Quantity:          3,
	})
	require.NoError(t, err)
	require.Equal(t, 3, result.Quantity)

	require.Len(t, publisher.events, 1)
	event := publisher.events[0]
	require.Equal(t, product.ID, event.ProductID)
	require.Equal(t, source.ID, event.SourceWarehouseID)
	require.Equal(t, target.ID, event.TargetWarehouseID)
	require.Equal(t, 3, event.Quantity)
	require.Equal(t, result.ID, event.ResultProductID)
}

func TestTransferStockPublisherFailureDoesNotFailTransfer(t *testing.T) {
	db, repo := setupTransfer(t)

	source := &whdomain.Warehouse{Name: "a", Location: "x", Capacity: 10, OwnerID: 1}
	target := &whdomain.Warehouse{Name: "b", Location: "y", Capacity: 10, OwnerID: 1}
	require.NoError(t, db.Create(source).Error)
	require.NoError(t, db.Create(target).Error)

	product := &domain.Product{Name: "bolts", Quantity: 8, IsActive: true, WarehouseID: source.ID}
	require.NoError(t, db.Create(product).Error)

	handler := NewTransferStockHandler(repo, &capturingPublisher{fail: true})

	result, err := handler.Handle(context.Background(), TransferStockCommand{
		ProductID:         product.ID,
		SourceWarehouseID: source.ID,
		TargetWarehouseID: target.ID,
		Quantity:          3,
	})
	require.NoError(t, err, "a broker outage must not fail the transfer")
	require.Equal(t, 3, result.Quantity)
}

func TestTransferStockInsufficientPassesThrough(t *testing.T) {
	db, repo := setupTransfer(t)

	source := &whdomain.Warehouse{Name: "a", Location: "x", Capacity: 10, OwnerID: 1}
	target := &whdomain.Warehouse{Name: "b", Location: "y", Capacity: 10, OwnerID: 1}
	require.NoError(t, db.Create(source).Error)
	require.NoError(t, db.Create(target).Error)

	product := &domain.Product{Name: "bolts", Quantity: 2, IsActive: true, WarehouseID: source.ID}
	require.NoError(t, db.Create(product).Error)

	publisher := &capturingPublisher{}
	handler := NewTransferStockHandler(repo, publisher)

	_, err := handler.Handle(context.Background(), TransferStockCommand{
		ProductID:         product.ID,
		SourceWarehouseID: source.ID,
		TargetWarehouseID: target.ID,
		Quantity:          5,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	require.Empty(t, publisher.events, "no event on a failed transfer")
}
