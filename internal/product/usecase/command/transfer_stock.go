package command

import (
	"context"
	"fmt"

	"github.com/YarenOpuz/smart-stock/internal/product/domain"
	"github.com/YarenOpuz/smart-stock/kafka"
	"github.com/YarenOpuz/smart-stock/pkg/logger"
)

// EventPublisher publishes stock movement events
type EventPublisher interface {
	PublishStockTransferred(ctx context.Context, event kafka.StockTransferredEvent) error
}

// TransferStockCommand moves stock of a product between two warehouses
type TransferStockCommand struct {
	ProductID         uint
	SourceWarehouseID uint
	TargetWarehouseID uint
	Quantity          int
}

// TransferStockHandler handles inter-warehouse stock transfers
type TransferStockHandler struct {
	repo   domain.ProductRepository
	events EventPublisher
}

// NewTransferStockHandler creates a new transfer stock handler.
// The publisher may be nil, in which case no events are emitted.
func NewTransferStockHandler(repo domain.ProductRepository, events EventPublisher) *TransferStockHandler {
	return &TransferStockHandler{repo: repo, events: events}
}

// Handle executes the transfer. The repository performs the decrement and
// the merge-or-create on the destination as one atomic unit; a failed
// precondition leaves both warehouses untouched.
func (h *TransferStockHandler) Handle(ctx context.Context, cmd TransferStockCommand) (*domain.Product, error) {
	if cmd.ProductID == 0 {
		return nil, fmt.Errorf("invalid product id")
	}
	if cmd.SourceWarehouseID == 0 || cmd.TargetWarehouseID == 0 {
		return nil, fmt.Errorf("source and target warehouses are required")
	}
	if cmd.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}

	result, err := h.repo.Transfer(ctx, cmd.ProductID, cmd.SourceWarehouseID, cmd.TargetWarehouseID, cmd.Quantity)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx).
		Uint("product_id", cmd.ProductID).
		Uint("source_warehouse_id", cmd.SourceWarehouseID).
		Uint("target_warehouse_id", cmd.TargetWarehouseID).
		Int("quantity", cmd.Quantity).
		Msg("Stock transferred")

	if h.events != nil {
		event := kafka.StockTransferredEvent{
			ProductID:         cmd.ProductID,
			SourceWarehouseID: cmd.SourceWarehouseID,
			TargetWarehouseID: cmd.TargetWarehouseID,
			Quantity:          cmd.Quantity,
			ResultProductID:   result.ID,
		}
		if err := h.events.PublishStockTransferred(ctx, event); err != nil {
			logger.Warn(ctx).Err(err).Uint("product_id", cmd.ProductID).Msg("Failed to publish stock transferred event")
		}
	}

	return result, nil
}
