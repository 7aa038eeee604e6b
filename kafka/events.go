package kafka

import "time"

// Event types
const (
	EventTypeUserRegistered   = "user.registered"
	EventTypeStockTransferred = "stock.transferred"
)

// Kafka topics
const (
	TopicUserRegistered   = "user-registered"
	TopicStockTransferred = "stock-transferred"
)

// UserRegisteredEvent is emitted after a successful registration
type UserRegisteredEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	UserID    uint      `json:"user_id"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
}

// StockTransferredEvent is emitted after a committed inter-warehouse transfer
type StockTransferredEvent struct {
	EventID           string    `json:"event_id"`
	EventType         string    `json:"event_type"`
	ProductID         uint      `json:"product_id"`
	SourceWarehouseID uint      `json:"source_warehouse_id"`
	TargetWarehouseID uint      `json:"target_warehouse_id"`
	Quantity          int       `json:"quantity"`
	ResultProductID   uint      `json:"result_product_id"`
	Timestamp         time.Time `json:"timestamp"`
}
