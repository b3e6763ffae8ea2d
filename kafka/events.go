package kafka

import "time"

// OrderItem is one purchased product inside an order event
type OrderItem struct {
	ProductID string `json:"product_id"`
	DesignID  string `json:"design_id,omitempty"`
	Quantity  int    `json:"quantity"`
}

// OrderPlacedEvent is emitted once the order service has stored an order
type OrderPlacedEvent struct {
	EventID   string      `json:"event_id"`
	EventType string      `json:"event_type"`
	OrderID   string      `json:"order_id"`
	Items     []OrderItem `json:"items"`
	Amount    float64     `json:"amount"`
	Currency  string      `json:"currency"`
	Timestamp time.Time   `json:"timestamp"`
}

// ProductIDs lists the products in the order
func (e OrderPlacedEvent) ProductIDs() []string {
	ids := make([]string, 0, len(e.Items))
	for _, item := range e.Items {
		ids = append(ids, item.ProductID)
	}
	return ids
}

// Event types
const (
	EventTypeOrderPlaced = "order.placed"
)

// Kafka topics
const (
	TopicOrderPlaced = "order-placed"
)
