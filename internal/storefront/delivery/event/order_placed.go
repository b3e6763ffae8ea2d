// Package event adapts broker events to storefront commands.
package event

import (
	"context"

	"github.com/tair/jewelkraft/internal/storefront/usecase/command"
	"github.com/tair/jewelkraft/kafka"
)

// OrderPlacedHandler marks the products of every placed order as ordered
func OrderPlacedHandler(markOrdered *command.MarkOrderedHandler) kafka.EventHandler {
	return func(ctx context.Context, event kafka.OrderPlacedEvent) error {
		return markOrdered.Handle(ctx, command.MarkOrderedCommand{
			OrderID:    event.OrderID,
			ProductIDs: event.ProductIDs(),
		})
	}
}
