//go:build wireinject
// +build wireinject

package orders

import (
	"github.com/google/wire"

	"github.com/tair/jewelkraft/internal/config"
	"github.com/tair/jewelkraft/internal/orders/delivery/http"
	"github.com/tair/jewelkraft/internal/orders/usecase/command"
	"github.com/tair/jewelkraft/internal/orders/usecase/query"
)

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideDatabase,
	ProvideOrderRepository,
)

var HandlerSet = wire.NewSet(
	ProvideEventPublisher,
	command.NewPlaceOrderHandler,
	query.NewGetOrderHandler,
	ProvideRegisterer,
	http.NewOrderHandler,
)

// InitializeApp initializes the orders service with all dependencies
func InitializeApp(cfg *config.Config) (*App, func(), error) {
	wire.Build(
		RepositorySet,
		HandlerSet,
		wire.Struct(new(App), "*"),
	)
	return nil, nil, nil
}
