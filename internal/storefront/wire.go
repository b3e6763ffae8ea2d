//go:build wireinject
// +build wireinject

package storefront

import (
	"context"

	"github.com/google/wire"

	"github.com/tair/jewelkraft/internal/config"
	"github.com/tair/jewelkraft/internal/storefront/client"
	"github.com/tair/jewelkraft/internal/storefront/delivery/http"
	"github.com/tair/jewelkraft/internal/storefront/domain"
	"github.com/tair/jewelkraft/internal/storefront/repository"
	"github.com/tair/jewelkraft/internal/storefront/usecase/command"
	"github.com/tair/jewelkraft/internal/storefront/usecase/query"
)

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideSnapshotBackend,
	ProvideStore,
	wire.Bind(new(domain.Store), new(*repository.MemoryStore)),
)

var ClientSet = wire.NewSet(
	ProvideGeneratorClient,
	ProvideOrdersClient,
	wire.Bind(new(command.ImageGenerator), new(*client.GeneratorClient)),
	wire.Bind(new(command.OrderPlacer), new(*client.OrdersClient)),
)

var CommandHandlerSet = wire.NewSet(
	command.NewGenerateDesignHandler,
	command.NewSaveDesignHandler,
	command.NewDeleteDesignHandler,
	command.NewConfigureProductHandler,
	command.NewDeleteProductHandler,
	command.NewAddToCartHandler,
	command.NewRemoveFromCartHandler,
	command.NewUpdateCartQuantityHandler,
	command.NewClearCartHandler,
	command.NewCheckoutHandler,
	command.NewMarkOrderedHandler,
	wire.Struct(new(http.Commands), "*"),
)

var QueryHandlerSet = wire.NewSet(
	query.NewListDesignsHandler,
	query.NewGetDesignHandler,
	query.NewListProductsHandler,
	query.NewGetProductHandler,
	query.NewGetCartHandler,
	query.NewCartCountHandler,
	query.NewGetOptionsHandler,
	wire.Struct(new(http.Queries), "*"),
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	ClientSet,
	CommandHandlerSet,
	QueryHandlerSet,
	ProvideOptions,
	ProvidePricing,
	ProvideRegisterer,
)

// InitializeApp initializes the storefront with all dependencies
func InitializeApp(ctx context.Context, cfg *config.Config) (*App, func(), error) {
	wire.Build(
		AllHandlersSet,
		http.NewStorefrontHandler,
		wire.Struct(new(App), "*"),
	)
	return nil, nil, nil
}
