//go:build wireinject
// +build wireinject

package generator

import (
	"context"

	"github.com/google/wire"

	"github.com/tair/jewelkraft/internal/config"
	"github.com/tair/jewelkraft/internal/generator/delivery/http"
)

var ProviderSet = wire.NewSet(
	ProvideImageProvider,
	ProvideRedis,
	ProvideGenerateImagesHandler,
	ProvideRateLimiter,
	ProvideOptions,
	ProvideRegisterer,
)

// InitializeApp initializes the generator with all dependencies
func InitializeApp(ctx context.Context, cfg *config.Config) (*App, func(), error) {
	wire.Build(
		ProviderSet,
		http.NewGeneratorHandler,
		wire.Struct(new(App), "*"),
	)
	return nil, nil, nil
}
