package promo

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/loyaltyhub/internal/config"
)

// Module exposes the promo resolver implementation to the fx graph.
var Module = fx.Provide(newResolver)

type resolverParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newResolver(p resolverParams) (Resolver, error) {
	if p.Config.PromoServiceAddress == "" {
		return NewStaticResolver(), nil
	}
	return NewHTTPClient(p.Config.PromoServiceAddress, p.Config.PromoLookupTimeout, p.Logger)
}
