package session

import (
	"go.uber.org/fx"

	"github.com/polkiloo/loyaltyhub/internal/config"
)

// Module provides the session token strategy via fx.
var Module = fx.Provide(newStrategy)

type strategyParams struct {
	fx.In

	Config *config.Config
}

func newStrategy(p strategyParams) Strategy {
	return NewHMACStrategy(p.Config.SessionSecret, Options{})
}
