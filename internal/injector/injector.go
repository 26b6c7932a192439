//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/keelengine/keel/internal/core/config"
	"github.com/keelengine/keel/internal/core/observability/log"
)

func ProvideLogger() *log.Logger {
	wire.Build(log.Provide)
	return log.New(log.LevelDebug)
}

func ProvideConfig() *config.Config {
	wire.Build(config.Default)
	return config.Default()
}
