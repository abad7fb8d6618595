//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/behaviourtree/internal/core/agent"
)

func InitializeManager(cfg LoggerConfig) *agent.Manager {
	wire.Build(ManagerSet)
	return nil
}
