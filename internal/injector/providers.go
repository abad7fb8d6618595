package injector

import (
	"io"
	"os"

	"github.com/google/wire"

	"github.com/zeusync/behaviourtree/internal/core/agent"
	"github.com/zeusync/behaviourtree/internal/core/events/bus"
	"github.com/zeusync/behaviourtree/internal/core/observability/log"
)

// LoggerConfig selects where and how the process logs.
type LoggerConfig struct {
	Level    log.Level
	Encoding string
	Writer   io.Writer
}

// ManagerSet provides an agent manager with a shared bus and logger.
var ManagerSet = wire.NewSet(ProvideLogger, bus.New, agent.NewManager)

func ProvideLogger(cfg LoggerConfig) log.Log {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	return log.NewWithWriter(w, cfg.Level, cfg.Encoding)
}
