package injector

import (
	"github.com/google/wire"
	"github.com/zeusync/proboj/internal/core/observability/log"
	"github.com/zeusync/proboj/sdk/go/client"
)

// ClientSet wires a stdio client and its logger from a client config.
var ClientSet = wire.NewSet(ProvideLogger, client.NewStdio)

// ProvideLogger builds the stderr logger described by cfg.Log.
func ProvideLogger(cfg client.Config) log.Log {
	return log.NewWithConfig(cfg.Log)
}
