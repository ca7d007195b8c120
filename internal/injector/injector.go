//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"
	"github.com/zeusync/proboj/sdk/go/client"
)

func InitializeClient(cfg client.Config) *client.Client {
	wire.Build(ClientSet)
	return nil
}
