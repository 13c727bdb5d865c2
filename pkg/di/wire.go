//go:build wireinject

//go:generate wire
package di

import (
	"github.com/myyapa/discover/pkg/di/config"
	shortcontext "github.com/myyapa/discover/pkg/di/context"
	discover_di "github.com/myyapa/discover/pkg/di/discover"
	kv_di "github.com/myyapa/discover/pkg/di/kv"
	logger_di "github.com/myyapa/discover/pkg/di/logger"
	discoverHttp "github.com/myyapa/discover/pkg/http"

	"github.com/google/wire"
)

var defaultSet = wire.NewSet(
	shortcontext.New,
	config.New,
	logger_di.New,
	kv_di.New,
	discover_di.NewSnapshot,
	discover_di.New,
	discover_di.NewSession,
)

var discoverSet = wire.NewSet(
	defaultSet,
	NewDiscoverAPIServer,
)

func InitializeDiscoverService() (*discoverHttp.Server, func(), error) {

	panic(wire.Build(discoverSet))
}
