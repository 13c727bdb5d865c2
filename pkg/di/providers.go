package di

import (
	"context"

	"github.com/myyapa/discover/pkg/di/config"
	discoverHttp "github.com/myyapa/discover/pkg/http"
	"github.com/myyapa/discover/pkg/http/http-router/controllers"

	"go.uber.org/zap"
)

func NewDiscoverAPIServer(ctx context.Context, _ *config.Config, log *zap.Logger,
	discoverService controllers.DiscoverService,
	sessionService controllers.SessionService) (*discoverHttp.Server, error) {

	api := discoverHttp.NewServer(log)

	apiService, err := api.Use(
		ctx, log, discoverService, sessionService,
	)
	if err != nil {
		return nil, err
	}

	return apiService, nil
}
