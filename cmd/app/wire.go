//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/qa-service/internal/bootstrap"
	"github.com/yanqian/qa-service/internal/domain/qa"
	"github.com/yanqian/qa-service/internal/infra/config"
	httpiface "github.com/yanqian/qa-service/internal/interface/http"
	"github.com/yanqian/qa-service/pkg/logger"
)

func initializeApp() (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		provideQAConfig,
		provideRepository,
		qa.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}
