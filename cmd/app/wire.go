//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/passage-analyzer/internal/bootstrap"
	"github.com/yanqian/passage-analyzer/internal/domain/analyzer"
	"github.com/yanqian/passage-analyzer/internal/infra/config"
	httpiface "github.com/yanqian/passage-analyzer/internal/interface/http"
	"github.com/yanqian/passage-analyzer/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		analyzerSet,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}

func initializeAnalyzer() (analyzer.Service, error) {
	wire.Build(
		config.Load,
		provideCLILogger,
		analyzerSet,
	)
	return nil, nil
}
