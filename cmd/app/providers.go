package main

import (
	"log/slog"
	"os"

	"github.com/google/wire"

	"github.com/yanqian/passage-analyzer/internal/domain/analyzer"
	"github.com/yanqian/passage-analyzer/internal/domain/passage"
	"github.com/yanqian/passage-analyzer/internal/infra/config"
	"github.com/yanqian/passage-analyzer/internal/infra/llm/groq"
	"github.com/yanqian/passage-analyzer/internal/infra/tokenizer"
	"github.com/yanqian/passage-analyzer/pkg/logger"
)

var analyzerSet = wire.NewSet(
	provideAnalyzerConfig,
	provideGroqClient,
	provideTokenEstimator,
	analyzer.NewService,
	wire.Bind(new(analyzer.ChatClient), new(*groq.Client)),
	wire.Bind(new(passage.TokenCounter), new(*tokenizer.Estimator)),
)

func provideAnalyzerConfig(cfg *config.Config) analyzer.Config {
	return analyzer.Config{
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
	}
}

func provideGroqClient(cfg *config.Config) (*groq.Client, error) {
	return groq.NewClient(groq.Options{
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
		Timeout: cfg.LLM.RequestTimeout,
	})
}

func provideTokenEstimator(cfg *config.Config, log *slog.Logger) *tokenizer.Estimator {
	return tokenizer.NewEstimator(cfg.LLM.TokenEncoding, log)
}

// provideCLILogger keeps logs on stderr so stdout carries only the rendered result.
func provideCLILogger() *slog.Logger {
	return logger.NewWithWriter(os.Stderr, os.Getenv("LOG_LEVEL"))
}
