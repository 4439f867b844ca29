package analyzer

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/yanqian/passage-analyzer/internal/domain/passage"
	"github.com/yanqian/passage-analyzer/internal/infra/llm/groq"
	apperrors "github.com/yanqian/passage-analyzer/pkg/errors"
	"github.com/yanqian/passage-analyzer/pkg/metrics"
	"github.com/yanqian/passage-analyzer/pkg/util"
)

// Service exposes passage analysis.
type Service interface {
	Passage() PassageInfo
	Analyze(ctx context.Context) (Response, error)
}

// ChatClient is the provider contract the analyzer needs.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req groq.ChatCompletionRequest) (groq.ChatCompletionResponse, error)
}

type service struct {
	cfg    Config
	client ChatClient
	tokens passage.TokenCounter
	logger *slog.Logger
	now    util.Clock

	// slot admits one provider call at a time.
	slot chan struct{}
}

// NewService is a wire provider for the analyzer domain.
func NewService(cfg Config, client ChatClient, tokens passage.TokenCounter, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		client: client,
		tokens: tokens,
		logger: logger.With("component", "analyzer.service"),
		now:    util.NowUTC,
		slot:   make(chan struct{}, 1),
	}
}

func (s *service) Passage() PassageInfo {
	return PassageInfo{Text: passage.Text, Stats: passage.Describe(passage.Text, s.tokens)}
}

func (s *service) Analyze(ctx context.Context) (Response, error) {
	start := s.now()
	words := passage.WordCount(passage.Text)
	prompt := BuildPrompt(passage.Text)

	if err := s.acquire(ctx); err != nil {
		return Response{}, err
	}
	defer func() { <-s.slot }()

	resp, err := s.client.CreateChatCompletion(ctx, groq.ChatCompletionRequest{
		Model:       s.cfg.Model,
		Messages:    []groq.Message{{Role: groq.RoleUser, Content: prompt}},
		Temperature: s.cfg.Temperature,
		MaxTokens:   s.cfg.MaxTokens,
	})
	if err != nil {
		s.logger.Error("provider request failed", "model", s.cfg.Model, "error", err)
		return Response{}, apperrors.Wrap(apperrors.CodeLLM, "provider request failed", err)
	}
	if len(resp.Choices) == 0 {
		return Response{}, apperrors.Wrap(apperrors.CodeLLM, "provider returned no choices", nil)
	}

	raw := strings.TrimSpace(resp.Choices[0].Message.Content)
	s.logger.Debug("provider response received", "content", raw)

	out := Response{
		ID:         uuid.NewString(),
		WordCount:  words,
		Raw:        raw,
		Model:      resp.Model,
		TokenUsage: metrics.NewTokenUsage(resp.Usage.PromptTokens, resp.Usage.CompletionTokens, resp.Usage.TotalTokens),
		DurationMs: util.MillisSince(s.now, start),
		AnalyzedAt: start,
	}
	if result, ok := Parse(raw); ok {
		out.Result = &result
	} else {
		s.logger.Warn("provider reply did not match the emotion/summary format", "id", out.ID)
	}

	s.logger.Info("analysis completed", "id", out.ID, "structured", out.Structured(), "duration_ms", out.DurationMs)
	return out, nil
}

// acquire takes the slot right away when it is free, so only a caller that
// actually waits behind another analysis is reported as busy.
func (s *service) acquire(ctx context.Context) error {
	select {
	case s.slot <- struct{}{}:
		return nil
	default:
	}
	select {
	case s.slot <- struct{}{}:
		return nil
	case <-ctx.Done():
		return apperrors.Wrap(apperrors.CodeBusy, "another analysis is still running", ctx.Err())
	}
}
