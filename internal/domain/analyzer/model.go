package analyzer

import (
	"time"

	"github.com/yanqian/passage-analyzer/internal/domain/passage"
	"github.com/yanqian/passage-analyzer/pkg/metrics"
)

// Config configures the provider call.
type Config struct {
	Model       string
	Temperature float32
	MaxTokens   int
}

// Result is the structured pair parsed out of the provider reply.
type Result struct {
	Emotion string `json:"emotion"`
	Summary string `json:"summary"`
}

// Response is one completed analysis. Result is nil when the reply did not
// follow the Emotion/Summary format; Raw is always populated.
type Response struct {
	ID         string              `json:"id"`
	WordCount  int                 `json:"wordCount"`
	Raw        string              `json:"raw"`
	Result     *Result             `json:"result,omitempty"`
	Model      string              `json:"model,omitempty"`
	TokenUsage *metrics.TokenUsage `json:"tokenUsage,omitempty"`
	DurationMs int64               `json:"durationMs"`
	AnalyzedAt time.Time           `json:"analyzedAt"`
}

// Structured reports whether emotion and summary were both extracted.
func (r Response) Structured() bool {
	return r.Result != nil
}

// PassageInfo exposes the passage with its local statistics.
type PassageInfo struct {
	Text string `json:"text"`
	passage.Stats
}
