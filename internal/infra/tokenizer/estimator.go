package tokenizer

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

const defaultEncoding = "cl100k_base"

type encoder interface {
	Encode(text string, allowedSpecial []string, disallowedSpecial []string) []int
}

type loaderFunc func(encoding string) (encoder, error)

// Estimator approximates prompt token counts with a tiktoken BPE encoding.
// The hosted model uses its own tokenizer, so counts are an estimate only.
type Estimator struct {
	encoding string
	logger   *slog.Logger
	load     loaderFunc

	once sync.Once
	enc  encoder
}

// NewEstimator returns an estimator that loads its encoding on first use.
func NewEstimator(encoding string, logger *slog.Logger) *Estimator {
	if strings.TrimSpace(encoding) == "" {
		encoding = defaultEncoding
	}
	return &Estimator{
		encoding: encoding,
		logger:   logger.With("component", "tokenizer.estimator"),
		load:     loadTiktoken,
	}
}

func loadTiktoken(encoding string) (encoder, error) {
	return tiktoken.GetEncoding(encoding)
}

// Count returns the estimated token count, or 0 when the encoding is unavailable.
func (e *Estimator) Count(text string) int {
	if e == nil || text == "" {
		return 0
	}
	e.once.Do(func() {
		enc, err := e.load(e.encoding)
		if err != nil {
			e.logger.Warn("token encoding unavailable, estimates disabled", "encoding", e.encoding, "error", err)
			return
		}
		e.enc = enc
	})
	if e.enc == nil {
		return 0
	}
	return len(e.enc.Encode(text, nil, nil))
}
