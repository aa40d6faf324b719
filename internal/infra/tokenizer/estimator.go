package tokenizer

import (
	"log/slog"
	"sync"

	"github.com/pkoukk/tiktoken-go"

	"github.com/yanqian/news-summarizer/pkg/metrics"
)

// DefaultEncoding is the BPE used for estimates.
const DefaultEncoding = "cl100k_base"

// Estimator counts tokens with tiktoken, falling back to len/4 when the
// encoding cannot be loaded. The encoding is loaded on first use.
type Estimator struct {
	once     sync.Once
	encoding *tiktoken.Tiktoken
	load     func() (*tiktoken.Tiktoken, error)
	logger   *slog.Logger
}

// NewEstimator builds a lazily initialised estimator.
func NewEstimator(logger *slog.Logger) *Estimator {
	return &Estimator{
		load:   func() (*tiktoken.Tiktoken, error) { return tiktoken.GetEncoding(DefaultEncoding) },
		logger: logger.With("component", "tokenizer"),
	}
}

// Count returns the estimated number of tokens in text.
func (e *Estimator) Count(text string) int {
	e.once.Do(func() {
		if e.load == nil {
			return
		}
		enc, err := e.load()
		if err != nil {
			e.logger.Warn("tiktoken encoding unavailable, using fallback", "encoding", DefaultEncoding, "error", err)
			return
		}
		e.encoding = enc
	})
	if e.encoding == nil {
		return len(text) / 4
	}
	return len(e.encoding.Encode(text, nil, nil))
}

// Usage reports the prompt-side usage for text.
func (e *Estimator) Usage(text string) metrics.TokenUsage {
	return metrics.PromptOnly(e.Count(text))
}
