package enrich

import (
	"context"
	"strings"

	"github.com/umputun/newsweaver/pkg/sanitize"
)

// minSummarizeLength is measured against the raw (pre-sanitized) content,
// a cost guard rather than an error condition
const minSummarizeLength = 100

// ShortContentMessage is returned instead of calling the LLM when the
// article body is below the summarization threshold
const ShortContentMessage = "This article is too short to summarize. Please read the full content at the source."

// Summarizer produces a summary for sanitized article content
type Summarizer interface {
	Summarize(ctx context.Context, content string) (string, error)
}

// Service wraps the LLM gateway with the sanitation and length policy the
// gateway expects its callers to apply
type Service struct {
	summarizer Summarizer
}

// NewService creates a summarization service over the given gateway
func NewService(summarizer Summarizer) *Service {
	return &Service{summarizer: summarizer}
}

// Summarize sanitizes the raw article content and requests a summary.
// Content shorter than the threshold is answered locally with the fixed
// short-content message, skipping the remote call entirely.
func (s *Service) Summarize(ctx context.Context, raw string) (string, error) {
	if len(strings.TrimSpace(raw)) < minSummarizeLength {
		return ShortContentMessage, nil
	}
	return s.summarizer.Summarize(ctx, sanitize.Text(raw))
}
