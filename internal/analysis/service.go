package analysis

import (
	"context"
	"time"

	"github.com/abhisek/tabuada/internal/llm"
)

// delegateTimeout bounds the delegated call so the results screen is
// never stuck waiting on a slow backend.
const delegateTimeout = 15 * time.Second

// Service produces the end-of-session narrative. When a delegate is
// available it is tried first; on any failure the rule-based provider
// takes over, so Narrative always returns something readable.
type Service struct {
	delegate Provider
	rules    RuleBased
	timeout  time.Duration
}

// NewService creates an analysis service. If provider is nil, only
// rule-based analysis is available.
func NewService(provider llm.Provider) *Service {
	s := &Service{timeout: delegateTimeout}
	if provider != nil {
		s.delegate = NewDelegate(provider, DefaultDelegateConfig())
	}
	return s
}

// Delegated reports whether a delegated provider is configured.
func (s *Service) Delegated() bool {
	return s.delegate != nil
}

// Narrative returns the report for the snapshot. It never fails: a
// delegate error or timeout falls back to the rule-based narrative,
// which cannot error.
func (s *Service) Narrative(ctx context.Context, snap Snapshot) string {
	if s.delegate != nil {
		dctx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()
		if text, err := s.delegate.Analyze(dctx, snap); err == nil {
			return text
		}
		// Fall through. The delegate's failure is invisible to the
		// learner beyond the narrative style changing.
	}
	text, _ := s.rules.Analyze(ctx, snap)
	return text
}
