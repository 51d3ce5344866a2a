// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for the fact-check call and the checker registry

package interfaces

import (
	"context"

	"fact-chex/core/domain"
)

// Outcome is the tagged result of one fact-check call: exactly one of
// Result or Err is set.
type Outcome struct {
	Result *domain.AnalysisResult
	Err    error
}

// OK reports whether the call produced a decoded result
func (o Outcome) OK() bool {
	return o.Err == nil && o.Result != nil
}

// FactChecker submits a claim to the fact-checking service
type FactChecker interface {
	Check(ctx context.Context, claim string) Outcome
}

// BackendProber reports whether the fact-checking service answers at all
type BackendProber interface {
	Probe(ctx context.Context) error
}
