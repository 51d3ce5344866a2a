// ABOUTME: AnalysisResult domain model holds the verdict returned for a fact-checked claim
// ABOUTME: Provides the fixed fallback result shown when the fact-checking service is unreachable

package domain

// Fallback values used when no response could be obtained
const (
	VerdictError = "ERROR"
	ScoreUnknown = "N/A"

	FallbackReasoning = "Failed to get a response from the fact-checking service."
	FallbackWarnings  = "Please check if the backend server is running and accessible."
)

// AnalysisResult is the outcome of fact-checking a single claim.
// Values are treated as immutable once constructed; a new search
// replaces the whole result rather than editing it.
type AnalysisResult struct {
	// Verdict is the categorical outcome, e.g. TRUE, FALSE or ERROR
	Verdict string `json:"verdict"`

	// Score is the service's confidence, kept as the string it sent
	Score string `json:"score"`

	// Reasoning explains the verdict
	Reasoning string `json:"reasoning"`

	// Evidence cites the material the verdict is based on
	Evidence string `json:"evidence"`

	// Warnings flags weak, outdated or conflicting context
	Warnings string `json:"warnings"`
}

// ClaimRequest is the body sent to the fact-checking service
type ClaimRequest struct {
	Claim string `json:"claim"`
}

// FallbackResult returns the result displayed when the service call fails
func FallbackResult() *AnalysisResult {
	return &AnalysisResult{
		Verdict:   VerdictError,
		Score:     ScoreUnknown,
		Reasoning: FallbackReasoning,
		Evidence:  "",
		Warnings:  FallbackWarnings,
	}
}

// IsError reports whether the result is the locally synthesized failure result
func (r *AnalysisResult) IsError() bool {
	return r != nil && r.Verdict == VerdictError
}

// Clone returns a copy of the result, or nil for a nil receiver
func (r *AnalysisResult) Clone() *AnalysisResult {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}
