// ABOUTME: Public types for the Fact-Chex library API
// ABOUTME: Re-exports the domain and checker types callers work with

package factchex

import (
	"fact-chex/core/checker"
	"fact-chex/core/domain"
)

// AnalysisResult is the verdict returned for one claim
type AnalysisResult = domain.AnalysisResult

// State is a snapshot of a checker's UI state
type State = domain.State

// Phase is the coarse position of a checker
type Phase = domain.Phase

// Checker is one claim checker, equivalent to one page instance
type Checker = checker.ClaimChecker

// Checker phases
const (
	PhaseIdle    = domain.PhaseIdle
	PhaseLoading = domain.PhaseLoading
	PhaseShown   = domain.PhaseShown
)
