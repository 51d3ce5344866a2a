// ABOUTME: Pure state transitions for the claim checker view
// ABOUTME: Maps query edits, searches, resolutions and modal closes onto a new State

package checker

import (
	"strings"

	"fact-chex/core/domain"
	"fact-chex/core/interfaces"
)

// Event is anything that can move the checker's state
type Event interface {
	isEvent()
}

// QueryChanged replaces the search query text
type QueryChanged struct {
	Query string
}

// SearchStarted opens the modal and marks a request as pending
type SearchStarted struct{}

// SearchResolved applies the outcome of one fact-check call
type SearchResolved struct {
	Outcome interfaces.Outcome
}

// SearchDiscarded ends loading for a completion that was dropped as stale
type SearchDiscarded struct{}

// ModalClosed hides the modal and clears the result
type ModalClosed struct{}

func (QueryChanged) isEvent()    {}
func (SearchStarted) isEvent()   {}
func (SearchResolved) isEvent()  {}
func (SearchDiscarded) isEvent() {}
func (ModalClosed) isEvent()     {}

// CanSearch reports whether a query is worth sending
func CanSearch(query string) bool {
	return strings.TrimSpace(query) != ""
}

// Reduce returns the state that follows s after e. It never mutates s
// and performs no I/O.
func Reduce(s domain.State, e Event) domain.State {
	s = s.Clone()

	switch ev := e.(type) {
	case QueryChanged:
		s.SearchQuery = ev.Query

	case SearchStarted:
		if !CanSearch(s.SearchQuery) {
			return s
		}
		s.IsLoading = true
		s.ShowModal = true

	case SearchResolved:
		if ev.Outcome.OK() {
			s.AnalysisResult = ev.Outcome.Result.Clone()
		} else {
			s.AnalysisResult = domain.FallbackResult()
		}
		s.IsLoading = false

	case SearchDiscarded:
		s.IsLoading = false

	case ModalClosed:
		s.ShowModal = false
		s.AnalysisResult = nil
	}

	return s
}
