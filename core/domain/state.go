// ABOUTME: State domain model describes what the claim checker view renders
// ABOUTME: Defines the Idle/Loading/Shown phases derived from the raw UI fields

package domain

// Phase is the coarse position of a checker in its state machine
type Phase string

const (
	// PhaseIdle means the modal is closed
	PhaseIdle Phase = "idle"

	// PhaseLoading means the modal is open and a request is in flight,
	// even when an older result is still held
	PhaseLoading Phase = "loading"

	// PhaseShown means the modal is open with no request pending
	PhaseShown Phase = "shown"
)

// State is the UI state owned by a single claim checker
type State struct {
	// SearchQuery is the claim text as typed by the user
	SearchQuery string `json:"search_query"`

	// ShowModal reports whether the result modal is visible
	ShowModal bool `json:"show_modal"`

	// IsLoading reports whether a request is pending
	IsLoading bool `json:"is_loading"`

	// AnalysisResult is the last applied result, nil when absent
	AnalysisResult *AnalysisResult `json:"analysis_result,omitempty"`
}

// Phase derives the state machine phase from the raw fields
func (s State) Phase() Phase {
	switch {
	case !s.ShowModal:
		return PhaseIdle
	case s.IsLoading:
		return PhaseLoading
	default:
		return PhaseShown
	}
}

// Clone returns a deep copy so callers never share the result pointer
func (s State) Clone() State {
	s.AnalysisResult = s.AnalysisResult.Clone()
	return s
}

// Consistent reports whether the result slot respects the modal invariant:
// a result may only be present while the modal is shown.
func (s State) Consistent() bool {
	return s.AnalysisResult == nil || s.ShowModal
}
