// ABOUTME: Response DTOs for checker endpoints
// ABOUTME: Mirrors checker state plus the derived phase and search availability

package responses

// AnalysisResponse is an analysis result as shown in the modal
type AnalysisResponse struct {
	Verdict   string `json:"verdict" doc:"Verdict label, ERROR when the service could not be reached"`
	Score     string `json:"score" doc:"Confidence score as text, N/A when unknown"`
	Reasoning string `json:"reasoning" doc:"Explanation of the verdict"`
	Evidence  string `json:"evidence" doc:"Supporting evidence"`
	Warnings  string `json:"warnings" doc:"Caveats about the verdict"`
	IsError   bool   `json:"is_error" doc:"True when this is the fallback for a failed request"`
}

// CheckerResponse is the state of one checker
type CheckerResponse struct {
	ID             string            `json:"id" doc:"Checker ID"`
	Phase          string            `json:"phase" enum:"idle,loading,shown" doc:"Derived state machine phase"`
	SearchQuery    string            `json:"search_query" doc:"Current query"`
	CanSearch      bool              `json:"can_search" doc:"False when the query is blank and the search button is disabled"`
	ShowModal      bool              `json:"show_modal" doc:"Whether the result modal is visible"`
	IsLoading      bool              `json:"is_loading" doc:"Whether a request is pending"`
	AnalysisResult *AnalysisResponse `json:"analysis_result,omitempty" doc:"Result shown in the modal"`
}
