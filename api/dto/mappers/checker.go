// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Turns a checker state snapshot into its response shape

package mappers

import (
	"fact-chex/api/dto/responses"
	"fact-chex/core/checker"
	"fact-chex/core/domain"
)

// ToCheckerResponse converts a checker state snapshot to a CheckerResponse DTO
func ToCheckerResponse(id string, state domain.State) *responses.CheckerResponse {
	return &responses.CheckerResponse{
		ID:             id,
		Phase:          string(state.Phase()),
		SearchQuery:    state.SearchQuery,
		CanSearch:      checker.CanSearch(state.SearchQuery),
		ShowModal:      state.ShowModal,
		IsLoading:      state.IsLoading,
		AnalysisResult: ToAnalysisResponse(state.AnalysisResult),
	}
}

// ToAnalysisResponse converts a domain AnalysisResult to an AnalysisResponse DTO
func ToAnalysisResponse(result *domain.AnalysisResult) *responses.AnalysisResponse {
	if result == nil {
		return nil
	}

	return &responses.AnalysisResponse{
		Verdict:   result.Verdict,
		Score:     result.Score,
		Reasoning: result.Reasoning,
		Evidence:  result.Evidence,
		Warnings:  result.Warnings,
		IsError:   result.IsError(),
	}
}
