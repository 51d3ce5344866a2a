package checker

import (
	"errors"
	"testing"

	"fact-chex/core/domain"
	"fact-chex/core/interfaces"

	"github.com/stretchr/testify/assert"
)

func TestReduce_SearchStarted_BlankQueryIsNoop(t *testing.T) {
	for _, query := range []string{"", " ", "\t\n  "} {
		before := domain.State{SearchQuery: query}
		after := Reduce(before, SearchStarted{})
		assert.Equal(t, before, after, "query %q", query)
	}
}

func TestReduce_SearchStarted_OpensModalAndLoads(t *testing.T) {
	after := Reduce(domain.State{SearchQuery: "claim"}, SearchStarted{})

	assert.True(t, after.ShowModal)
	assert.True(t, after.IsLoading)
	assert.Nil(t, after.AnalysisResult)
	assert.Equal(t, domain.PhaseLoading, after.Phase())
}

func TestReduce_SearchResolved_Success(t *testing.T) {
	result := &domain.AnalysisResult{Verdict: "TRUE", Score: "0.9", Reasoning: "r", Evidence: "e", Warnings: "w"}
	loading := domain.State{SearchQuery: "claim", ShowModal: true, IsLoading: true}

	after := Reduce(loading, SearchResolved{Outcome: interfaces.Outcome{Result: result}})

	assert.Equal(t, result, after.AnalysisResult)
	assert.False(t, after.IsLoading)
	assert.Equal(t, domain.PhaseShown, after.Phase())

	// The state holds its own copy
	result.Verdict = "changed"
	assert.Equal(t, "TRUE", after.AnalysisResult.Verdict)
}

func TestReduce_SearchResolved_FailureUsesFallback(t *testing.T) {
	loading := domain.State{SearchQuery: "claim", ShowModal: true, IsLoading: true}

	outcomes := []interfaces.Outcome{
		{Err: errors.New("connection refused")},
		{},
	}
	for _, outcome := range outcomes {
		after := Reduce(loading, SearchResolved{Outcome: outcome})

		assert.Equal(t, domain.FallbackResult(), after.AnalysisResult)
		assert.False(t, after.IsLoading)
	}
}

func TestReduce_ModalClosed(t *testing.T) {
	states := []domain.State{
		{},
		{SearchQuery: "q", ShowModal: true, IsLoading: true},
		{SearchQuery: "q", ShowModal: true, AnalysisResult: &domain.AnalysisResult{Verdict: "FALSE"}},
	}

	for _, s := range states {
		after := Reduce(s, ModalClosed{})

		assert.False(t, after.ShowModal)
		assert.Nil(t, after.AnalysisResult)
		assert.Equal(t, s.IsLoading, after.IsLoading)
		assert.Equal(t, s.SearchQuery, after.SearchQuery)
	}
}

func TestReduce_SearchDiscarded_OnlyClearsLoading(t *testing.T) {
	after := Reduce(domain.State{SearchQuery: "q", IsLoading: true}, SearchDiscarded{})

	assert.Equal(t, domain.State{SearchQuery: "q"}, after)
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	before := domain.State{ShowModal: true, AnalysisResult: &domain.AnalysisResult{Verdict: "TRUE"}}

	Reduce(before, ModalClosed{})

	assert.True(t, before.ShowModal)
	assert.NotNil(t, before.AnalysisResult)
}

func TestReduce_QueryChanged(t *testing.T) {
	after := Reduce(domain.State{ShowModal: true}, QueryChanged{Query: "new"})

	assert.Equal(t, "new", after.SearchQuery)
	assert.True(t, after.ShowModal)
}
