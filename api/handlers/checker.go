// ABOUTME: Checker handlers for the Huma API
// ABOUTME: Exposes one claim checker per page instance: query, search, close and the modal fragment

package handlers

import (
	"bytes"
	"context"
	"net/http"

	"fact-chex/api/dto/mappers"
	"fact-chex/api/dto/requests"
	"fact-chex/api/dto/responses"
	"fact-chex/api/views"
	"fact-chex/core/checker"
	"fact-chex/core/domain"
	"github.com/danielgtaylor/huma/v2"
)

// CheckerManager is what the handlers need from checker.Manager
type CheckerManager interface {
	Create(ctx context.Context) *checker.ClaimChecker
	Get(id string) (*checker.ClaimChecker, error)
	Delete(id string) error
}

// CheckerHandler handles checker-related HTTP requests
type CheckerHandler struct {
	manager  CheckerManager
	renderer *views.Renderer
}

// NewCheckerHandler creates a new checker handler
func NewCheckerHandler(manager CheckerManager, renderer *views.Renderer) *CheckerHandler {
	return &CheckerHandler{
		manager:  manager,
		renderer: renderer,
	}
}

// RegisterRoutes registers all checker routes
func (h *CheckerHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "createChecker",
		Method:        http.MethodPost,
		Path:          "/checkers",
		Summary:       "Create a claim checker",
		Description:   "Creates an idle checker for one page instance. State is not shared between checkers.",
		Tags:          []string{"Checkers"},
		DefaultStatus: http.StatusCreated,
	}, h.CreateChecker)

	huma.Register(api, huma.Operation{
		OperationID: "getChecker",
		Method:      http.MethodGet,
		Path:        "/checkers/{id}",
		Summary:     "Get checker state",
		Tags:        []string{"Checkers"},
	}, h.GetChecker)

	huma.Register(api, huma.Operation{
		OperationID: "setCheckerQuery",
		Method:      http.MethodPut,
		Path:        "/checkers/{id}/query",
		Summary:     "Set the search query",
		Description: "Replaces the query verbatim. The result modal is not affected.",
		Tags:        []string{"Checkers"},
	}, h.SetQuery)

	huma.Register(api, huma.Operation{
		OperationID: "searchChecker",
		Method:      http.MethodPost,
		Path:        "/checkers/{id}/search",
		Summary:     "Fact-check the current query",
		Description: "Opens the modal in the loading state and submits the query. Returns before the fact-check service answers. A blank query is ignored.",
		Tags:        []string{"Checkers"},
	}, h.Search)

	huma.Register(api, huma.Operation{
		OperationID: "closeCheckerModal",
		Method:      http.MethodPost,
		Path:        "/checkers/{id}/close",
		Summary:     "Close the result modal",
		Tags:        []string{"Checkers"},
	}, h.CloseModal)

	huma.Register(api, huma.Operation{
		OperationID:   "deleteChecker",
		Method:        http.MethodDelete,
		Path:          "/checkers/{id}",
		Summary:       "Discard a checker",
		Tags:          []string{"Checkers"},
		DefaultStatus: http.StatusNoContent,
	}, h.DeleteChecker)

	huma.Register(api, huma.Operation{
		OperationID: "getCheckerModal",
		Method:      http.MethodGet,
		Path:        "/checkers/{id}/modal",
		Summary:     "Render the result modal",
		Description: "Returns the modal as an HTML fragment, empty while the modal is closed",
		Tags:        []string{"Checkers"},
		Responses: map[string]*huma.Response{
			"200": {
				Description: "Modal fragment",
				Content: map[string]*huma.MediaType{
					"text/html": {},
				},
			},
		},
	}, h.GetModal)
}

// CheckerIDInput identifies a checker by path
type CheckerIDInput struct {
	ID string `path:"id" doc:"Checker ID"`
}

// SetQueryInput defines the input for the SetQuery operation
type SetQueryInput struct {
	ID   string `path:"id" doc:"Checker ID"`
	Body requests.SetQueryRequest
}

// CheckerOutput is the state of one checker
type CheckerOutput struct {
	Body responses.CheckerResponse
}

// ModalOutput carries the rendered modal fragment
type ModalOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

// CreateChecker handles POST /checkers
func (h *CheckerHandler) CreateChecker(ctx context.Context, input *struct{}) (*CheckerOutput, error) {
	c := h.manager.Create(ctx)
	return stateOutput(c.ID(), c.State()), nil
}

// GetChecker handles GET /checkers/{id}
func (h *CheckerHandler) GetChecker(ctx context.Context, input *CheckerIDInput) (*CheckerOutput, error) {
	c, err := h.manager.Get(input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return stateOutput(c.ID(), c.State()), nil
}

// SetQuery handles PUT /checkers/{id}/query
func (h *CheckerHandler) SetQuery(ctx context.Context, input *SetQueryInput) (*CheckerOutput, error) {
	c, err := h.manager.Get(input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return stateOutput(c.ID(), c.SetQuery(input.Body.Query)), nil
}

// Search handles POST /checkers/{id}/search
func (h *CheckerHandler) Search(ctx context.Context, input *CheckerIDInput) (*CheckerOutput, error) {
	c, err := h.manager.Get(input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return stateOutput(c.ID(), c.Search()), nil
}

// CloseModal handles POST /checkers/{id}/close
func (h *CheckerHandler) CloseModal(ctx context.Context, input *CheckerIDInput) (*CheckerOutput, error) {
	c, err := h.manager.Get(input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return stateOutput(c.ID(), c.CloseModal()), nil
}

// DeleteChecker handles DELETE /checkers/{id}
func (h *CheckerHandler) DeleteChecker(ctx context.Context, input *CheckerIDInput) (*struct{}, error) {
	if err := h.manager.Delete(input.ID); err != nil {
		return nil, toHumaError(err)
	}
	return &struct{}{}, nil
}

// GetModal handles GET /checkers/{id}/modal
func (h *CheckerHandler) GetModal(ctx context.Context, input *CheckerIDInput) (*ModalOutput, error) {
	c, err := h.manager.Get(input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	var buf bytes.Buffer
	if err := h.renderer.RenderModal(&buf, c.ID(), c.State()); err != nil {
		return nil, toHumaError(err)
	}

	return &ModalOutput{
		ContentType: "text/html; charset=utf-8",
		Body:        buf.Bytes(),
	}, nil
}

func stateOutput(id string, state domain.State) *CheckerOutput {
	return &CheckerOutput{Body: *mappers.ToCheckerResponse(id, state)}
}
