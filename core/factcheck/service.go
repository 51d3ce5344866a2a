// ABOUTME: Fact-check service submits claims to the remote fact-checking endpoint
// ABOUTME: Folds every transport, status and decoding failure into a ServiceUnavailableError

package factcheck

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"fact-chex/core/domain"
	"fact-chex/core/errors"
	"fact-chex/core/interfaces"
)

const (
	// DefaultBaseURL is the fixed local address of the fact-checking service
	DefaultBaseURL = "http://127.0.0.1:8000"

	checkPath   = "/fact-check"
	serviceName = "fact-check service"
)

// Service calls the fact-checking HTTP endpoint
type Service struct {
	baseURL    string
	httpClient interfaces.HTTPClient
}

// NewService creates a new fact-check service for the given base URL.
// An empty baseURL selects DefaultBaseURL.
func NewService(baseURL string, deps interfaces.Dependencies) *Service {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Service{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: deps.HTTPClient,
	}
}

// Endpoint returns the full URL claims are posted to
func (s *Service) Endpoint() string {
	return s.baseURL + checkPath
}

// Check posts the claim and returns the decoded result or a
// ServiceUnavailableError. The claim is sent exactly as given.
func (s *Service) Check(ctx context.Context, claim string) interfaces.Outcome {
	result, err := s.check(ctx, claim)
	if err != nil {
		return interfaces.Outcome{Err: err}
	}
	return interfaces.Outcome{Result: result}
}

func (s *Service) check(ctx context.Context, claim string) (*domain.AnalysisResult, error) {
	payload, err := json.Marshal(domain.ClaimRequest{Claim: claim})
	if err != nil {
		return nil, s.unavailable(0, err)
	}

	resp, err := s.httpClient.Post(ctx, s.Endpoint(), bytes.NewReader(payload))
	if err != nil {
		return nil, s.unavailable(0, err)
	}
	body := resp.Body()
	defer body.Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		// Drain so the connection can be reused
		io.Copy(io.Discard, body)
		return nil, s.unavailable(resp.StatusCode(), nil)
	}

	var result domain.AnalysisResult
	if err := json.NewDecoder(body).Decode(&result); err != nil {
		return nil, s.unavailable(resp.StatusCode(), errors.WrapError(err, "decode response"))
	}
	// A null or fieldless body decodes without error but carries no verdict
	if result == (domain.AnalysisResult{}) {
		return nil, s.unavailable(resp.StatusCode(), errors.ErrEmptyResult)
	}

	return &result, nil
}

// Probe checks that the service answers on its root path
func (s *Service) Probe(ctx context.Context) error {
	resp, err := s.httpClient.Get(ctx, s.baseURL+"/")
	if err != nil {
		return s.unavailable(0, err)
	}
	body := resp.Body()
	defer body.Close()
	io.Copy(io.Discard, body)

	if resp.StatusCode() != http.StatusOK {
		return s.unavailable(resp.StatusCode(), nil)
	}
	return nil
}

func (s *Service) unavailable(status int, cause error) error {
	return &errors.ServiceUnavailableError{
		Service:    serviceName,
		StatusCode: status,
		Cause:      cause,
	}
}
