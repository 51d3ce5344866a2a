package factchex

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBackend(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func factCheckBackend(t *testing.T, verdict string) *httptest.Server {
	return newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			w.Write([]byte(`{"message":"Hello Vercel"}`))
		case "/fact-check":
			var req struct {
				Claim string `json:"claim"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			json.NewEncoder(w).Encode(map[string]string{
				"verdict":   verdict,
				"score":     "0.97",
				"reasoning": "checked: " + req.Claim,
				"evidence":  "",
				"warnings":  "",
			})
		default:
			http.NotFound(w, r)
		}
	})
}

func TestNewClient_Defaults(t *testing.T) {
	client, err := NewClient(WithQuietMode())
	require.NoError(t, err)
	defer client.Close()

	assert.Equal(t, "http://127.0.0.1:8000/fact-check", client.Endpoint())
	assert.True(t, client.config.DiscardStale)
}

func TestDefaultHTTPClient(t *testing.T) {
	backend := factCheckBackend(t, "TRUE")
	httpClient := DefaultHTTPClient(time.Second)

	resp, err := httpClient.Post(context.Background(), backend.URL+"/fact-check", strings.NewReader(`{"claim":"sky is blue"}`))
	require.NoError(t, err)
	body := resp.Body()
	defer body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode())
	var result map[string]string
	require.NoError(t, json.NewDecoder(body).Decode(&result))
	assert.Equal(t, "checked: sky is blue", result["reasoning"])
}

func TestNewClient_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"empty base URL", WithBaseURL("")},
		{"negative timeout", WithTimeout(-time.Second)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(tt.opt)

			var libErr *Error
			require.ErrorAs(t, err, &libErr)
			assert.Equal(t, ErrorTypeConfiguration, libErr.Type)
		})
	}
}

func TestClient_Check(t *testing.T) {
	backend := factCheckBackend(t, "FALSE")
	client, err := NewClient(WithBaseURL(backend.URL), WithQuietMode())
	require.NoError(t, err)
	defer client.Close()

	result, err := client.Check(context.Background(), "The moon is made of cheese")

	require.NoError(t, err)
	assert.Equal(t, "FALSE", result.Verdict)
	assert.Equal(t, "checked: The moon is made of cheese", result.Reasoning)
}

func TestClient_CheckBlankClaim(t *testing.T) {
	client, err := NewClient(WithQuietMode())
	require.NoError(t, err)
	defer client.Close()

	_, err = client.Check(context.Background(), " \t ")

	assert.True(t, IsValidationError(err))
}

func TestClient_CheckUnavailable(t *testing.T) {
	backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	client, err := NewClient(WithBaseURL(backend.URL), WithQuietMode())
	require.NoError(t, err)
	defer client.Close()

	_, err = client.Check(context.Background(), "claim")

	require.Error(t, err)
	assert.True(t, IsUnavailableError(err))
	var libErr *Error
	require.ErrorAs(t, err, &libErr)
	assert.Equal(t, http.StatusBadGateway, libErr.Context["status"])
}

func TestClient_Ping(t *testing.T) {
	backend := factCheckBackend(t, "TRUE")
	client, err := NewClient(WithBaseURL(backend.URL), WithQuietMode())
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, client.Ping(context.Background()))

	backend.Close()
	assert.True(t, IsUnavailableError(client.Ping(context.Background())))
}

func TestClient_CheckerLifecycle(t *testing.T) {
	backend := factCheckBackend(t, "TRUE")
	client, err := NewClient(WithBaseURL(backend.URL), WithQuietMode(), WithRequestLogging())
	require.NoError(t, err)
	defer client.Close()

	ctx := context.Background()
	checker, err := client.NewChecker(ctx)
	require.NoError(t, err)

	found, err := client.Checker(checker.ID())
	require.NoError(t, err)
	assert.Same(t, checker, found)

	checker.SetQuery("Water is wet")
	state := checker.Search()
	assert.True(t, state.ShowModal)

	waitCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	require.NoError(t, checker.Wait(waitCtx))

	state = checker.State()
	assert.Equal(t, PhaseShown, state.Phase())
	assert.Equal(t, "TRUE", state.AnalysisResult.Verdict)

	require.NoError(t, client.RemoveChecker(checker.ID()))
	_, err = client.Checker(checker.ID())
	assert.True(t, IsNotFoundError(err))
}

func TestClient_CheckerLookupErrors(t *testing.T) {
	client, err := NewClient(WithQuietMode())
	require.NoError(t, err)
	defer client.Close()

	_, err = client.Checker("not-a-uuid")
	assert.True(t, IsValidationError(err))

	_, err = client.Checker("6f1c7f5e-8a3b-4c1d-9e2f-0a1b2c3d4e5f")
	assert.True(t, IsNotFoundError(err))
}

func TestClient_Closed(t *testing.T) {
	client, err := NewClient(WithQuietMode())
	require.NoError(t, err)
	require.NoError(t, client.Close())

	_, err = client.NewChecker(context.Background())
	assert.ErrorIs(t, err, ErrClientClosed)

	_, err = client.Check(context.Background(), "claim")
	assert.ErrorIs(t, err, ErrClientClosed)
}
