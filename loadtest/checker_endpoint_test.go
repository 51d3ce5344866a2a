// ABOUTME: Load tests for the checker endpoints
// ABOUTME: Drives many page checkers concurrently through the full HTTP stack

package loadtest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"fact-chex/api"
	"fact-chex/api/dto/responses"
	"fact-chex/api/handlers"
	"fact-chex/api/views"
	"fact-chex/core/checker"
	"fact-chex/core/factcheck"
	"fact-chex/core/interfaces"
	stdhttp "fact-chex/infrastructure/http/standard"
	"fact-chex/infrastructure/registry/memory"
)

// LoadTestMetrics tracks performance metrics
type LoadTestMetrics struct {
	TotalRequests  int64
	SuccessfulReqs int64
	FailedReqs     int64
	TotalDuration  time.Duration
	P95Latency     time.Duration
	RequestsPerSec float64
}

// newFactCheckBackend answers every claim after delay, echoing the claim
// back in the reasoning so each checker can verify it got its own result
func newFactCheckBackend(delay time.Duration) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Claim string `json:"claim"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		time.Sleep(delay)
		json.NewEncoder(w).Encode(map[string]string{
			"verdict":   "TRUE",
			"score":     "0.9",
			"reasoning": req.Claim,
			"evidence":  "",
			"warnings":  "",
		})
	}))
}

func newHost(t *testing.T, backendURL string) *httptest.Server {
	t.Helper()
	service := factcheck.NewService(backendURL, interfaces.Dependencies{
		HTTPClient: stdhttp.NewStandardHTTPClient(10 * time.Second),
	})
	manager := checker.NewManager(memory.NewRegistry(time.Minute, nil), service, nil, nil)
	renderer, err := views.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	humaAPI, router := api.NewAPI()
	handlers.NewCheckerHandler(manager, renderer).RegisterRoutes(humaAPI)
	return httptest.NewServer(router)
}

type hostClient struct {
	http *http.Client
	base string
}

func (c *hostClient) do(method, path string, body interface{}) (*responses.CheckerResponse, error) {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, c.base+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}

	var out responses.CheckerResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// runPage plays one page: create, type, search, poll until shown
func runPage(c *hostClient, claim string, record func(time.Duration)) error {
	timed := func(method, path string, body interface{}) (*responses.CheckerResponse, error) {
		start := time.Now()
		out, err := c.do(method, path, body)
		record(time.Since(start))
		return out, err
	}

	created, err := timed(http.MethodPost, "/checkers", nil)
	if err != nil {
		return err
	}
	base := "/checkers/" + created.ID

	if _, err := timed(http.MethodPut, base+"/query", map[string]string{"query": claim}); err != nil {
		return err
	}

	searched, err := timed(http.MethodPost, base+"/search", nil)
	if err != nil {
		return err
	}
	if !searched.ShowModal || !searched.IsLoading {
		return fmt.Errorf("search did not open a loading modal: %+v", searched)
	}

	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		state, err := timed(http.MethodGet, base, nil)
		if err != nil {
			return err
		}
		if !state.IsLoading {
			if state.AnalysisResult == nil || state.AnalysisResult.Reasoning != claim {
				return fmt.Errorf("checker %s got a foreign result: %+v", created.ID, state.AnalysisResult)
			}
			return nil
		}
		time.Sleep(5 * time.Millisecond)
	}
	return fmt.Errorf("checker %s still loading", created.ID)
}

func TestCheckerEndpoints_ConcurrentPages(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping load test in short mode")
	}

	backend := newFactCheckBackend(20 * time.Millisecond)
	defer backend.Close()
	host := newHost(t, backend.URL)
	defer host.Close()

	concurrency := 50
	pagesPerWorker := 4

	var (
		successCount int64
		failCount    int64
		requestCount int64
		latencies    []time.Duration
		mu           sync.Mutex
		firstErr     error
	)
	record := func(d time.Duration) {
		atomic.AddInt64(&requestCount, 1)
		mu.Lock()
		latencies = append(latencies, d)
		mu.Unlock()
	}

	var wg sync.WaitGroup
	wg.Add(concurrency)
	startTime := time.Now()

	for i := 0; i < concurrency; i++ {
		go func(workerID int) {
			defer wg.Done()
			client := &hostClient{http: &http.Client{Timeout: 30 * time.Second}, base: host.URL}

			for j := 0; j < pagesPerWorker; j++ {
				claim := fmt.Sprintf("claim %d-%d", workerID, j)
				if err := runPage(client, claim, record); err != nil {
					atomic.AddInt64(&failCount, 1)
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					continue
				}
				atomic.AddInt64(&successCount, 1)
			}
		}(i)
	}

	wg.Wait()
	metrics := calculateMetrics(latencies, requestCount, successCount, failCount, time.Since(startTime))

	t.Logf("Pages: %d ok, %d failed", successCount, failCount)
	t.Logf("Requests: %d in %v (%.2f req/s), p95 %v",
		metrics.TotalRequests, metrics.TotalDuration, metrics.RequestsPerSec, metrics.P95Latency)

	if failCount > 0 {
		t.Fatalf("%d pages failed, first error: %v", failCount, firstErr)
	}
	if metrics.P95Latency > time.Second {
		t.Errorf("p95 latency %v exceeds 1s", metrics.P95Latency)
	}
}

func calculateMetrics(latencies []time.Duration, total, ok, failed int64, duration time.Duration) LoadTestMetrics {
	m := LoadTestMetrics{
		TotalRequests:  total,
		SuccessfulReqs: ok,
		FailedReqs:     failed,
		TotalDuration:  duration,
	}
	if duration > 0 {
		m.RequestsPerSec = float64(total) / duration.Seconds()
	}
	if len(latencies) == 0 {
		return m
	}

	sorted := append([]time.Duration(nil), latencies...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	m.P95Latency = sorted[len(sorted)*95/100]
	return m
}
