package loader

import (
	"context"
	"fmt"
	"sync"
)

type mockResponse struct {
	body []byte
	err  error
}

// MockFetcher implements Fetcher for tests. Responses are configured per URL
// and a URL can be held so its fetch blocks until released.
type MockFetcher struct {
	mu        sync.Mutex
	responses map[string]mockResponse
	gates     map[string]chan struct{}
	calls     []string
}

// NewMockFetcher creates an empty mock. Unconfigured URLs fail.
func NewMockFetcher() *MockFetcher {
	return &MockFetcher{
		responses: make(map[string]mockResponse),
		gates:     make(map[string]chan struct{}),
	}
}

// Respond makes fetches of target return body.
func (m *MockFetcher) Respond(target, body string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[target] = mockResponse{body: []byte(body)}
}

// Fail makes fetches of target return err.
func (m *MockFetcher) Fail(target string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[target] = mockResponse{err: err}
}

// Hold blocks fetches of target until the returned release func is called.
func (m *MockFetcher) Hold(target string) (release func()) {
	gate := make(chan struct{})
	m.mu.Lock()
	m.gates[target] = gate
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { close(gate) })
	}
}

// Calls returns the targets fetched so far, in call order.
func (m *MockFetcher) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]string, len(m.calls))
	copy(result, m.calls)
	return result
}

// Fetch implements Fetcher.
func (m *MockFetcher) Fetch(ctx context.Context, target string) ([]byte, error) {
	m.mu.Lock()
	m.calls = append(m.calls, target)
	gate := m.gates[target]
	m.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	m.mu.Lock()
	resp, ok := m.responses[target]
	m.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("no response configured for %s", target)
	}
	return resp.body, resp.err
}
