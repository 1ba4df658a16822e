// Package testutil provides testing utilities for the Drukarnia client.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"
)

// MockResponse defines the behavior for a mock endpoint response.
type MockResponse struct {
	StatusCode int
	Body       string
	Headers    map[string]string
	Delay      time.Duration
}

// MockDrukarnia is a configurable mock Drukarnia API server for testing.
type MockDrukarnia struct {
	server   *httptest.Server
	mu       sync.RWMutex
	handlers map[string]func(w http.ResponseWriter, r *http.Request)

	// Tracking
	RequestCount      int
	LastRequestHeader http.Header
	LastRequestURI    string
}

// NewMockDrukarnia creates a new mock API server.
func NewMockDrukarnia() *MockDrukarnia {
	mock := &MockDrukarnia{
		handlers: make(map[string]func(w http.ResponseWriter, r *http.Request)),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.mu.Lock()
		mock.RequestCount++
		mock.LastRequestHeader = r.Header.Clone()
		mock.LastRequestURI = r.URL.RequestURI()
		mock.mu.Unlock()

		mock.mu.RLock()
		handler, exists := mock.handlers[r.URL.Path]
		mock.mu.RUnlock()

		if exists {
			handler(w, r)
			return
		}

		// Default: the API answers 404 for unknown paths.
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "Not Found"}`))
	}))

	return mock
}

// URL returns the mock server URL.
func (m *MockDrukarnia) URL() string {
	return m.server.URL
}

// Close shuts down the mock server.
func (m *MockDrukarnia) Close() {
	m.server.Close()
}

// Reset clears all tracking counters.
func (m *MockDrukarnia) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestCount = 0
	m.LastRequestHeader = nil
	m.LastRequestURI = ""
}

// GetRequestCount returns the number of requests made to the server.
func (m *MockDrukarnia) GetRequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.RequestCount
}

// GetLastRequestURI returns the URI of the most recent request.
func (m *MockDrukarnia) GetLastRequestURI() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.LastRequestURI
}

// SetHandler sets a custom handler for a specific path.
func (m *MockDrukarnia) SetHandler(path string, handler func(w http.ResponseWriter, r *http.Request)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[path] = handler
}

// SetResponse configures a simple response for a path.
func (m *MockDrukarnia) SetResponse(path string, resp MockResponse) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		if resp.Delay > 0 {
			time.Sleep(resp.Delay)
		}

		for key, value := range resp.Headers {
			w.Header().Set(key, value)
		}

		w.WriteHeader(resp.StatusCode)
		if resp.Body != "" {
			w.Write([]byte(resp.Body))
		}
	})
}

// SetJSONResponse configures a 200 response serving v as JSON.
func (m *MockDrukarnia) SetJSONResponse(path string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("marshal mock response: %v", err))
	}
	m.SetResponse(path, MockResponse{
		StatusCode: http.StatusOK,
		Body:       string(data),
		Headers:    map[string]string{"Content-Type": "application/json; charset=utf-8"},
	})
}

// SetPagedResponse serves pages[page-1] as JSON for the given path, keyed
// on the "page" query parameter, and an empty list past the last page.
// It mirrors how the API paginates search results and feeds.
func (m *MockDrukarnia) SetPagedResponse(path string, pages [][]any) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")

		var page int
		fmt.Sscanf(r.URL.Query().Get("page"), "%d", &page)
		if page < 1 {
			page = 1
		}

		var items []any
		if page <= len(pages) {
			items = pages[page-1]
		}
		if items == nil {
			items = []any{}
		}

		data, err := json.Marshal(items)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	})
}

// SetLoginResponse configures the login endpoint: a matching credential
// pair answers with the session cookie and user record, anything else
// with 404.
func (m *MockDrukarnia) SetLoginResponse(email, password, token string, userJSON string) {
	m.SetHandler("/api/users/login", func(w http.ResponseWriter, r *http.Request) {
		var creds struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil || creds.Email != email || creds.Password != password {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message": "no such user"}`))
			return
		}

		w.Header().Set("Set-Cookie", "token="+token+"; Path=/; HttpOnly")
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"user": %s}`, userJSON)
	})
}
