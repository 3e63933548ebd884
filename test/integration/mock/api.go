//go:build integration

package mock

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// ApiMock is a scripted finance service. Responses are keyed by method and
// path; a path segment of "*" matches anything. Unscripted requests get
// 200 with an empty JSON object.
type ApiMock struct {
	mu                    sync.Mutex
	server                *httptest.Server
	requestsReceived      map[string][]Request
	responseMap           map[string]map[int]any
	defaultResponseMap    map[string]any
	responseStatus        map[string]map[int]int
	defaultResponseStatus map[string]int
}

// Request is one request the mock received.
type Request struct {
	Headers http.Header
	Query   map[string]string
	Body    []byte
}

func NewApiServer() *ApiMock {
	return &ApiMock{
		requestsReceived:      map[string][]Request{},
		responseMap:           map[string]map[int]any{},
		defaultResponseMap:    map[string]any{},
		responseStatus:        map[string]map[int]int{},
		defaultResponseStatus: map[string]int{},
	}
}

func (a *ApiMock) Start() {
	a.server = httptest.NewServer(http.HandlerFunc(a.serve))
}

func (a *ApiMock) Close() {
	if a.server != nil {
		a.server.Close()
	}
}

func (a *ApiMock) GetUrl() string {
	return a.server.URL
}

func (a *ApiMock) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	query := map[string]string{}
	for key, value := range r.URL.Query() {
		query[key] = value[0]
	}

	a.mu.Lock()
	key := r.Method + r.URL.Path
	index := len(a.requestsReceived[key])
	a.requestsReceived[key] = append(a.requestsReceived[key], Request{
		Headers: r.Header.Clone(),
		Query:   query,
		Body:    body,
	})
	status, response := a.lookup(r.Method, r.URL.Path, index)
	a.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	responseBytes, _ := json.Marshal(response)
	_, _ = w.Write(responseBytes)
}

// SetResponse scripts the response to the index-th request of method and
// path. An index of -1 sets the default for every request.
func (a *ApiMock) SetResponse(index int, method, path string, status int, response any) {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := method + path
	if index == -1 {
		a.defaultResponseStatus[key] = status
		a.defaultResponseMap[key] = response
		return
	}

	if a.responseMap[key] == nil {
		a.responseMap[key] = map[int]any{}
		a.responseStatus[key] = map[int]int{}
	}
	a.responseMap[key][index] = response
	a.responseStatus[key][index] = status
}

// Requests returns what was received for method and path, in order.
func (a *ApiMock) Requests(method, path string) []Request {
	a.mu.Lock()
	defer a.mu.Unlock()

	return append([]Request(nil), a.requestsReceived[method+path]...)
}

// GetRequestBody decodes the index-th request body of method and path.
func (a *ApiMock) GetRequestBody(method, path string, index int) map[string]any {
	requests := a.Requests(method, path)
	if index >= len(requests) {
		return nil
	}

	var request map[string]any
	_ = json.Unmarshal(requests[index].Body, &request)
	return request
}

// Reset forgets every scripted response and received request.
func (a *ApiMock) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.requestsReceived = map[string][]Request{}
	a.responseMap = map[string]map[int]any{}
	a.defaultResponseMap = map[string]any{}
	a.responseStatus = map[string]map[int]int{}
	a.defaultResponseStatus = map[string]int{}
}

func (a *ApiMock) lookup(method, path string, index int) (int, any) {
	if key := a.findMatchingKey(a.responseMap, method, path); key != "" {
		if response, ok := a.responseMap[key][index]; ok {
			return a.responseStatus[key][index], response
		}
	}

	if key := a.findMatchingKey(a.defaultResponseMap, method, path); key != "" {
		return a.defaultResponseStatus[key], a.defaultResponseMap[key]
	}

	return http.StatusOK, map[string]any{}
}

func (a *ApiMock) matchPath(pattern string, path string) bool {
	if pattern == path {
		return true
	}

	patternParts := strings.Split(pattern, "/")
	pathParts := strings.Split(path, "/")

	if len(patternParts) != len(pathParts) {
		return false
	}

	for i := range patternParts {
		if patternParts[i] != "*" && patternParts[i] != pathParts[i] {
			return false
		}
	}

	return true
}

func findExact[V any](m map[string]V, key string) bool {
	_, ok := m[key]
	return ok
}

func (a *ApiMock) findMatchingKey(m any, method, path string) string {
	var keys []string
	switch v := m.(type) {
	case map[string]map[int]any:
		if findExact(v, method+path) {
			return method + path
		}
		for key := range v {
			keys = append(keys, key)
		}
	case map[string]any:
		if findExact(v, method+path) {
			return method + path
		}
		for key := range v {
			keys = append(keys, key)
		}
	}

	for _, key := range keys {
		if strings.HasPrefix(key, method+"/") && a.matchPath(strings.TrimPrefix(key, method), path) {
			return key
		}
	}
	return ""
}
