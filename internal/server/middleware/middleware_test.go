package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// TestChain_ExecutionOrder verifies first added is outermost middleware.
func TestChain_ExecutionOrder(t *testing.T) {
	var executionLog []string

	wrap := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				executionLog = append(executionLog, "start-"+name)
				next.ServeHTTP(w, r)
				executionLog = append(executionLog, "end-"+name)
			})
		}
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		executionLog = append(executionLog, "handler")
		w.WriteHeader(http.StatusOK)
	})

	chained := Chain(wrap("1"), wrap("2"))(handler)

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	chained.ServeHTTP(w, req)

	expected := []string{"start-1", "start-2", "handler", "end-2", "end-1"}
	if len(executionLog) != len(expected) {
		t.Fatalf("expected %d log entries, got %d", len(expected), len(executionLog))
	}
	for i, exp := range expected {
		if executionLog[i] != exp {
			t.Errorf("log[%d]: expected %s, got %s", i, exp, executionLog[i])
		}
	}
}

// TestChain_Empty verifies an empty chain returns the handler unchanged.
func TestChain_Empty(t *testing.T) {
	called := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	Chain()(handler).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	if !called {
		t.Error("expected handler to be called")
	}
}

// TestLogger tests request logging middleware.
func TestLogger(t *testing.T) {
	tests := []struct {
		name          string
		method        string
		path          string
		handlerStatus int
		expectLevel   string
	}{
		{"GET request", "GET", "/api/v1/components", http.StatusOK, "info"},
		{"POST request", "POST", "/api/v1/playground/code", http.StatusOK, "info"},
		{"client error", "GET", "/api/v1/components/unknown", http.StatusNotFound, "warn"},
		{"server error", "GET", "/api/v1/ready", http.StatusServiceUnavailable, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf)

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if zerolog.Ctx(r.Context()) == nil {
					t.Error("expected request logger in context")
				}
				w.WriteHeader(tt.handlerStatus)
				_, _ = w.Write([]byte("hello"))
			})

			req := httptest.NewRequest(tt.method, tt.path+"?category=usable", nil)
			req.RemoteAddr = "192.168.1.1:12345"
			w := httptest.NewRecorder()
			Logger(&logger)(handler).ServeHTTP(w, req)

			var entry map[string]any
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("failed to parse log entry %q: %v", buf.String(), err)
			}

			if entry["level"] != tt.expectLevel {
				t.Errorf("expected level %s, got %v", tt.expectLevel, entry["level"])
			}
			if entry["method"] != tt.method {
				t.Errorf("expected method %s, got %v", tt.method, entry["method"])
			}
			if entry["path"] != tt.path {
				t.Errorf("expected path %s, got %v", tt.path, entry["path"])
			}
			if entry["query"] != "category=usable" {
				t.Errorf("expected query to be logged, got %v", entry["query"])
			}
			if entry["status"] != float64(tt.handlerStatus) {
				t.Errorf("expected status %d, got %v", tt.handlerStatus, entry["status"])
			}
			if entry["bytes"] != float64(5) {
				t.Errorf("expected bytes 5, got %v", entry["bytes"])
			}
		})
	}
}

// TestLogger_ImplicitStatus verifies a handler that only writes a body logs 200.
func TestLogger_ImplicitStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	Logger(&logger)(handler).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/health", nil))

	if !strings.Contains(buf.String(), `"status":200`) {
		t.Errorf("expected status 200 in log, got %s", buf.String())
	}
}

// TestRecovery tests panic recovery.
func TestRecovery(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	Recovery(&logger)(handler).ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/components", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", w.Code)
	}

	var body struct {
		Data  any `json:"data"`
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Error.Code != "INTERNAL_ERROR" {
		t.Errorf("expected INTERNAL_ERROR, got %s", body.Error.Code)
	}
	if !strings.Contains(buf.String(), "Panic recovered") {
		t.Errorf("expected panic to be logged, got %s", buf.String())
	}
}

// TestRecovery_NoPanic verifies normal requests pass through.
func TestRecovery_NoPanic(t *testing.T) {
	logger := zerolog.Nop()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	w := httptest.NewRecorder()
	Recovery(&logger)(handler).ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	if w.Code != http.StatusAccepted {
		t.Errorf("expected status 202, got %d", w.Code)
	}
}
