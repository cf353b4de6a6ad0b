package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"

	"seoaudit/internal/audit"
	"seoaudit/internal/cache"
	"seoaudit/internal/log"
	"seoaudit/pkg/response"
)

func TestMain(m *testing.M) {
	log.Logger = zap.NewNop()
	os.Exit(m.Run())
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var env response.Response
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return env
}

func dataMap(t *testing.T, env response.Response) map[string]any {
	t.Helper()
	data, ok := env.Data.(map[string]any)
	if !ok {
		t.Fatalf("Data is %T, want object", env.Data)
	}
	return data
}

func newTestBackend(hits *int64) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(hits, 1)
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, `<html><head><title>A small page for handler testing</title></head><body><h1>Hi</h1></body></html>`)
	})
	return httptest.NewServer(mux)
}

func TestHealthCheckHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	HealthCheckHandler(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	data := dataMap(t, decodeEnvelope(t, rec))
	if data["status"] != "ok" {
		t.Errorf("status field = %v, want ok", data["status"])
	}
}

func TestAuditHandlerValidation(t *testing.T) {
	api := New(audit.New(audit.Options{}))

	tests := []struct {
		name   string
		method string
		target string
		status int
	}{
		{"missing url", http.MethodGet, "/audit", http.StatusBadRequest},
		{"invalid url", http.MethodGet, "/audit?url=not%20a%20url", http.StatusBadRequest},
		{"bad region", http.MethodGet, "/audit?url=example.com&region=XX", http.StatusBadRequest},
		{"wrong method", http.MethodPost, "/audit?url=example.com", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			api.AuditHandler(rec, httptest.NewRequest(tt.method, tt.target, nil))
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
		})
	}
}

func TestAuditHandlerSuccess(t *testing.T) {
	var hits int64
	server := newTestBackend(&hits)
	defer server.Close()

	api := New(audit.New(audit.Options{}))
	rec := httptest.NewRecorder()
	api.AuditHandler(rec, httptest.NewRequest(http.MethodGet, "/audit?url="+server.URL, nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}

	data := dataMap(t, decodeEnvelope(t, rec))
	if data["url"] != server.URL {
		t.Errorf("url = %v, want %s", data["url"], server.URL)
	}
	if _, ok := data["overallScore"].(float64); !ok {
		t.Errorf("overallScore missing or not numeric: %v", data["overallScore"])
	}
	if data["auditRegion"] != "US" {
		t.Errorf("auditRegion = %v, want inferred US", data["auditRegion"])
	}
}

func TestAuditHandlerUsesCache(t *testing.T) {
	var hits int64
	server := newTestBackend(&hits)
	defer server.Close()

	cache.Init()
	defer func() { cache.Store = nil }()

	api := New(audit.New(audit.Options{}))

	first := httptest.NewRecorder()
	api.AuditHandler(first, httptest.NewRequest(http.MethodGet, "/audit?url="+server.URL+"&region=US", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("first call status = %d", first.Code)
	}
	fetched := atomic.LoadInt64(&hits)
	if fetched == 0 {
		t.Fatal("first audit made no backend requests")
	}

	second := httptest.NewRecorder()
	api.AuditHandler(second, httptest.NewRequest(http.MethodGet, "/audit?url="+server.URL+"&region=US", nil))
	if second.Code != http.StatusOK {
		t.Fatalf("second call status = %d", second.Code)
	}
	if after := atomic.LoadInt64(&hits); after != fetched {
		t.Errorf("cached audit hit the backend: %d requests before, %d after", fetched, after)
	}
}

func TestAuditHandlerUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	api := New(audit.New(audit.Options{}))
	rec := httptest.NewRecorder()
	api.AuditHandler(rec, httptest.NewRequest(http.MethodGet, "/audit?url="+server.URL, nil))

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502 for an unreachable page", rec.Code)
	}
}

func TestQualityHandler(t *testing.T) {
	api := New(audit.New(audit.Options{}))

	t.Run("success", func(t *testing.T) {
		body := `{"content": "# Guide\n\nShort sentences help. So do lists.", "metadata": {"title": "Guide"}}`
		rec := httptest.NewRecorder()
		api.QualityHandler(rec, httptest.NewRequest(http.MethodPost, "/content/quality", strings.NewReader(body)))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
		}
		data := dataMap(t, decodeEnvelope(t, rec))
		if _, ok := data["overallScore"].(float64); !ok {
			t.Errorf("overallScore missing: %v", data)
		}
		if grade, ok := data["grade"].(string); !ok || grade == "" {
			t.Errorf("grade missing: %v", data["grade"])
		}
	})

	t.Run("missing content", func(t *testing.T) {
		rec := httptest.NewRecorder()
		api.QualityHandler(rec, httptest.NewRequest(http.MethodPost, "/content/quality", strings.NewReader(`{}`)))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		api.QualityHandler(rec, httptest.NewRequest(http.MethodPost, "/content/quality", strings.NewReader(`{`)))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("wrong method", func(t *testing.T) {
		rec := httptest.NewRecorder()
		api.QualityHandler(rec, httptest.NewRequest(http.MethodGet, "/content/quality", nil))
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("status = %d, want 405", rec.Code)
		}
	})
}

func TestIntentHandler(t *testing.T) {
	api := New(audit.New(audit.Options{}))

	t.Run("single query", func(t *testing.T) {
		rec := httptest.NewRecorder()
		api.IntentHandler(rec, httptest.NewRequest(http.MethodPost, "/intent", strings.NewReader(`{"query": "buy espresso machine"}`)))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		data := dataMap(t, decodeEnvelope(t, rec))
		if data["primaryIntent"] != "transactional" {
			t.Errorf("primaryIntent = %v, want transactional", data["primaryIntent"])
		}
	})

	t.Run("batch", func(t *testing.T) {
		rec := httptest.NewRecorder()
		api.IntentHandler(rec, httptest.NewRequest(http.MethodPost, "/intent", strings.NewReader(`{"queries": ["how to make espresso", "buy espresso machine"]}`)))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		data := dataMap(t, decodeEnvelope(t, rec))
		results, ok := data["results"].([]any)
		if !ok || len(results) != 2 {
			t.Errorf("results = %v, want 2 entries", data["results"])
		}
		dist, ok := data["distribution"].(map[string]any)
		if !ok {
			t.Fatalf("distribution missing: %v", data["distribution"])
		}
		if dist["dominantIntent"] == "" || dist["dominantIntent"] == nil {
			t.Errorf("dominantIntent missing: %v", dist)
		}
		if n, ok := dist["totalQueries"].(float64); !ok || n != 2 {
			t.Errorf("totalQueries = %v, want 2", dist["totalQueries"])
		}
	})

	t.Run("empty body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		api.IntentHandler(rec, httptest.NewRequest(http.MethodPost, "/intent", strings.NewReader(`{}`)))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}
