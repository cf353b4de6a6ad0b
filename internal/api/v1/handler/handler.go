package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"seoaudit/internal/api/v1/middleware"
	"seoaudit/internal/audit"
	"seoaudit/internal/cache"
	"seoaudit/internal/intent"
	"seoaudit/internal/model"
	"seoaudit/internal/quality"
	"seoaudit/internal/util"
	"seoaudit/pkg/response"
)

// API bundles the handlers with the services they call.
type API struct {
	engine *audit.Engine
	intent *intent.Analyzer
}

func New(engine *audit.Engine) *API {
	return &API{
		engine: engine,
		intent: intent.New(),
	}
}

func HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "ok"}
	w.Header().Set("Content-Type", "application/json")
	response.Success(w, resp, "")
}

// AuditHandler runs a technical audit for the url query parameter,
// serving a cached result when one exists for the url+region pair.
func (a *API) AuditHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	url := r.URL.Query().Get("url")
	if url == "" {
		response.Error(w, http.StatusBadRequest, "missing 'url' query parameter")
		return
	}
	if !util.IsValidURL(url) {
		response.Error(w, http.StatusBadRequest, "invalid 'url' format")
		return
	}

	region := r.URL.Query().Get("region")
	if region != "" && !audit.SupportedRegion(region) {
		response.Error(w, http.StatusBadRequest, "unsupported 'region' code")
		return
	}

	if cache.Store != nil {
		if cached, ok := cache.Store.Get(cache.Key(audit.NormalizeURL(url), region)); ok {
			middleware.CountAudit("cached")
			w.Header().Set("Content-Type", "application/json")
			response.Success(w, cached.(*model.AuditResult), "")
			return
		}
	}

	result, err := a.engine.Run(r.Context(), url, region)
	if err != nil {
		middleware.CountAudit("fetch_error")

		var fetchErr *audit.FetchError
		statusCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			statusCode = http.StatusGatewayTimeout
		case errors.As(err, &fetchErr):
			statusCode = http.StatusBadGateway
		}
		response.Error(w, statusCode, fmt.Sprintf("failed to audit page: %v", err))
		return
	}

	middleware.CountAudit("ok")
	if cache.Store != nil {
		cache.Store.SetDefault(cache.Key(result.URL, region), result)
	}

	w.Header().Set("Content-Type", "application/json")
	response.Success(w, result, "")
}

type qualityRequest struct {
	Content  string           `json:"content"`
	Metadata quality.Metadata `json:"metadata"`
}

// QualityHandler scores a piece of raw content text.
func (a *API) QualityHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req qualityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Content == "" {
		response.Error(w, http.StatusBadRequest, "missing 'content'")
		return
	}

	result := quality.Check(req.Content, req.Metadata)
	w.Header().Set("Content-Type", "application/json")
	response.Success(w, result, "")
}

type intentRequest struct {
	Query   string   `json:"query"`
	Queries []string `json:"queries"`
}

type intentBatchResponse struct {
	Results      []intent.Analysis   `json:"results"`
	Distribution intent.Distribution `json:"distribution"`
}

// IntentHandler classifies one query or a batch of queries.
func (a *API) IntentHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req intentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	switch {
	case len(req.Queries) > 0:
		response.Success(w, intentBatchResponse{
			Results:      a.intent.AnalyzeBatch(req.Queries),
			Distribution: a.intent.Distribution(req.Queries),
		}, "")
	case req.Query != "":
		response.Success(w, a.intent.Analyze(req.Query), "")
	default:
		response.Error(w, http.StatusBadRequest, "missing 'query' or 'queries'")
	}
}

func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
