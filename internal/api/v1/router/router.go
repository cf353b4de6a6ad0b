package router

import (
	"net/http"

	"seoaudit/internal/api/v1/handler"
	"seoaudit/internal/api/v1/middleware"
	"seoaudit/internal/log"
)

func New(api *handler.API) http.Handler {
	appName := "seoaudit"
	apiVersion := "v1"
	basePath := "/" + appName + "/api/" + apiVersion

	mux := http.NewServeMux()

	// Health stays open for probes; everything else sits behind auth.
	auth := middleware.BasicAuth()
	register := func(path string, h http.HandlerFunc) {
		mux.Handle(basePath+path, auth(h))
	}

	mux.HandleFunc(basePath+"/health", handler.HealthCheckHandler)
	register("/audit", api.AuditHandler)
	register("/content/quality", api.QualityHandler)
	register("/intent", api.IntentHandler)

	return middleware.RecoverPanic(
		log.Logger,
		func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		},
		middleware.SecureHeaders(
			middleware.Logging(
				middleware.MetricsMiddleware(
					middleware.Compression(
						middleware.CORS(
							middleware.RateLimit(mux),
						),
					),
				),
			),
		),
	)
}

func NewMetricsRouter() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler.MetricsHandler())
	return mux
}
