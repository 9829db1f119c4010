package server

import (
	"net/http"
	"path/filepath"

	"Pavement/internal/auth"
	"Pavement/internal/calc/premium/autodesign"
	"Pavement/internal/calc/premium/batch"
	"Pavement/internal/calc/premium/importer"
	"Pavement/internal/calc/premium/recommend"
	"Pavement/internal/calc/reference"
	"Pavement/internal/calc/report"
	sn "Pavement/internal/calc/sn"
	"Pavement/internal/log"
	"Pavement/internal/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

type Deps struct {
	Auth      *auth.Authenv
	Metrics   *metrics.Metrics
	Reports   *report.Writer
	Gatherer  prometheus.Gatherer
	RateLimit rate.Limit
	RateBurst int
	StaticDir string
}

func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// NewHandler wires every route and wraps the router in CORS and access logging.
func NewHandler(d Deps) http.Handler {
	r := mux.NewRouter()
	HandleList(r, d)
	return log.AccessLog(CORS(r))
}

func HandleList(r *mux.Router, d Deps) {
	gatherer := d.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy"}`))
	}).Methods("GET")
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods("GET")

	limiter := auth.NewIPRateLimiter(d.RateLimit, d.RateBurst)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", d.Auth.AuthHandler).Methods("POST")
	api.HandleFunc("/register", d.Auth.RegisterHandler).Methods("POST")
	api.HandleFunc("/logout", d.Auth.LogoutHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(d.Auth.AuthMiddleware)

	snH := &sn.Handler{Metrics: d.Metrics}
	referenceH := &reference.Handler{}
	autoH := &autodesign.Handler{Metrics: d.Metrics}
	batchH := &batch.Handler{Metrics: d.Metrics}
	importH := &importer.Handler{Metrics: d.Metrics}
	recommendH := &recommend.Handler{Metrics: d.Metrics}
	reportH := &report.Handler{Writer: d.Reports, Metrics: d.Metrics}

	secureApi.HandleFunc("/tools/sn/calc", snH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/sn/reference", referenceH.List).Methods("GET")
	secureApi.HandleFunc("/tools/sn/report/pdf", reportH.Generate).Methods("POST")
	secureApi.HandleFunc("/tools-premium/sn/autodesign", autoH.Surface).Methods("POST")
	secureApi.HandleFunc("/tools-premium/sn/recommend", recommendH.Coefficients).Methods("POST")
	secureApi.HandleFunc("/tools-premium/sn/batch", batchH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools-premium/sn/import", importH.Import).Methods("POST")
	secureApi.HandleFunc("/tools-premium/sn/export", importH.Export).Methods("POST")

	// StaticDir holds the login pages under auth/ and the calculator UI under main/.
	if d.StaticDir != "" {
		authFileServer := http.FileServer(http.Dir(filepath.Join(d.StaticDir, "auth")))
		r.PathPrefix("/auth/").
			Handler(d.Auth.RedirectIfLoggedIn(http.StripPrefix("/auth", authFileServer)))
		r.PathPrefix("/").
			Handler(http.FileServer(http.Dir(filepath.Join(d.StaticDir, "main"))))
	}
}
