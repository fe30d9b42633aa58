package http

import (
	"net/http"

	"fin-calc/metrics"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// Handlers groups everything NewRouter mounts.
type Handlers struct {
	Mortgage   *MortgageHandler
	IncomeTax  *IncomeTaxHandler
	Retirement *RetirementHandler
	Static     *StaticHandler
}

// NewRouter wires the API routes, health and metrics endpoints, and the
// static frontend fallback. CORS and request logging wrap the whole router
// so preflights and unmatched requests pass through them too.
func NewRouter(h Handlers, cors *CORSMiddleware, log *logrus.Logger) http.Handler {
	r := mux.NewRouter()
	r.Use(metrics.Middleware)

	r.HandleFunc("/api/mortgage", h.Mortgage.CalculateMortgage).Methods(http.MethodPost).Name("mortgage")
	r.HandleFunc("/api/income-tax", h.IncomeTax.CalculateIncomeTax).Methods(http.MethodPost).Name("income-tax")
	r.HandleFunc("/api/401k", h.Retirement.CalculateRetirement).Methods(http.MethodPost).Name("401k")

	r.HandleFunc("/healthz", healthz).Methods(http.MethodGet).Name("healthz")
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet).Name("metrics")

	r.PathPrefix("/").Handler(h.Static).Methods(http.MethodGet, http.MethodHead).Name("static")

	return cors.Handler(RequestLogging(log)(r))
}

func healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
