package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"fin-calc/repository"
	"fin-calc/service"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, origins ...string) http.Handler {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("<html>index</html>"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "_next", "static"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "_next", "static", "app.js"), []byte("console.log(1)"), 0o644))

	cache := repository.NewNoopCache()
	handlers := Handlers{
		Mortgage:   NewMortgageHandler(service.NewMortgageService(cache, log)),
		IncomeTax:  NewIncomeTaxHandler(service.NewIncomeTaxService(cache, log)),
		Retirement: NewRetirementHandler(service.NewRetirementService(cache, log)),
		Static:     NewStaticHandler(root),
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return NewRouter(handlers, NewCORSMiddleware(origins), log)
}

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestMortgageHandler_OK(t *testing.T) {
	h := newTestRouter(t)

	w := post(t, h, "/api/mortgage", `{
		"homePrice": 300000,
		"downPayment": 60000,
		"interest": 6,
		"years": 30,
		"taxRate": 1.2,
		"insurance": 1200,
		"hoa": 50
	}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	body := decodeBody(t, w)
	assert.InDelta(t, 1438.92, body["loanPayment"], 0.01)
	assert.InDelta(t, 300.0, body["tax"], 1e-9)
	assert.InDelta(t, 100.0, body["insurance"], 1e-9)
	assert.InDelta(t, 50.0, body["hoa"], 1e-9)
	assert.InDelta(t, 1888.92, body["total"], 0.01)
}

func TestMortgageHandler_AcceptsFormStrings(t *testing.T) {
	h := newTestRouter(t)

	w := post(t, h, "/api/mortgage", `{"homePrice":"300000","downPayment":"60000","interest":"6","years":"30","taxRate":"1.2","insurance":"1200","hoa":"50"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.InDelta(t, 1888.92, decodeBody(t, w)["total"], 0.01)
}

func TestMortgageHandler_ZeroYears(t *testing.T) {
	h := newTestRouter(t)

	w := post(t, h, "/api/mortgage", `{"homePrice":1,"downPayment":0,"interest":0,"years":0,"taxRate":0,"insurance":0,"hoa":0}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "years must be greater than zero", decodeBody(t, w)["error"])
}

func TestIncomeTaxHandler_OK(t *testing.T) {
	h := newTestRouter(t)

	w := post(t, h, "/api/income-tax", `{"filingStatus":"single","income":60000,"otherIncome":0,"deductions":12000,"taxCredits":0}`)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, 5867.5, body["totalTax"])
	assert.Equal(t, 9.78, body["effectiveRate"])
	assert.Equal(t, 60000.0, body["grossIncome"])
	assert.Equal(t, 48000.0, body["taxableIncome"])
}

func TestIncomeTaxHandler_Negative(t *testing.T) {
	h := newTestRouter(t)

	w := post(t, h, "/api/income-tax", `{"filingStatus":"married","income":-1,"otherIncome":0,"deductions":0,"taxCredits":0}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, map[string]any{"error": "All inputs must be non-negative."}, decodeBody(t, w))
}

func TestRetirementHandler_OK(t *testing.T) {
	h := newTestRouter(t)

	w := post(t, h, "/api/401k", `{"currentBalance":10000,"contribution":500,"years":1,"returnRate":12,"salary":60000,"matchPercent":50,"maxMatchPercent":6}`)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.InDelta(t, 19511.88, body["futureValue"], 0.01)
	assert.InDelta(t, 150.0, body["employerMatchMonthly"], 1e-9)
	assert.Contains(t, body, "fromContributions")
	assert.Contains(t, body, "fromCurrentBalance")
}

func TestHandlers_BadRequest(t *testing.T) {
	h := newTestRouter(t)

	tests := []struct {
		name, path, body string
	}{
		{"invalid json", "/api/mortgage", `{invalid-json}`},
		{"missing field", "/api/401k", `{"currentBalance":1}`},
		{"non numeric", "/api/income-tax", `{"filingStatus":"single","income":"abc","otherIncome":0,"deductions":0,"taxCredits":0}`},
		{"negative retirement", "/api/401k", `{"currentBalance":-1,"contribution":0,"years":1,"returnRate":0,"salary":0,"matchPercent":0,"maxMatchPercent":0}`},
		{"empty body", "/api/income-tax", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(t, h, tt.path, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.NotEmpty(t, decodeBody(t, w)["error"])
		})
	}
}

func TestHandlers_BodyTooLarge(t *testing.T) {
	h := newTestRouter(t)

	big := `{"filingStatus":"` + string(bytes.Repeat([]byte("x"), maxBodyBytes)) + `"}`
	w := post(t, h, "/api/income-tax", big)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStatic_ServesExistingFile(t *testing.T) {
	h := newTestRouter(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/_next/static/app.js", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "console.log(1)", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "javascript")
}

func TestStatic_FallsBackToIndex(t *testing.T) {
	h := newTestRouter(t)

	for _, path := range []string{"/", "/mortgage", "/income-tax/", "/index.html", "/_next", "/api/mortgage"} {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, "<html>index</html>", w.Body.String(), path)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html", path)
	}
}

func TestStatic_StaysUnderRoot(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "public")
	require.NoError(t, os.MkdirAll(root, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("index"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "secret.txt"), []byte("secret"), 0o644))

	w := httptest.NewRecorder()
	NewStaticHandler(root).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/../secret.txt", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "index", w.Body.String())
}

func TestStatic_MissingBundle(t *testing.T) {
	w := httptest.NewRecorder()
	NewStaticHandler(t.TempDir()).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCORS_Preflight(t *testing.T) {
	h := newTestRouter(t, "https://app.example")

	req := httptest.NewRequest(http.MethodOptions, "/api/mortgage", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_UnknownOriginGetsNoHeaders(t *testing.T) {
	h := newTestRouter(t, "https://app.example")

	req := httptest.NewRequest(http.MethodPost, "/api/income-tax", bytes.NewBufferString(`{"filingStatus":"single","income":1,"otherIncome":0,"deductions":0,"taxCredits":0}`))
	req.Header.Set("Origin", "https://evil.example")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestLogging_PropagatesRequestID(t *testing.T) {
	h := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "req-123")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "req-123", w.Header().Get(requestIDHeader))
	assert.Equal(t, "ok", decodeBody(t, w)["status"])

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestRouter(t)
	post(t, h, "/api/income-tax", `{"filingStatus":"single","income":1,"otherIncome":0,"deductions":0,"taxCredits":0}`)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `fincalc_http_requests_total{method="POST",route="income-tax",status="200"}`)
}
