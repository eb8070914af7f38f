package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/huegen/internal/colour"
	"github.com/jmylchreest/huegen/internal/palette"
	"github.com/jmylchreest/huegen/internal/store"
)

func newTestServer(t *testing.T) (*Server, *store.FileStore) {
	t.Helper()
	repo, err := store.NewFileStore(t.TempDir(), hclog.NewNullLogger())
	if err != nil {
		t.Fatalf("NewFileStore() error: %v", err)
	}
	return New(":0", repo, hclog.NewNullLogger()), repo
}

func doRequest(t *testing.T, s *Server, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /healthz = %d, want 200", rec.Code)
	}
}

func TestSchemes(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/api/v1/schemes")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/v1/schemes = %d, want 200", rec.Code)
	}

	var body struct {
		Schemes []string `json:"schemes"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body.Schemes) != len(colour.Schemes()) {
		t.Errorf("got %d schemes, want %d", len(body.Schemes), len(colour.Schemes()))
	}
}

func TestGenerate(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/api/v1/palette?base=%234F46E5&scheme=triadic")
	if rec.Code != http.StatusOK {
		t.Fatalf("generate = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	var body struct {
		Base    string         `json:"base"`
		Scheme  string         `json:"scheme"`
		Entries []colour.Entry `json:"entries"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Base != "#4F46E5" {
		t.Errorf("base = %q, want #4F46E5", body.Base)
	}
	if body.Scheme != "triadic" {
		t.Errorf("scheme = %q, want triadic", body.Scheme)
	}
	if len(body.Entries) != 7 {
		t.Errorf("entries = %d, want 7", len(body.Entries))
	}
}

func TestGenerateInvalidBase(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/api/v1/palette?base=blue&scheme=triadic")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("generate with bad base = %d, want 422", rec.Code)
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Error == "" {
		t.Error("422 response carries no user-facing prompt")
	}
}

func TestGenerateUnknownScheme(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/api/v1/palette?base=%23FF0000&scheme=pentadic")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("generate with unknown scheme = %d, want 400", rec.Code)
	}
}

func TestContrast(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/api/v1/contrast?a=%23000000&b=%23FFFFFF")
	if rec.Code != http.StatusOK {
		t.Fatalf("contrast = %d, want 200", rec.Code)
	}

	var body struct {
		Ratio    float64 `json:"ratio"`
		MeetsAA  bool    `json:"meetsAA"`
		MeetsAAA bool    `json:"meetsAAA"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Ratio < 20.99 || body.Ratio > 21.01 {
		t.Errorf("ratio = %f, want 21", body.Ratio)
	}
	if !body.MeetsAA || !body.MeetsAAA {
		t.Error("black on white should meet AA and AAA")
	}
}

func TestContrastInvalid(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/api/v1/contrast?a=blue&b=%23FFFFFF")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("contrast with bad colour = %d, want 422", rec.Code)
	}
}

func TestListAndLoadPalettes(t *testing.T) {
	s, repo := newTestServer(t)

	p := palette.FromEntries("stored", colour.Generate("#336699", colour.SchemeTriadic))
	if err := repo.Save(p); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	rec := doRequest(t, s, http.MethodGet, "/api/v1/palettes")
	if rec.Code != http.StatusOK {
		t.Fatalf("list = %d, want 200", rec.Code)
	}
	var listBody struct {
		Palettes []palette.Palette `json:"palettes"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &listBody); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(listBody.Palettes) != 1 || listBody.Palettes[0].Name != "stored" {
		t.Errorf("list = %+v, want one palette named stored", listBody.Palettes)
	}

	rec = doRequest(t, s, http.MethodGet, "/api/v1/palettes/stored")
	if rec.Code != http.StatusOK {
		t.Fatalf("load = %d, want 200", rec.Code)
	}

	rec = doRequest(t, s, http.MethodGet, "/api/v1/palettes/missing")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("load missing = %d, want 404", rec.Code)
	}
}

func TestCORSHeaders(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/api/v1/schemes")
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}

	rec = doRequest(t, s, http.MethodOptions, "/api/v1/schemes")
	if rec.Code != http.StatusNoContent {
		t.Errorf("OPTIONS preflight = %d, want 204", rec.Code)
	}
}
