package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jmylchreest/huegen/internal/colour"
	"github.com/jmylchreest/huegen/internal/palette"
	"github.com/jmylchreest/huegen/internal/store"
)

// errorResponse is the JSON body for every non-2xx answer.
type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleSchemes lists the available harmony schemes.
func (s *Server) handleSchemes(w http.ResponseWriter, _ *http.Request) {
	schemes := colour.Schemes()
	names := make([]string, len(schemes))
	for i, scheme := range schemes {
		names[i] = string(scheme)
	}
	writeJSON(w, http.StatusOK, map[string][]string{"schemes": names})
}

// generateResponse is the payload for a generated palette.
type generateResponse struct {
	Base    string           `json:"base"`
	Scheme  string           `json:"scheme"`
	Entries []colour.Entry   `json:"entries"`
	Roles   *palette.Palette `json:"roles,omitempty"`
}

// handleGenerate derives a palette from ?base=&scheme=. A base failing
// validation gets 422 with a prompt the UI can show verbatim.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	base := r.URL.Query().Get("base")
	schemeParam := r.URL.Query().Get("scheme")
	if schemeParam == "" {
		schemeParam = string(colour.SchemeAnalogous)
	}

	scheme, err := colour.ParseScheme(schemeParam)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	entries := colour.Generate(base, scheme)
	if len(entries) == 0 {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error: "please enter a valid hex colour (e.g. #4F46E5)",
		})
		return
	}

	canonical, _ := colour.CanonicalHex(base)
	writeJSON(w, http.StatusOK, generateResponse{
		Base:    canonical,
		Scheme:  string(scheme),
		Entries: entries,
		Roles:   palette.FromEntries("", entries),
	})
}

// contrastResponse is the payload for a contrast query.
type contrastResponse struct {
	A            string  `json:"a"`
	B            string  `json:"b"`
	Ratio        float64 `json:"ratio"`
	MeetsAA      bool    `json:"meetsAA"`
	MeetsAAA     bool    `json:"meetsAAA"`
	ReadableText string  `json:"readableTextOnA"`
}

// handleContrast reports the WCAG contrast ratio between ?a= and ?b=.
func (s *Server) handleContrast(w http.ResponseWriter, r *http.Request) {
	a := r.URL.Query().Get("a")
	b := r.URL.Query().Get("b")

	canonA, okA := colour.CanonicalHex(a)
	canonB, okB := colour.CanonicalHex(b)
	if !okA || !okB {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error: "both a and b must be valid hex colours (e.g. #4F46E5)",
		})
		return
	}

	ratio := colour.ContrastRatio(canonA, canonB)
	writeJSON(w, http.StatusOK, contrastResponse{
		A:            canonA,
		B:            canonB,
		Ratio:        ratio,
		MeetsAA:      ratio >= 4.5,
		MeetsAAA:     ratio >= 7.0,
		ReadableText: colour.ReadableTextColor(canonA),
	})
}

// handleList returns every stored palette.
func (s *Server) handleList(w http.ResponseWriter, _ *http.Request) {
	if s.repo == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "palette store not configured"})
		return
	}
	palettes, err := s.repo.List()
	if err != nil {
		s.logger.Error("failed to list palettes", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to list palettes"})
		return
	}
	if palettes == nil {
		palettes = []*palette.Palette{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"palettes": palettes})
}

// handleLoad returns one stored palette by name.
func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	if s.repo == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "palette store not configured"})
		return
	}
	name := r.PathValue("name")
	p, err := s.repo.Load(name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "no palette named " + name})
			return
		}
		s.logger.Error("failed to load palette", "name", name, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to load palette"})
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
