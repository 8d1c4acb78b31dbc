package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"inkwheel/internal/colormath"
	"inkwheel/internal/harmony"
	"inkwheel/internal/palette"
)

// ColorView is the wire representation of one color in every model
// the API speaks.
type ColorView struct {
	CMYK colormath.CMYK `json:"cmyk"`
	RGB  colormath.RGB  `json:"rgb"`
	HSL  colormath.HSL  `json:"hsl"`
	Hex  string         `json:"hex"`
}

// viewOf expands a CMYK color into all representations
func viewOf(c colormath.CMYK) ColorView {
	rgb := c.RGB()
	return ColorView{
		CMYK: c,
		RGB:  rgb,
		HSL:  rgb.HSL(),
		Hex:  rgb.Hex(),
	}
}

// HarmonyResponse is the JSON response for /api/harmony
type HarmonyResponse struct {
	Method harmony.Kind `json:"method"`
	Colors []ColorView  `json:"colors"`
}

// MixResponse is the JSON response for /api/mix
type MixResponse struct {
	A     ColorView `json:"a"`
	B     ColorView `json:"b"`
	Mixed ColorView `json:"mixed"`
}

// PaletteRequest is the accepted body for PUT /api/palettes/{name}
type PaletteRequest struct {
	Colors []colormath.CMYK `json:"colors"`
	Method string           `json:"method"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// handleHarmony serves GET /api/harmony?base=c,m,y,k&kind=K
func (s *Server) handleHarmony(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	base, err := colormath.ParseCMYK(r.URL.Query().Get("base"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "base: "+err.Error())
		return
	}
	kind, err := harmony.ParseKind(r.URL.Query().Get("kind"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	colors := harmony.Generate(base, kind)
	MetricHarmoniesTotal.WithLabelValues(string(kind)).Inc()

	views := make([]ColorView, len(colors))
	for i, c := range colors {
		views[i] = viewOf(c)
	}
	writeJSON(w, http.StatusOK, HarmonyResponse{Method: kind, Colors: views})
}

// handleMix serves GET /api/mix?a=c,m,y,k&b=c,m,y,k
func (s *Server) handleMix(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	a, err := colormath.ParseCMYK(r.URL.Query().Get("a"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "a: "+err.Error())
		return
	}
	b, err := colormath.ParseCMYK(r.URL.Query().Get("b"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "b: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, MixResponse{
		A:     viewOf(a),
		B:     viewOf(b),
		Mixed: viewOf(colormath.Mix(a, b)),
	})
}

// handleConvert serves GET /api/convert with either ?cmyk=c,m,y,k or
// ?hex=rrggbb
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := r.URL.Query()
	switch {
	case q.Get("cmyk") != "":
		c, err := colormath.ParseCMYK(q.Get("cmyk"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "cmyk: "+err.Error())
			return
		}
		writeJSON(w, http.StatusOK, viewOf(c))
	case q.Get("hex") != "":
		rgb, err := colormath.ParseHex(q.Get("hex"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "hex: "+err.Error())
			return
		}
		writeJSON(w, http.StatusOK, viewOf(rgb.CMYK()))
	default:
		writeError(w, http.StatusBadRequest, "pass either cmyk=c,m,y,k or hex=rrggbb")
	}
}

// handlePalettes serves GET /api/palettes (the whole collection)
func (s *Server) handlePalettes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	palettes, err := s.Store.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	MetricPaletteOps.WithLabelValues("list").Inc()

	// Empty collection renders as [] rather than null
	if palettes == nil {
		palettes = []palette.Palette{}
	}
	writeJSON(w, http.StatusOK, palettes)
}

// handlePalette serves GET/PUT/DELETE /api/palettes/{name}
func (s *Server) handlePalette(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/api/palettes/")
	if name == "" {
		writeError(w, http.StatusBadRequest, "palette name is required")
		return
	}

	switch r.Method {
	case http.MethodGet:
		p, err := s.Store.Get(name)
		if errors.Is(err, palette.ErrNotFound) {
			writeError(w, http.StatusNotFound, "no palette named "+name)
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		MetricPaletteOps.WithLabelValues("get").Inc()
		writeJSON(w, http.StatusOK, p)

	case http.MethodPut:
		if !s.authorize(w, r) {
			return
		}

		var req PaletteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
			return
		}
		if len(req.Colors) == 0 {
			writeError(w, http.StatusBadRequest, "colors must not be empty")
			return
		}
		kind, err := harmony.ParseKind(req.Method)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		colors := make([]colormath.CMYK, len(req.Colors))
		for i, c := range req.Colors {
			colors[i] = c.Clamp()
		}

		p := palette.New(name, colors, kind)
		if err := s.Store.Put(p); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		MetricPaletteOps.WithLabelValues("put").Inc()
		writeJSON(w, http.StatusOK, p)

	case http.MethodDelete:
		if !s.authorize(w, r) {
			return
		}

		err := s.Store.Delete(name)
		if errors.Is(err, palette.ErrNotFound) {
			writeError(w, http.StatusNotFound, "no palette named "+name)
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		MetricPaletteOps.WithLabelValues("delete").Inc()
		w.WriteHeader(http.StatusNoContent)

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// authorize enforces basic auth + rate limits on mutating endpoints
// when a user store is configured. Without one the API is open.
func (s *Server) authorize(w http.ResponseWriter, r *http.Request) bool {
	if s.UserStore == nil {
		return true
	}

	username, password, ok := r.BasicAuth()
	if !ok || !s.UserStore.Authenticate(username, password) {
		MetricAuthFailures.Inc()
		w.Header().Set("WWW-Authenticate", `Basic realm="inkwheel"`)
		writeError(w, http.StatusUnauthorized, "authentication required")
		return false
	}
	if !s.UserStore.Allow(username) {
		writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
		return false
	}
	return true
}
