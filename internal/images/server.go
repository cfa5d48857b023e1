package images

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
)

// Handler exposes URL optimization over HTTP for clients that would rather
// not carry provider knowledge themselves.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /images/optimize", h.handleOptimize)
	mux.HandleFunc("GET /images/srcset", h.handleSrcSet)
}

func (h *Handler) handleOptimize(w http.ResponseWriter, r *http.Request) {
	opts, rawURL, ok := optionsFromRequest(w, r)
	if !ok {
		return
	}
	optimized, err := OptimizedURL(rawURL, opts)
	if err != nil {
		slog.WarnContext(r.Context(), "rejecting unparseable image url", "url", rawURL, "error", err)
		http.Error(w, "unparseable url", http.StatusBadRequest)
		return
	}
	writeJSON(w, r, map[string]string{"url": optimized})
}

func (h *Handler) handleSrcSet(w http.ResponseWriter, r *http.Request) {
	opts, rawURL, ok := optionsFromRequest(w, r)
	if !ok {
		return
	}
	sizes, err := parseSizes(r.URL.Query().Get("sizes"))
	if err != nil {
		http.Error(w, "invalid sizes", http.StatusBadRequest)
		return
	}
	srcset, err := SrcSet(rawURL, opts.Context, sizes, opts.Client)
	if err != nil {
		slog.WarnContext(r.Context(), "rejecting unparseable srcset url", "url", rawURL, "error", err)
		http.Error(w, "unparseable url", http.StatusBadRequest)
		return
	}
	writeJSON(w, r, map[string]string{"srcset": srcset})
}

func optionsFromRequest(w http.ResponseWriter, r *http.Request) (Options, string, bool) {
	q := r.URL.Query()
	rawURL := q.Get("url")
	if rawURL == "" {
		http.Error(w, "missing url parameter", http.StatusBadRequest)
		return Options{}, "", false
	}
	ctx, ok := ParseContext(q.Get("context"))
	if !ok {
		http.Error(w, "unknown context", http.StatusBadRequest)
		return Options{}, "", false
	}
	network, ok := ParseNetwork(q.Get("network"))
	if !ok {
		http.Error(w, "unknown network type", http.StatusBadRequest)
		return Options{}, "", false
	}
	dpr := 1.0
	if raw := q.Get("dpr"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			http.Error(w, "invalid dpr", http.StatusBadRequest)
			return Options{}, "", false
		}
		dpr = parsed
	}
	return Options{
		Context: ctx,
		Network: network,
		DPR:     dpr,
		Client:  ClientFromRequest(r),
	}, rawURL, true
}

func parseSizes(raw string) ([]float64, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	sizes := make([]float64, 0, len(parts))
	for _, part := range parts {
		size, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, err
		}
		sizes = append(sizes, size)
	}
	return sizes, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.ErrorContext(r.Context(), "failed to encode image response", "error", err)
	}
}
