package catalog

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
)

// maxPayloadBytes bounds request bodies; backend catalog pages stay well
// under this.
const maxPayloadBytes = 8 << 20

// Handler exposes normalization over HTTP for callers that want the server
// to do the shaping (web clients, payload audits).
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /products/normalize", h.handleProducts)
	mux.HandleFunc("POST /stores/normalize", h.handleStores)
}

type normalizeResponse struct {
	Items    any `json:"items"`
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
}

func (h *Handler) handleProducts(w http.ResponseWriter, r *http.Request) {
	body, total, items := readPayload(w, r)
	if body == nil {
		return
	}
	products := make([]Product, 0, len(items))
	for _, item := range items {
		if p := NormalizeProduct(item); p != nil {
			products = append(products, *p)
		}
	}
	writeNormalized(w, r, normalizeResponse{
		Items:    products,
		Accepted: len(products),
		Rejected: total - len(products),
	})
}

func (h *Handler) handleStores(w http.ResponseWriter, r *http.Request) {
	body, total, items := readPayload(w, r)
	if body == nil {
		return
	}
	stores := make([]Store, 0, len(items))
	for _, item := range items {
		if s := NormalizeStore(item); s != nil {
			stores = append(stores, *s)
		}
	}
	writeNormalized(w, r, normalizeResponse{
		Items:    stores,
		Accepted: len(stores),
		Rejected: total - len(stores),
	})
}

// readPayload accepts a raw array or a single object and returns the
// individual records. A body that is neither still succeeds with zero
// records; that mirrors the library's never-throw contract.
func readPayload(w http.ResponseWriter, r *http.Request) ([]byte, int, []json.RawMessage) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes))
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to read normalize body", "error", err)
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return nil, 0, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err == nil && items != nil {
		return body, len(items), items
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return body, 1, []json.RawMessage{trimmed}
	}

	slog.WarnContext(r.Context(), "normalize payload was neither array nor object", "bytes", len(body))
	return body, 0, nil
}

func writeNormalized(w http.ResponseWriter, r *http.Request, resp normalizeResponse) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.ErrorContext(r.Context(), "failed to encode normalize response", "error", err)
	}
}
