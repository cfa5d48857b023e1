package validate

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// rules maps the rule names the API accepts onto validators.
var rules = map[string]Validator{
	"share_platform": String(ValidPlatform),
	"referral_code":  String(ValidReferralCode),
	"email":          String(ValidEmail),
	"required":       Required,
}

// Handler exposes form-style validation over HTTP so web clients can reuse
// the exact server-side rules instead of reimplementing them.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /validate", h.handleValidate)
}

type validateRequest struct {
	Params map[string]any    `json:"params"`
	Rules  map[string]string `json:"rules"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	validators := make(map[string]Validator, len(req.Rules))
	for field, rule := range req.Rules {
		validator, ok := rules[rule]
		if !ok {
			http.Error(w, "unknown rule: "+rule, http.StatusBadRequest)
			return
		}
		validators[field] = validator
	}

	result := CheckParams(req.Params, validators)
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		slog.ErrorContext(r.Context(), "failed to encode validate response", "error", err)
	}
}
