package prompt

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"collateral-server/modules/common/metrics"
)

type PromptHandler struct {
	service *Service
}

func NewPromptHandler(service *Service) *PromptHandler {
	return &PromptHandler{service: service}
}

// RegisterRoutes - prompt refinement endpoint
func (h *PromptHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/prompt", h.CreatePrompt).Methods("POST", "OPTIONS")
	log.Println("✅ Prompt routes registered: /prompt")
}

// CreatePrompt - brief fields → refined prompt text
func (h *PromptHandler) CreatePrompt(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req PromptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ [Prompt] Failed to parse request: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{
			"error": "Invalid request format",
		})
		return
	}

	refined, err := h.service.RefinePrompt(r.Context(), req)
	if err != nil {
		log.Printf("❌ [Prompt] Refinement failed: %v", err)
		metrics.RecordUpstreamError()
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(map[string]string{
			"error": "Prompt refinement failed: " + err.Error(),
		})
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(PromptResponse{RefinedPrompt: refined})
}
