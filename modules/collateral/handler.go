package collateral

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"collateral-server/modules/common/metrics"
)

type CollateralHandler struct {
	service *Service
}

func NewCollateralHandler(service *Service) *CollateralHandler {
	return &CollateralHandler{service: service}
}

// RegisterRoutes - collateral endpoints
func (h *CollateralHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/create-collateral", h.CreateCollateral).Methods("POST", "OPTIONS")
	r.HandleFunc("/refine-collateral", h.RefineCollateral).Methods("POST", "OPTIONS")
	log.Println("✅ Collateral routes registered: /create-collateral, /refine-collateral")
}

// CreateCollateral - CampaignBrief → CollateralResult
func (h *CollateralHandler) CreateCollateral(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var brief CampaignBrief
	if err := json.NewDecoder(r.Body).Decode(&brief); err != nil {
		log.Printf("❌ [Collateral] Failed to parse request: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{
			"error": "Invalid request format",
		})
		return
	}

	if brief.CoreIdea == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{
			"error": "Missing required field: core_idea",
		})
		return
	}

	result, err := h.service.GenerateCollateral(r.Context(), brief)
	if err != nil {
		log.Printf("❌ [Collateral] Generation pipeline failed: %v", err)
		metrics.RecordUpstreamError()
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(map[string]string{
			"error": "Collateral generation failed: " + err.Error(),
		})
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}

// RefineCollateral - RefinementRequest → CollateralResult
func (h *CollateralHandler) RefineCollateral(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req RefinementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ [Collateral] Failed to parse refinement request: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.service.RefineCollateral(r.Context(), req)
	if err != nil {
		log.Printf("❌ [Collateral] Refinement pipeline failed: %v", err)
		metrics.RecordUpstreamError()
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(map[string]string{
			"error": "Collateral refinement failed: " + err.Error(),
		})
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}
