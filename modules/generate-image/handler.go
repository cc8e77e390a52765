package generateimage

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"collateral-server/modules/common/metrics"
)

type GenerateHandler struct {
	service *Service
}

func NewGenerateHandler(service *Service) *GenerateHandler {
	return &GenerateHandler{service: service}
}

// RegisterRoutes - direct image generation endpoint
func (h *GenerateHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/generate", h.GenerateImage).Methods("POST", "OPTIONS")
	log.Println("✅ GenerateImage routes registered: /generate")
}

// GenerateImage - prompt → base64 image
func (h *GenerateHandler) GenerateImage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ [GenerateImage] Failed to parse request: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{
			"error": "Invalid request format",
		})
		return
	}

	if req.Prompt == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{
			"error": "Missing required field: prompt",
		})
		return
	}

	encoded, err := h.service.GenerateImage(r.Context(), req.Prompt)
	if err != nil {
		log.Printf("❌ [GenerateImage] Generation failed: %v", err)
		metrics.RecordUpstreamError()
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(map[string]string{
			"error": "Image generation failed: " + err.Error(),
		})
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(GenerateResponse{
		Prompt:      req.Prompt,
		ImageBase64: encoded,
	})
}
