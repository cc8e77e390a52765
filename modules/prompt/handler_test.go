package prompt

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"collateral-server/modules/common/gemini"
)

func TestCreatePromptEndpoint(t *testing.T) {
	stub := &gemini.Stub{
		Handler: func(model string, parts []gemini.ContentPart) (*gemini.ModelResponse, error) {
			return &gemini.ModelResponse{Text: "A photorealistic portrait of ..."}, nil
		},
	}
	r := mux.NewRouter()
	NewPromptHandler(NewService(stub, testTextModel)).RegisterRoutes(r)

	body := `{"campaign_type": "Awareness", "goal": "Drive signups"}`
	req := httptest.NewRequest("POST", "/prompt", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp PromptResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if !strings.HasPrefix(resp.RefinedPrompt, "A photorealistic") {
		t.Errorf("refined_prompt = %q", resp.RefinedPrompt)
	}
}

func TestCreatePromptBadJSON(t *testing.T) {
	r := mux.NewRouter()
	NewPromptHandler(NewService(&gemini.Stub{}, testTextModel)).RegisterRoutes(r)

	req := httptest.NewRequest("POST", "/prompt", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCreatePromptUpstreamFailure(t *testing.T) {
	// Stub with no handler yields an empty response, which the service rejects.
	r := mux.NewRouter()
	NewPromptHandler(NewService(&gemini.Stub{}, testTextModel)).RegisterRoutes(r)

	req := httptest.NewRequest("POST", "/prompt", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Prompt refinement failed") {
		t.Errorf("body = %s", rec.Body.String())
	}
}
