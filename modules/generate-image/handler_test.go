package generateimage

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"collateral-server/modules/common/gemini"
)

func newGenerateRouter(stub *gemini.Stub) *mux.Router {
	r := mux.NewRouter()
	NewGenerateHandler(NewService(stub, testImageModel)).RegisterRoutes(r)
	return r
}

func TestGenerateEndpoint(t *testing.T) {
	imageBytes := []byte{1, 2, 3}
	stub := &gemini.Stub{
		Handler: func(model string, parts []gemini.ContentPart) (*gemini.ModelResponse, error) {
			return &gemini.ModelResponse{Image: &gemini.ImagePayload{Raw: imageBytes}}, nil
		},
	}
	router := newGenerateRouter(stub)

	req := httptest.NewRequest("POST", "/generate", strings.NewReader(`{"prompt": "a sunrise"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp GenerateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.Prompt != "a sunrise" {
		t.Errorf("prompt = %q, want echo of the request", resp.Prompt)
	}
	if resp.ImageBase64 != base64.StdEncoding.EncodeToString(imageBytes) {
		t.Errorf("image_base64 = %q", resp.ImageBase64)
	}
}

func TestGenerateMissingPrompt(t *testing.T) {
	router := newGenerateRouter(&gemini.Stub{})

	req := httptest.NewRequest("POST", "/generate", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "prompt") {
		t.Errorf("body should name the missing field: %s", rec.Body.String())
	}
}

func TestGenerateBadJSON(t *testing.T) {
	router := newGenerateRouter(&gemini.Stub{})

	req := httptest.NewRequest("POST", "/generate", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGenerateUpstreamFailure(t *testing.T) {
	// Stub with no handler yields an empty response, which the service rejects.
	router := newGenerateRouter(&gemini.Stub{})

	req := httptest.NewRequest("POST", "/generate", strings.NewReader(`{"prompt": "a sunrise"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Image generation failed") {
		t.Errorf("body = %s", rec.Body.String())
	}
}
