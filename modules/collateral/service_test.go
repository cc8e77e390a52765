package collateral

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"collateral-server/modules/common/fallback"
	"collateral-server/modules/common/gemini"
)

const (
	testTextModel  = "test-text-model"
	testImageModel = "test-image-model"
)

// scriptedStub - routes stub responses by model and prompt content
func scriptedStub(layoutJSON, captionJSON string, imageBytes []byte) *gemini.Stub {
	return &gemini.Stub{
		Handler: func(model string, parts []gemini.ContentPart) (*gemini.ModelResponse, error) {
			if model == testImageModel {
				if imageBytes == nil {
					return &gemini.ModelResponse{Text: "no image for you"}, nil
				}
				return &gemini.ModelResponse{Candidates: []gemini.Candidate{
					{Parts: []gemini.Part{{InlineRaw: imageBytes}}},
				}}, nil
			}
			if strings.Contains(parts[0].Text, "copywriter") || strings.Contains(parts[0].Text, "poster copy") {
				return &gemini.ModelResponse{Text: captionJSON}, nil
			}
			return &gemini.ModelResponse{Text: layoutJSON}, nil
		},
	}
}

const validLayoutJSON = `{
	"background_image": {"x": 0, "y": 0, "width": 100, "height": 100},
	"headline": {"x": 5, "y": 5, "width": 90, "height": 20},
	"tagline": {"x": 5, "y": 30, "width": 90, "height": 10},
	"cta_text": {"x": 20, "y": 70, "width": 60, "height": 12},
	"logo_area": {"x": 40, "y": 85, "width": 20, "height": 10}
}`

const validCaptionJSON = `{"headline": "Get Screened", "tagline": "It takes ten minutes", "cta": "Book now"}`

func TestGenerateCollateralHappyPath(t *testing.T) {
	imageBytes := []byte{0x89, 0x50, 0x4e, 0x47}
	stub := scriptedStub(validLayoutJSON, validCaptionJSON, imageBytes)
	svc := NewService(stub, testTextModel, testImageModel)

	result, err := svc.GenerateCollateral(context.Background(), CampaignBrief{CoreIdea: "Free screening"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Layout["headline"].Width != 90 {
		t.Errorf("layout not taken from model: %+v", result.Layout["headline"])
	}
	if result.Captions["headline"] != "Get Screened" {
		t.Errorf("captions not taken from model: %v", result.Captions)
	}
	if len(result.Images) != 1 || result.Images[0] != base64.StdEncoding.EncodeToString(imageBytes) {
		t.Errorf("image not base64 of model bytes: %v", result.Images)
	}
	if !strings.Contains(result.VisualPrompt, "Free screening") {
		t.Error("visual prompt missing campaign idea")
	}
}

func TestGenerateCollateralGarbageFallsBackEverywhere(t *testing.T) {
	stub := &gemini.Stub{
		Handler: func(model string, parts []gemini.ContentPart) (*gemini.ModelResponse, error) {
			return &gemini.ModelResponse{Text: "I'm sorry, I cannot produce JSON today."}, nil
		},
	}
	svc := NewService(stub, testTextModel, testImageModel)

	result, err := svc.GenerateCollateral(context.Background(), CampaignBrief{CoreIdea: "Free screening"})
	if err != nil {
		t.Fatalf("fallbacks must absorb failures, got error: %v", err)
	}

	wantLayout := fallback.DefaultLayout()
	for zone, box := range wantLayout {
		if result.Layout[zone] != box {
			t.Errorf("zone %q = %+v, want default %+v", zone, result.Layout[zone], box)
		}
	}
	if result.Captions["headline"] != fallback.DefaultCaptions()["headline"] {
		t.Errorf("captions = %v, want defaults", result.Captions)
	}
	if len(result.Images) != 1 || result.Images[0] != "" {
		t.Errorf("images = %v, want the empty sentinel", result.Images)
	}
	if result.VisualPrompt == "" {
		t.Error("visual prompt must be produced even when everything falls back")
	}
}

func TestGenerateCollateralModelErrorFallsBack(t *testing.T) {
	stub := &gemini.Stub{
		Handler: func(model string, parts []gemini.ContentPart) (*gemini.ModelResponse, error) {
			return nil, errors.New("upstream exploded")
		},
	}
	svc := NewService(stub, testTextModel, testImageModel)

	result, err := svc.GenerateCollateral(context.Background(), CampaignBrief{CoreIdea: "Free screening"})
	if err != nil {
		t.Fatalf("fallbacks must absorb failures, got error: %v", err)
	}
	if len(result.Layout) == 0 || len(result.Captions) == 0 {
		t.Error("expected default layout and captions")
	}
}

func TestGenerateCollateralIncompleteLayoutRejected(t *testing.T) {
	// Missing logo_area, so the default layout must be substituted.
	partial := `{
		"background_image": {"x": 0, "y": 0, "width": 100, "height": 100},
		"headline": {"x": 5, "y": 5, "width": 90, "height": 20},
		"tagline": {"x": 5, "y": 30, "width": 90, "height": 10},
		"cta_text": {"x": 20, "y": 70, "width": 60, "height": 12}
	}`
	stub := scriptedStub(partial, validCaptionJSON, nil)
	svc := NewService(stub, testTextModel, testImageModel)

	result, err := svc.GenerateCollateral(context.Background(), CampaignBrief{CoreIdea: "Free screening"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Layout["headline"] != fallback.DefaultLayout()["headline"] {
		t.Errorf("incomplete layout should be replaced by the default, got %+v", result.Layout)
	}
}

func TestGenerateCollateralJSONInsideProse(t *testing.T) {
	wrapped := "Here is your layout:\n```json\n" + validLayoutJSON + "\n```\nLet me know if you need changes."
	stub := scriptedStub(wrapped, validCaptionJSON, nil)
	svc := NewService(stub, testTextModel, testImageModel)

	result, err := svc.GenerateCollateral(context.Background(), CampaignBrief{CoreIdea: "Free screening"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Layout["headline"].Width != 90 {
		t.Errorf("layout inside prose not extracted: %+v", result.Layout["headline"])
	}
}

func TestGenerateCollateralModelRouting(t *testing.T) {
	stub := scriptedStub(validLayoutJSON, validCaptionJSON, []byte{1, 2, 3})
	svc := NewService(stub, testTextModel, testImageModel)

	if _, err := svc.GenerateCollateral(context.Background(), CampaignBrief{CoreIdea: "Free screening"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var textCalls, imageCalls int
	for _, call := range stub.Calls() {
		switch call.Model {
		case testTextModel:
			textCalls++
		case testImageModel:
			imageCalls++
		default:
			t.Errorf("unexpected model %q", call.Model)
		}
	}
	if textCalls != 2 {
		t.Errorf("text model called %d times, want 2", textCalls)
	}
	if imageCalls != 1 {
		t.Errorf("image model called %d times, want 1", imageCalls)
	}
}

func TestGenerateCollateralAttachesSampleImage(t *testing.T) {
	sample := []byte{0xde, 0xad, 0xbe, 0xef}
	stub := scriptedStub(validLayoutJSON, validCaptionJSON, []byte{1})
	svc := NewService(stub, testTextModel, testImageModel)

	brief := CampaignBrief{
		CoreIdea:    "Free screening",
		SampleImage: base64.StdEncoding.EncodeToString(sample),
	}
	if _, err := svc.GenerateCollateral(context.Background(), brief); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, call := range stub.Calls() {
		if call.Model != testImageModel {
			continue
		}
		if len(call.Parts) != 2 {
			t.Fatalf("image call has %d parts, want text + sample image", len(call.Parts))
		}
		if string(call.Parts[1].Data) != string(sample) {
			t.Error("sample image bytes not attached")
		}
	}
}

func TestGenerateCollateralBadSampleImageIgnored(t *testing.T) {
	stub := scriptedStub(validLayoutJSON, validCaptionJSON, []byte{1})
	svc := NewService(stub, testTextModel, testImageModel)

	brief := CampaignBrief{CoreIdea: "Free screening", SampleImage: "!!not base64!!"}
	result, err := svc.GenerateCollateral(context.Background(), brief)
	if err != nil {
		t.Fatalf("a broken sample image must not abort generation: %v", err)
	}
	if result.Images[0] == "" {
		t.Error("generation should proceed without the sample image")
	}

	for _, call := range stub.Calls() {
		if call.Model == testImageModel && len(call.Parts) != 1 {
			t.Errorf("image call has %d parts, want text only", len(call.Parts))
		}
	}
}

func TestGenerateCollateralNilGenerator(t *testing.T) {
	svc := NewService(nil, testTextModel, testImageModel)
	if _, err := svc.GenerateCollateral(context.Background(), CampaignBrief{CoreIdea: "x"}); err == nil {
		t.Error("expected error with no generator configured")
	}
}
