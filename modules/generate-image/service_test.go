package generateimage

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"collateral-server/modules/common/gemini"
)

const testImageModel = "test-image-model"

func TestGenerateImage(t *testing.T) {
	imageBytes := []byte{0x89, 0x50, 0x4e, 0x47}
	stub := &gemini.Stub{
		Handler: func(model string, parts []gemini.ContentPart) (*gemini.ModelResponse, error) {
			return &gemini.ModelResponse{Candidates: []gemini.Candidate{
				{Parts: []gemini.Part{{Text: "here you go"}, {InlineRaw: imageBytes}}},
			}}, nil
		},
	}
	svc := NewService(stub, testImageModel)

	encoded, err := svc.GenerateImage(context.Background(), "a sunrise over a hawker centre")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if encoded != base64.StdEncoding.EncodeToString(imageBytes) {
		t.Errorf("encoded = %q", encoded)
	}

	calls := stub.Calls()
	if len(calls) != 1 || calls[0].Model != testImageModel {
		t.Fatalf("calls = %+v", calls)
	}
	if calls[0].Parts[0].Text != "a sunrise over a hawker centre" {
		t.Error("prompt not sent to the model")
	}
}

func TestGenerateImageErrors(t *testing.T) {
	t.Run("upstream error", func(t *testing.T) {
		stub := &gemini.Stub{
			Handler: func(model string, parts []gemini.ContentPart) (*gemini.ModelResponse, error) {
				return nil, errors.New("upstream exploded")
			},
		}
		svc := NewService(stub, testImageModel)
		if _, err := svc.GenerateImage(context.Background(), "x"); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("text-only response", func(t *testing.T) {
		stub := &gemini.Stub{
			Handler: func(model string, parts []gemini.ContentPart) (*gemini.ModelResponse, error) {
				return &gemini.ModelResponse{Text: "I cannot draw that"}, nil
			},
		}
		svc := NewService(stub, testImageModel)
		if _, err := svc.GenerateImage(context.Background(), "x"); err == nil {
			t.Error("expected error when the model returns no image")
		}
	})

	t.Run("nil generator", func(t *testing.T) {
		svc := NewService(nil, testImageModel)
		if _, err := svc.GenerateImage(context.Background(), "x"); err == nil {
			t.Error("expected error with no generator configured")
		}
	})
}
