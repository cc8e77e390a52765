package generateimage

import (
	"context"
	"fmt"
	"log"

	"collateral-server/modules/common/gemini"
	"collateral-server/modules/common/utils"
)

// Service - direct text-to-image generation
type Service struct {
	generator  gemini.ContentGenerator
	imageModel string
}

func NewService(generator gemini.ContentGenerator, imageModel string) *Service {
	return &Service{
		generator:  generator,
		imageModel: imageModel,
	}
}

// GenerateImage - render a single image from the given prompt and return it
// base64 encoded. Unlike the collateral pipeline there is no fallback here:
// a response without image bytes is an error.
func (s *Service) GenerateImage(ctx context.Context, prompt string) (string, error) {
	if s.generator == nil {
		return "", fmt.Errorf("model client is not configured")
	}

	log.Printf("📤 [GenerateImage] Requesting image (%d char prompt)", len(prompt))

	resp, err := s.generator.GenerateContent(ctx, s.imageModel, []gemini.ContentPart{gemini.TextPart(prompt)})
	if err != nil {
		return "", fmt.Errorf("image generation failed: %w", err)
	}

	data, ok := gemini.ExtractImage(resp)
	if !ok {
		return "", fmt.Errorf("image generation failed: no image in response")
	}

	log.Printf("✅ [GenerateImage] Image generated (%d bytes)", len(data))
	return utils.EncodeBase64Image(data), nil
}
