package prompt

import (
	"context"
	"fmt"
	"log"

	"collateral-server/modules/common/gemini"
)

// Service - prompt refinement against the text model
type Service struct {
	generator gemini.ContentGenerator
	textModel string
}

func NewService(generator gemini.ContentGenerator, textModel string) *Service {
	return &Service{
		generator: generator,
		textModel: textModel,
	}
}

// RefinePrompt - expand a free-form brief into a finished image-generation
// prompt. Fails only when the model call fails or returns no text at all.
func (s *Service) RefinePrompt(ctx context.Context, req PromptRequest) (string, error) {
	if s.generator == nil {
		return "", fmt.Errorf("model client is not configured")
	}

	instruction := BuildRefinementInstruction(req)
	log.Printf("📤 [Prompt] Refining brief (%d chars)", len(instruction))

	resp, err := s.generator.GenerateContent(ctx, s.textModel, []gemini.ContentPart{gemini.TextPart(instruction)})
	if err != nil {
		return "", fmt.Errorf("prompt refinement failed: %w", err)
	}

	refined, ok := gemini.ExtractText(resp)
	if !ok {
		return "", fmt.Errorf("prompt refinement failed: no text in response")
	}

	log.Printf("✅ [Prompt] Brief refined (%d chars)", len(refined))
	return refined, nil
}
