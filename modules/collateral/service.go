package collateral

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"collateral-server/modules/common/fallback"
	"collateral-server/modules/common/gemini"
	"collateral-server/modules/common/metrics"
	"collateral-server/modules/common/utils"
)

// Service - collateral generation and refinement orchestrator. Holds only the
// injected model client and the two configured model IDs; no state survives a
// request.
type Service struct {
	generator  gemini.ContentGenerator
	textModel  string
	imageModel string
}

// NewService - service with an injected content generator
func NewService(generator gemini.ContentGenerator, textModel, imageModel string) *Service {
	return &Service{
		generator:  generator,
		textModel:  textModel,
		imageModel: imageModel,
	}
}

// GenerateCollateral - run the three generation steps (layout, captions,
// image) concurrently. Every step absorbs its own failures into a
// deterministic fallback; the combined result is returned even if all three
// fell back. Only a broken orchestration harness surfaces an error.
func (s *Service) GenerateCollateral(ctx context.Context, brief CampaignBrief) (*CollateralResult, error) {
	if s.generator == nil {
		return nil, fmt.Errorf("model client is not configured")
	}

	requestID := uuid.New().String()
	log.Printf("🎨 [Collateral] %s generating collateral - idea: %s", requestID, truncateString(brief.CoreIdea, 60))

	result := &CollateralResult{
		VisualPrompt: BuildDirectImagePrompt(brief),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		result.Layout = s.generateLayout(gctx, requestID, brief)
		return nil
	})
	g.Go(func() error {
		result.Captions = s.generateCaptions(gctx, requestID, brief)
		return nil
	})
	g.Go(func() error {
		result.Images = s.generateImage(gctx, requestID, brief, result.VisualPrompt)
		return nil
	})

	// Steps never return errors; Wait only collects them.
	_ = g.Wait()

	log.Printf("✅ [Collateral] %s collateral assembled (images: %d)", requestID, len(result.Images))
	return result, nil
}

// generateLayout - layout JSON from the text model, default layout on any failure
func (s *Service) generateLayout(ctx context.Context, requestID string, brief CampaignBrief) Layout {
	prompt := BuildLayoutPrompt(brief)

	resp, err := s.generator.GenerateContent(ctx, s.textModel, []gemini.ContentPart{gemini.TextPart(prompt)})
	if err != nil {
		log.Printf("⚠️  [Collateral] %s layout generation failed, using default: %v", requestID, err)
		metrics.RecordFallback("layout")
		return fallback.DefaultLayout()
	}

	layout, ok := parseLayout(resp)
	if !ok {
		log.Printf("⚠️  [Collateral] %s layout extraction failed, using default", requestID)
		metrics.RecordFallback("layout")
		return fallback.DefaultLayout()
	}

	log.Printf("📐 [Collateral] %s layout generated", requestID)
	return layout
}

// generateCaptions - caption JSON from the text model, default trio on any failure
func (s *Service) generateCaptions(ctx context.Context, requestID string, brief CampaignBrief) Captions {
	prompt := BuildCaptionPrompt(brief)

	resp, err := s.generator.GenerateContent(ctx, s.textModel, []gemini.ContentPart{gemini.TextPart(prompt)})
	if err != nil {
		log.Printf("⚠️  [Collateral] %s caption generation failed, using default: %v", requestID, err)
		metrics.RecordFallback("captions")
		return fallback.DefaultCaptions()
	}

	captions, ok := parseCaptions(resp)
	if !ok {
		log.Printf("⚠️  [Collateral] %s caption extraction failed, using default", requestID)
		metrics.RecordFallback("captions")
		return fallback.DefaultCaptions()
	}

	log.Printf("✍️  [Collateral] %s captions generated", requestID)
	return captions
}

// generateImage - campaign image from the image model, empty-string sentinel
// on any failure
func (s *Service) generateImage(ctx context.Context, requestID string, brief CampaignBrief, visualPrompt string) []string {
	parts := []gemini.ContentPart{gemini.TextPart(visualPrompt)}

	if brief.SampleImage != "" {
		sample, err := utils.DecodeBase64Image(brief.SampleImage)
		if err != nil {
			log.Printf("⚠️  [Collateral] %s sample image decode failed, generating without it: %v", requestID, err)
		} else {
			parts = append(parts, gemini.ImagePart(utils.SniffMIMEType(sample), sample))
		}
	}

	resp, err := s.generator.GenerateContent(ctx, s.imageModel, parts)
	if err != nil {
		log.Printf("⚠️  [Collateral] %s image generation failed: %v", requestID, err)
		metrics.RecordFallback("image")
		return fallback.EmptyImageList()
	}

	data, ok := gemini.ExtractImage(resp)
	if !ok {
		log.Printf("⚠️  [Collateral] %s no image data in response", requestID)
		metrics.RecordFallback("image")
		return fallback.EmptyImageList()
	}

	log.Printf("🖼️  [Collateral] %s image generated: %d bytes", requestID, len(data))
	return []string{utils.EncodeBase64Image(data)}
}

// parseLayout - extracted JSON span into a Layout; all five zones required
func parseLayout(resp *gemini.ModelResponse) (Layout, bool) {
	text, ok := gemini.ExtractText(resp)
	if !ok {
		return nil, false
	}
	span, ok := gemini.ExtractJSONObject(text)
	if !ok {
		return nil, false
	}

	var layout Layout
	if err := json.Unmarshal([]byte(span), &layout); err != nil {
		return nil, false
	}
	if !hasAllZones(layout) {
		return nil, false
	}
	return layout, true
}

// parseCaptions - extracted JSON span into Captions
func parseCaptions(resp *gemini.ModelResponse) (Captions, bool) {
	text, ok := gemini.ExtractText(resp)
	if !ok {
		return nil, false
	}
	span, ok := gemini.ExtractJSONObject(text)
	if !ok {
		return nil, false
	}

	var captions Captions
	if err := json.Unmarshal([]byte(span), &captions); err != nil {
		return nil, false
	}
	if len(captions) == 0 {
		return nil, false
	}
	return captions, true
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
