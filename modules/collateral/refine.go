package collateral

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"collateral-server/modules/common/fallback"
	"collateral-server/modules/common/gemini"
	"collateral-server/modules/common/metrics"
	"collateral-server/modules/common/utils"
)

const noBaseImageMessage = "No base image provided for image refinement. Attach the current campaign image and submit the refinement again."

// RefineCollateral - re-run only the selected sub-generators, seeded with the
// prior artifacts. Unselected artifacts pass through unchanged from the
// request. Failed refinements fall back to the prior artifact, since a prior
// good artifact beats a generic template.
func (s *Service) RefineCollateral(ctx context.Context, req RefinementRequest) (*CollateralResult, error) {
	if s.generator == nil {
		return nil, fmt.Errorf("model client is not configured")
	}

	requestID := uuid.New().String()
	elem := ParseElementType(req.ElementType)
	log.Printf("🔧 [Collateral] %s refining %s - instruction: %s", requestID, elem, truncateString(req.RefinementInstruction, 60))

	// Pass-through defaults; selected elements overwrite below.
	result := &CollateralResult{
		Layout:       req.CurrentLayout,
		Captions:     req.CurrentCaptions,
		VisualPrompt: req.CurrentVisualPrompt,
		Images:       passthroughImages(req.SampleImage),
	}

	if elem.Includes(ElementLayout) {
		result.Layout = s.refineLayout(ctx, requestID, req)
	}
	if elem.Includes(ElementCaptions) {
		result.Captions = s.refineCaptions(ctx, requestID, req)
	}
	if elem.Includes(ElementImages) {
		result.VisualPrompt, result.Images = s.refineImage(ctx, requestID, req)
	}

	log.Printf("✅ [Collateral] %s refinement assembled", requestID)
	return result, nil
}

// refineLayout - updated layout JSON; prior layout (or the fixed default when
// none exists) on any failure
func (s *Service) refineLayout(ctx context.Context, requestID string, req RefinementRequest) Layout {
	prior := req.CurrentLayout
	if prior == nil {
		prior = fallback.DefaultLayout()
	}

	prompt := BuildRefinementPrompt(req, ElementLayout)
	resp, err := s.generator.GenerateContent(ctx, s.textModel, []gemini.ContentPart{gemini.TextPart(prompt)})
	if err != nil {
		log.Printf("⚠️  [Collateral] %s layout refinement failed, keeping prior: %v", requestID, err)
		metrics.RecordFallback("layout")
		return prior
	}

	layout, ok := parseLayout(resp)
	if !ok {
		log.Printf("⚠️  [Collateral] %s layout refinement extraction failed, keeping prior", requestID)
		metrics.RecordFallback("layout")
		return prior
	}

	log.Printf("📐 [Collateral] %s layout refined", requestID)
	return layout
}

// refineCaptions - updated caption JSON; prior captions (or the fixed default
// when none exists) on any failure
func (s *Service) refineCaptions(ctx context.Context, requestID string, req RefinementRequest) Captions {
	prior := req.CurrentCaptions
	if prior == nil {
		prior = fallback.DefaultCaptions()
	}

	prompt := BuildRefinementPrompt(req, ElementCaptions)
	resp, err := s.generator.GenerateContent(ctx, s.textModel, []gemini.ContentPart{gemini.TextPart(prompt)})
	if err != nil {
		log.Printf("⚠️  [Collateral] %s caption refinement failed, keeping prior: %v", requestID, err)
		metrics.RecordFallback("captions")
		return prior
	}

	captions, ok := parseCaptions(resp)
	if !ok {
		log.Printf("⚠️  [Collateral] %s caption refinement extraction failed, keeping prior", requestID)
		metrics.RecordFallback("captions")
		return prior
	}

	log.Printf("✍️  [Collateral] %s captions refined", requestID)
	return captions
}

// refineImage - refined image seeded with the base image and, when readable,
// the reference image. Missing base image is a precondition, not an error: it
// short-circuits with an explanatory prompt and the empty-image sentinel.
func (s *Service) refineImage(ctx context.Context, requestID string, req RefinementRequest) (string, []string) {
	if req.SampleImage == "" {
		log.Printf("⚠️  [Collateral] %s image refinement requested without a base image", requestID)
		return noBaseImageMessage, fallback.EmptyImageList()
	}

	visualPrompt := BuildRefinementPrompt(req, ElementImages)

	base, err := utils.DecodeBase64Image(req.SampleImage)
	if err != nil {
		log.Printf("⚠️  [Collateral] %s base image decode failed: %v", requestID, err)
		metrics.RecordFallback("image")
		return visualPrompt, fallback.EmptyImageList()
	}

	parts := []gemini.ContentPart{
		gemini.TextPart(visualPrompt),
		gemini.ImagePart(utils.SniffMIMEType(base), base),
	}

	// A broken reference image never aborts the refinement; the call proceeds
	// with the base image alone.
	if req.ReferenceImage != "" {
		reference, err := utils.DecodeBase64Image(req.ReferenceImage)
		if err != nil {
			log.Printf("⚠️  [Collateral] %s reference image decode failed, continuing with base image alone: %v", requestID, err)
		} else {
			parts = append(parts, gemini.ImagePart(utils.SniffMIMEType(reference), reference))
			log.Printf("📎 [Collateral] %s reference image attached (%d bytes)", requestID, len(reference))
		}
	}

	resp, err := s.generator.GenerateContent(ctx, s.imageModel, parts)
	if err != nil {
		log.Printf("⚠️  [Collateral] %s image refinement failed: %v", requestID, err)
		metrics.RecordFallback("image")
		return visualPrompt, fallback.EmptyImageList()
	}

	data, ok := gemini.ExtractImage(resp)
	if !ok {
		log.Printf("⚠️  [Collateral] %s no image data in refinement response", requestID)
		metrics.RecordFallback("image")
		return visualPrompt, fallback.EmptyImageList()
	}

	log.Printf("🖼️  [Collateral] %s image refined: %d bytes", requestID, len(data))
	return visualPrompt, []string{utils.EncodeBase64Image(data)}
}

// passthroughImages - the current image artifact when one was submitted, else
// the empty-image sentinel
func passthroughImages(sampleImage string) []string {
	if sampleImage != "" {
		return []string{sampleImage}
	}
	return fallback.EmptyImageList()
}
