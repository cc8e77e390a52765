package collateral

import (
	"strings"

	"collateral-server/modules/common/fallback"
)

// Box - layout zone rectangle in percentage units (0-100) relative to the
// poster canvas
type Box = fallback.Box

// Layout - five named zones on the poster canvas
type Layout map[string]Box

// Captions - headline / tagline / cta trio
type Captions map[string]string

// CampaignBrief - user-supplied campaign description driving generation
type CampaignBrief struct {
	CoreIdea     string `json:"core_idea"`
	Audience     string `json:"audience,omitempty"`
	WritingStyle string `json:"writing_style,omitempty"`
	SampleImage  string `json:"sample_image,omitempty"` // base64 transport
}

// RefinementRequest - follow-up pass over previously generated collateral
type RefinementRequest struct {
	RefinementInstruction string   `json:"refinement_instruction"`
	ElementType           string   `json:"element_type"`
	CoreIdea              string   `json:"core_idea"`
	Audience              string   `json:"audience,omitempty"`
	WritingStyle          string   `json:"writing_style,omitempty"`
	CurrentLayout         Layout   `json:"current_layout,omitempty"`
	CurrentCaptions       Captions `json:"current_captions,omitempty"`
	CurrentVisualPrompt   string   `json:"current_visual_prompt,omitempty"`
	SampleImage           string   `json:"sample_image,omitempty"`    // artifact to refine
	ReferenceImage        string   `json:"reference_image,omitempty"` // style/detail guidance
}

// CollateralResult - the bundle produced for one brief or refinement
type CollateralResult struct {
	Layout       Layout   `json:"layout"`
	Captions     Captions `json:"captions"`
	VisualPrompt string   `json:"visual_prompt"`
	Images       []string `json:"images"`
}

// ElementType - which artifacts a refinement re-runs
type ElementType string

const (
	ElementLayout   ElementType = "layout"
	ElementCaptions ElementType = "captions"
	ElementImages   ElementType = "images"
	ElementAll      ElementType = "all"
)

// ParseElementType - case-insensitive; unknown values refine everything
// rather than rejecting the request
func ParseElementType(raw string) ElementType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "layout":
		return ElementLayout
	case "captions":
		return ElementCaptions
	case "images":
		return ElementImages
	default:
		return ElementAll
	}
}

// Includes - whether the selector covers the given element
func (e ElementType) Includes(target ElementType) bool {
	return e == ElementAll || e == target
}

// hasAllZones - generated layouts must carry all five zones
func hasAllZones(layout Layout) bool {
	for _, zone := range fallback.ZoneNames() {
		if _, ok := layout[zone]; !ok {
			return false
		}
	}
	return true
}
