package collateral

import (
	"encoding/json"
	"fmt"

	"collateral-server/modules/common/fallback"
)

// Prompt builders are pure and deterministic: the same brief always renders
// byte-identical text. Missing optional fields render as "Not provided" so
// the model stays grounded instead of hallucinating context.

const notProvided = "Not provided"

// BuildLayoutPrompt - poster layout as strict JSON with the five fixed zones
func BuildLayoutPrompt(brief CampaignBrief) string {
	return fmt.Sprintf(
		"You are an expert print designer working for a healthcare charity in Singapore. "+
			"Design a poster layout for the campaign below.\n\n"+
			"Campaign idea: %s\n"+
			"Target audience: %s\n\n"+
			"Return ONLY a JSON object with exactly these five keys: "+
			"\"background_image\", \"headline\", \"tagline\", \"cta_text\", \"logo_area\". "+
			"Each value must be an object {\"x\": number, \"y\": number, \"width\": number, \"height\": number} "+
			"in percentage units (0-100) relative to the poster canvas. "+
			"Do not wrap the JSON in markdown fences. Do not add commentary before or after the object.",
		fallback.SafeString(brief.CoreIdea, notProvided),
		fallback.SafeString(brief.Audience, "General public"),
	)
}

// BuildCaptionPrompt - caption trio as strict JSON, style rules stated as
// instructions to the model (not validated locally)
func BuildCaptionPrompt(brief CampaignBrief) string {
	return fmt.Sprintf(
		"You are a copywriter for a healthcare charity in Singapore. "+
			"Write poster copy for the campaign below.\n\n"+
			"Campaign idea: %s\n"+
			"Target audience: %s\n"+
			"Writing style: %s\n\n"+
			"Rules:\n"+
			"- The headline must be punchy and under 8 words.\n"+
			"- The tagline must be warm and empathetic, one short sentence.\n"+
			"- The call to action must be direct and free of medical jargon.\n\n"+
			"Return ONLY a JSON object with exactly these keys: \"headline\", \"tagline\", \"cta\". "+
			"Do not wrap the JSON in markdown fences. Do not add commentary.",
		fallback.SafeString(brief.CoreIdea, notProvided),
		fallback.SafeString(brief.Audience, "General public"),
		fallback.SafeString(brief.WritingStyle, "Informative"),
	)
}

// BuildDirectImagePrompt - the fixed creative-direction template instantiated
// with the brief; always produced, even when image extraction later fails
func BuildDirectImagePrompt(brief CampaignBrief) string {
	prompt := fmt.Sprintf(
		"A photorealistic healthcare campaign photograph for a charity in Singapore.\n\n"+
			"Campaign idea: %s\n"+
			"Target audience: %s\n\n"+
			"Scene direction:\n"+
			"- Lifelike subjects: real, relatable people from the target audience, naturally posed, "+
			"not stylized or idealized.\n"+
			"- Cultural relevance: setting, wardrobe and mood that resonate with everyday life in "+
			"Singapore - HDB void decks, hawker centres, community clinics, neighbourhood parks.\n"+
			"- Lighting: soft natural daylight or warm indoor light, creating an authentic, hopeful "+
			"atmosphere.\n"+
			"- Composition: candid documentary framing, shallow depth of field, subject off-centre "+
			"with generous negative space for poster copy.\n"+
			"- Wardrobe: everyday clothing appropriate to the audience, nothing clinical unless the "+
			"scene calls for it.\n\n"+
			"Strict requirements:\n"+
			"- Do NOT render any text, lettering, watermarks or logos inside the image.\n"+
			"- Leave clean negative space where headline and call-to-action copy will be overlaid.",
		fallback.SafeString(brief.CoreIdea, notProvided),
		fallback.SafeString(brief.Audience, "General public"),
	)

	if brief.SampleImage != "" {
		prompt = "Use the attached image as visual inspiration for mood, palette and composition.\n\n" + prompt
	}

	return prompt
}

// BuildRefinementPrompt - refinement pass for one element kind. Layout and
// caption refinements embed the prior artifact verbatim and demand updated
// JSON; image refinement carries the instruction plus reference-image
// guidance without restating the full creative-direction template.
func BuildRefinementPrompt(req RefinementRequest, kind ElementType) string {
	instruction := fallback.SafeString(req.RefinementInstruction, notProvided)

	switch kind {
	case ElementLayout:
		return fmt.Sprintf(
			"You are refining the poster layout for a healthcare campaign in Singapore.\n\n"+
				"Campaign idea: %s\n"+
				"Current layout JSON:\n%s\n\n"+
				"Refinement instruction: %s\n\n"+
				"Apply the instruction to the current layout. Return ONLY the updated JSON object with "+
				"the same five keys (\"background_image\", \"headline\", \"tagline\", \"cta_text\", "+
				"\"logo_area\") and percentage coordinates. No markdown fences, no commentary.",
			fallback.SafeString(req.CoreIdea, notProvided),
			marshalArtifact(req.CurrentLayout),
			instruction,
		)

	case ElementCaptions:
		return fmt.Sprintf(
			"You are refining the poster copy for a healthcare campaign in Singapore.\n\n"+
				"Campaign idea: %s\n"+
				"Writing style: %s\n"+
				"Current captions JSON:\n%s\n\n"+
				"Refinement instruction: %s\n\n"+
				"Apply the instruction to the current captions. Return ONLY the updated JSON object with "+
				"the keys \"headline\", \"tagline\", \"cta\". No markdown fences, no commentary.",
			fallback.SafeString(req.CoreIdea, notProvided),
			fallback.SafeString(req.WritingStyle, "Informative"),
			marshalArtifact(req.CurrentCaptions),
			instruction,
		)

	default: // images
		return fmt.Sprintf(
			"Refine the attached campaign photograph.\n\n"+
				"Refinement instruction: %s\n\n"+
				"The first attached image is the current campaign photograph to refine. "+
				"If a second image is attached, treat it as a style and detail reference: borrow its "+
				"mood, palette and texture, but keep the subject and composition of the first image. "+
				"Do not render any text, lettering or logos inside the image.",
			instruction,
		)
	}
}

// marshalArtifact - prior artifact embedded verbatim; encoding/json sorts map
// keys, which keeps refinement prompts deterministic
func marshalArtifact(artifact interface{}) string {
	if artifact == nil {
		return notProvided
	}
	data, err := json.Marshal(artifact)
	if err != nil || string(data) == "null" {
		return notProvided
	}
	return string(data)
}
