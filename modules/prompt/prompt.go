package prompt

import (
	"fmt"
	"strings"

	"collateral-server/modules/common/fallback"
)

const notProvided = "Not provided"

const systemInstruction = "You are an expert creative director generating realistic and compelling visual concepts " +
	"for a healthcare charity in Singapore. Your goal is to create a detailed and realistic visual prompt for an " +
	"image generation model. The visual concept should align with the charity's mission and target audience, " +
	"focusing on health and wellness, while ensuring the visual elements are culturally relevant, appropriate for " +
	"Singapore, and have a realistic aesthetic. The final output should focus on lifelike imagery and the message " +
	"of the campaign."

// BuildRefinementInstruction - the full system+user instruction text sent to
// the text model for prompt refinement. Deterministic for identical requests.
func BuildRefinementInstruction(req PromptRequest) string {
	brief := strings.Join([]string{
		"Campaign type: " + fallback.SafeString(req.CampaignType, notProvided),
		"Campaign theme: " + fallback.SafeString(req.CampaignTheme, notProvided),
		"Target audience: " + fallback.SafeString(req.Audience, notProvided),
		"Campaign goal: " + fallback.SafeString(req.Goal, notProvided),
		"Additional context: " + fallback.SafeString(req.AdditionalContext, notProvided),
	}, "\n")

	return fmt.Sprintf(
		"%s\n\n"+
			"Campaign brief:\n%s\n\n"+
			"Based on the details provided, generate a detailed prompt that describes a realistic and lifelike "+
			"visual scene for the image generation model. The prompt should focus on natural and authentic "+
			"imagery, highlighting the campaign's goal, the target audience, and the desired tone. Ensure the "+
			"scene is realistic and culturally relevant to Singapore, with the following focus:\n"+
			"- Lifelike subjects: depict people who are realistically portrayed, not overly stylized or idealized.\n"+
			"- Cultural relevance: ensure the setting, subjects, and mood resonate with Singaporean values and everyday life.\n"+
			"- Realism: avoid anything too abstract, staged, or unrealistic. The visual should evoke naturalness, warmth, and relatability.\n"+
			"- Visual consistency: ensure that the colors, lighting, and composition maintain a sense of authenticity and realism.\n\n"+
			"Generate a realistic image prompt using the following structure, emphasizing natural, lifelike, and "+
			"culturally resonant visuals:\n\n"+
			"A photorealistic [shot type] of [subject], [action or expression], set in [environment]. The scene "+
			"is illuminated by [lighting description], creating a [mood] atmosphere. Captured with a "+
			"[camera/lens details], emphasizing [key textures and details]. The image should be in a "+
			"[aspect ratio] format.",
		systemInstruction,
		brief,
	)
}
