package prompt

// PromptRequest - free-form brief fields; every field is optional and renders
// as "Not provided" when blank
type PromptRequest struct {
	CampaignType      string `json:"campaign_type,omitempty"`
	CampaignTheme     string `json:"campaign_theme,omitempty"`
	Audience          string `json:"audience,omitempty"`
	Goal              string `json:"goal,omitempty"`
	AdditionalContext string `json:"additional_context,omitempty"`
}

// PromptResponse - the refined image-generation prompt
type PromptResponse struct {
	RefinedPrompt string `json:"refined_prompt"`
}
