package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// ContentGenerator abstracts the model call so orchestrators can be tested
// without the network.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, parts []ContentPart) (*ModelResponse, error)
}

// Client - Gemini API client with multi-key rate-limit retry
type Client struct {
	apiKeys []string
}

// NewClient - requires at least one API key
func NewClient(apiKeys []string) (*Client, error) {
	if len(apiKeys) == 0 {
		return nil, fmt.Errorf("no API keys provided")
	}
	return &Client{apiKeys: apiKeys}, nil
}

// GenerateContent - one synchronous model call, normalized into the envelope
func (c *Client) GenerateContent(ctx context.Context, model string, parts []ContentPart) (*ModelResponse, error) {
	content := &genai.Content{
		Parts: toGenaiParts(parts),
	}

	result, err := generateWithRetry(ctx, c.apiKeys, model, []*genai.Content{content}, nil)
	if err != nil {
		return nil, err
	}

	return convertResponse(result), nil
}

// toGenaiParts - request segments into SDK parts
func toGenaiParts(parts []ContentPart) []*genai.Part {
	out := make([]*genai.Part, 0, len(parts))
	for _, p := range parts {
		if p.Data != nil {
			out = append(out, &genai.Part{
				InlineData: &genai.Blob{
					MIMEType: p.MIMEType,
					Data:     p.Data,
				},
			})
			continue
		}
		out = append(out, genai.NewPartFromText(p.Text))
	}
	return out
}

// convertResponse - SDK response into the normalized envelope
func convertResponse(result *genai.GenerateContentResponse) *ModelResponse {
	resp := &ModelResponse{}
	if result == nil {
		return resp
	}

	for _, candidate := range result.Candidates {
		if candidate.Content == nil {
			continue
		}
		converted := Candidate{}
		for _, part := range candidate.Content.Parts {
			p := Part{Text: part.Text}
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				p.InlineRaw = part.InlineData.Data
			}
			converted.Parts = append(converted.Parts, p)
		}
		resp.Candidates = append(resp.Candidates, converted)
	}

	return resp
}
