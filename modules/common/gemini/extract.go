package gemini

import (
	"encoding/base64"
	"strings"
)

// ExtractText - prefer the top-level text field; otherwise concatenate all
// part texts across candidates in order. Returns false only when both are
// empty.
func ExtractText(resp *ModelResponse) (string, bool) {
	if resp == nil {
		return "", false
	}

	if strings.TrimSpace(resp.Text) != "" {
		return strings.TrimSpace(resp.Text), true
	}

	var fragments []string
	for _, candidate := range resp.Candidates {
		for _, part := range candidate.Parts {
			if part.Text != "" {
				fragments = append(fragments, part.Text)
			}
		}
	}

	if len(fragments) == 0 {
		return "", false
	}
	return strings.TrimSpace(strings.Join(fragments, "\n")), true
}

// ExtractJSONObject - greedy span from the first '{' to the last '}' in the
// text. Tolerates prose and markdown fences around the object; a caption
// containing a literal brace will mis-span, and the caller's fallback absorbs
// the resulting parse failure.
func ExtractJSONObject(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// imageStrategy - one shape probe, tried in priority order.
type imageStrategy func(*ModelResponse) ([]byte, bool)

var imageStrategies = []imageStrategy{
	directImage,
	imageList,
	inlineParts,
}

// ExtractImage - first decodable image found across the known response
// shapes, or false when every avenue is exhausted.
func ExtractImage(resp *ModelResponse) ([]byte, bool) {
	if resp == nil {
		return nil, false
	}
	for _, strategy := range imageStrategies {
		if data, ok := strategy(resp); ok {
			return data, true
		}
	}
	return nil, false
}

// directImage - a single top-level image payload
func directImage(resp *ModelResponse) ([]byte, bool) {
	if resp.Image == nil {
		return nil, false
	}
	return resolvePayload(resp.Image)
}

// imageList - a list of image payloads, first decodable wins
func imageList(resp *ModelResponse) ([]byte, bool) {
	for i := range resp.Images {
		if data, ok := resolvePayload(&resp.Images[i]); ok {
			return data, true
		}
	}
	return nil, false
}

// inlineParts - candidates[*].content.parts[*] inline data, binary or base64
func inlineParts(resp *ModelResponse) ([]byte, bool) {
	for _, candidate := range resp.Candidates {
		for _, part := range candidate.Parts {
			if len(part.InlineRaw) > 0 {
				return part.InlineRaw, true
			}
			if data, ok := decodeBase64(part.InlineB64); ok {
				return data, true
			}
			if data, ok := decodeBase64(part.DataB64); ok {
				return data, true
			}
		}
	}
	return nil, false
}

// resolvePayload - Raw, then .data (binary or base64), then the nested .image
// variant. Base64 decode failures are swallowed so the search can continue.
func resolvePayload(p *ImagePayload) ([]byte, bool) {
	if p == nil {
		return nil, false
	}
	if len(p.Raw) > 0 {
		return p.Raw, true
	}
	if len(p.Data) > 0 {
		return p.Data, true
	}
	if data, ok := decodeBase64(p.B64); ok {
		return data, true
	}
	if p.Nested != nil {
		return resolvePayload(p.Nested)
	}
	return nil, false
}

func decodeBase64(s string) ([]byte, bool) {
	if s == "" {
		return nil, false
	}
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, false
	}
	return data, true
}
