package gemini

// The Gemini SDKs have not kept a stable response shape across versions: the
// same logical image can arrive as a direct attribute, inside a list, or
// nested under candidates[*].content.parts[*], binary or base64. ModelResponse
// is a normalized envelope over every shape we have observed, so extraction is
// pattern matching over tagged variants instead of reflection probing.

// ImagePayload - one image slot: raw bytes, a .data field (binary or base64
// text), or a nested .image variant.
type ImagePayload struct {
	Raw    []byte
	Data   []byte
	B64    string
	Nested *ImagePayload
}

// Part - one content part of a candidate.
type Part struct {
	Text      string
	InlineRaw []byte // inline_data as binary
	InlineB64 string // inline_data as base64 text
	DataB64   string // bare base64 "data" field on the part itself
}

// Candidate - one response candidate.
type Candidate struct {
	Parts []Part
}

// ModelResponse - normalized model response envelope.
type ModelResponse struct {
	Text       string
	Image      *ImagePayload
	Images     []ImagePayload
	Candidates []Candidate
}

// ContentPart - one segment of a model request: plain text or inline binary.
type ContentPart struct {
	Text     string
	MIMEType string
	Data     []byte
}

// TextPart - text request segment
func TextPart(text string) ContentPart {
	return ContentPart{Text: text}
}

// ImagePart - inline binary request segment
func ImagePart(mimeType string, data []byte) ContentPart {
	return ContentPart{MIMEType: mimeType, Data: data}
}
