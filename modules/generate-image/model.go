package generateimage

// GenerateRequest - a finished prompt for the image model
type GenerateRequest struct {
	Prompt string `json:"prompt"`
}

// GenerateResponse - echoes the prompt alongside the base64-encoded image
type GenerateResponse struct {
	Prompt      string `json:"prompt"`
	ImageBase64 string `json:"image_base64"`
}
