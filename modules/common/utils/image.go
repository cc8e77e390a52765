package utils

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration
	"strings"

	_ "github.com/gen2brain/webp" // WebP decoder registration
)

// DecodeBase64Image - base64 payload (with or without a data-URL prefix) into
// raw image bytes
func DecodeBase64Image(payload string) ([]byte, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil, fmt.Errorf("empty image payload")
	}

	if idx := findBase64Start(payload); idx > 0 {
		payload = payload[idx:]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 image: %w", err)
	}
	return data, nil
}

// EncodeBase64Image - raw image bytes into the base64 transport form
func EncodeBase64Image(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// SniffMIMEType - image format of raw bytes (PNG, JPEG, WebP auto-detected);
// defaults to image/png when the format is unknown, since that is what the
// model returns
func SniffMIMEType(data []byte) string {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "image/png"
	}
	switch format {
	case "jpeg":
		return "image/jpeg"
	case "webp":
		return "image/webp"
	default:
		return "image/png"
	}
}

// findBase64Start - offset past a "data:...;base64," prefix, 0 if absent
func findBase64Start(s string) int {
	marker := ";base64,"
	if idx := strings.Index(s, marker); idx >= 0 {
		return idx + len(marker)
	}
	return 0
}
