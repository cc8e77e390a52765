package gemini

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"google.golang.org/genai"
)

const maxRetriesPerKey = 3

// generateWithRetry - try each API key in order, up to 3 attempts per key on
// 429 rate limits. Non-429 errors return immediately.
func generateWithRetry(
	ctx context.Context,
	apiKeys []string,
	model string,
	contents []*genai.Content,
	config *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {

	if len(apiKeys) == 0 {
		return nil, fmt.Errorf("no API keys provided")
	}

	var lastErr error

	for keyIndex, apiKey := range apiKeys {
		for attempt := 1; attempt <= maxRetriesPerKey; attempt++ {
			if attempt > 1 {
				log.Printf("   🔄 [Gemini] Retry attempt %d/%d for key #%d", attempt, maxRetriesPerKey, keyIndex+1)
			}

			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				log.Printf("⚠️  [Gemini] Failed to create client with key #%d: %v", keyIndex+1, err)
				lastErr = err
				continue
			}

			result, err := client.Models.GenerateContent(ctx, model, contents, config)
			if err == nil {
				return result, nil
			}

			lastErr = err

			if !is429Error(err) {
				return nil, err
			}

			log.Printf("⚠️  [Gemini] Key #%d hit rate limit (429) on attempt %d/%d", keyIndex+1, attempt, maxRetriesPerKey)
			if attempt < maxRetriesPerKey {
				time.Sleep(2 * time.Second)
			}
		}

		log.Printf("⚠️  [Gemini] Key #%d exhausted all %d attempts, trying next key...", keyIndex+1, maxRetriesPerKey)
	}

	return nil, fmt.Errorf("all %d API keys exhausted (%d attempts each), last error: %w", len(apiKeys), maxRetriesPerKey, lastErr)
}

// is429Error - rate limit error patterns from the Gemini API
func is429Error(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	return strings.Contains(errStr, "429") ||
		strings.Contains(strings.ToLower(errStr), "rate limit") ||
		strings.Contains(strings.ToLower(errStr), "quota")
}
