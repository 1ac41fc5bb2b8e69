package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"promokit/config"
	"promokit/models"
	"promokit/og"
)

const llmEndpoint = "https://api.openai.com/v1/chat/completions"

// SmartFill asks the language model for promotional copy for the three text
// fields. Any failure degrades to empty strings for all keys; the caller
// never sees an error from here.
func SmartFill(fields []models.Field, prompt string) map[string]string {
	out := map[string]string{"headline": "", "subhead": "", "cta": ""}

	apiKey := os.Getenv("LLM_API_KEY")
	if apiKey == "" {
		config.Log.Warn("Smart fill skipped: LLM_API_KEY not set")
		return out
	}

	system := fmt.Sprintf(
		"Return only JSON with keys headline, subhead, cta. Respect max lengths: headline <= %d, subhead <= %d, cta <= %d. Keep promotional, clear, brand neutral.",
		og.HeadlineMaxLen, og.SubheadMaxLen, og.CTAMaxLen,
	)

	reqBody, err := json.Marshal(map[string]interface{}{
		"model": "gpt-4o-mini",
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": prompt},
		},
		"temperature":     0.2,
		"response_format": map[string]string{"type": "json_object"},
	})
	if err != nil {
		return out
	}

	req, err := http.NewRequest(http.MethodPost, llmEndpoint, bytes.NewReader(reqBody))
	if err != nil {
		return out
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 20 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		config.Log.WithError(err).Warn("Smart fill request failed")
		return out
	}
	defer resp.Body.Close()

	var completion struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil || len(completion.Choices) == 0 {
		config.Log.WithError(err).Warn("Smart fill response unusable")
		return out
	}

	var suggested map[string]string
	if err := json.Unmarshal([]byte(completion.Choices[0].Message.Content), &suggested); err != nil {
		config.Log.WithError(err).Warn("Smart fill returned non-JSON content")
		return out
	}

	// Only the three known keys pass through, clipped to the template's
	// declared max lengths where given.
	maxLens := map[string]int{}
	for _, f := range fields {
		if f.Type == "text" && f.MaxLen > 0 {
			maxLens[f.Key] = f.MaxLen
		}
	}
	for key := range out {
		v, ok := suggested[key]
		if !ok {
			continue
		}
		if maxLen, ok := maxLens[key]; ok {
			v = og.Ellipsize(v, maxLen)
		}
		out[key] = v
	}
	return out
}
