package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Harm categories and block thresholds as the generative language API
// names them.
const (
	CategoryHateSpeech       = "HARM_CATEGORY_HATE_SPEECH"
	CategoryDangerousContent = "HARM_CATEGORY_DANGEROUS_CONTENT"
	CategoryHarassment       = "HARM_CATEGORY_HARASSMENT"
	CategorySexuallyExplicit = "HARM_CATEGORY_SEXUALLY_EXPLICIT"

	BlockLowAndAbove = "BLOCK_LOW_AND_ABOVE"
	BlockOnlyHigh    = "BLOCK_ONLY_HIGH"
)

type SafetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents       []content       `json:"contents"`
	SafetySettings []SafetySetting `json:"safetySettings,omitempty"`
}

type SafetyRating struct {
	Category    string `json:"category"`
	Probability string `json:"probability"`
	Blocked     bool   `json:"blocked"`
}

type candidate struct {
	Content       content        `json:"content"`
	FinishReason  string         `json:"finishReason"`
	SafetyRatings []SafetyRating `json:"safetyRatings"`
}

type promptFeedback struct {
	BlockReason   string         `json:"blockReason"`
	SafetyRatings []SafetyRating `json:"safetyRatings"`
}

type generateResponse struct {
	Candidates     []candidate    `json:"candidates"`
	PromptFeedback promptFeedback `json:"promptFeedback"`
}

// Result is the decoded outcome of a generateContent call. When the input
// or the output tripped a safety setting, Blocked is true and
// FlaggedCategories lists the categories the model rated as blocking.
type Result struct {
	Text              string
	Blocked           bool
	FlaggedCategories []string
}

func (c *Client) GenerateContent(ctx context.Context, prompt string, safety []SafetySetting) (*Result, error) {
	reqBody := generateRequest{
		Contents:       []content{{Parts: []part{{Text: prompt}}}},
		SafetySettings: safety,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("genai request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("genai returned status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var decoded generateResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("genai response decode failed: %w", err)
	}

	result := &Result{}

	if decoded.PromptFeedback.BlockReason != "" {
		result.Blocked = true
		result.FlaggedCategories = blockedCategories(decoded.PromptFeedback.SafetyRatings)
		return result, nil
	}

	if len(decoded.Candidates) == 0 {
		return nil, fmt.Errorf("genai returned no candidates")
	}

	first := decoded.Candidates[0]
	if first.FinishReason == "SAFETY" {
		result.Blocked = true
		result.FlaggedCategories = blockedCategories(first.SafetyRatings)
		return result, nil
	}

	for _, p := range first.Content.Parts {
		result.Text += p.Text
	}
	return result, nil
}

func blockedCategories(ratings []SafetyRating) []string {
	var categories []string
	for _, r := range ratings {
		if r.Blocked {
			categories = append(categories, r.Category)
		}
	}
	return categories
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
