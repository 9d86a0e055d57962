package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client is the Gemini Generative Language API client. Safe for concurrent use.
type Client struct {
	apiKey     string
	apiURL     string
	model      string
	httpClient *http.Client
}

// New creates a Gemini client from cfg.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		apiKey:     cfg.APIKey,
		apiURL:     cfg.APIURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}, nil
}

// Model returns the model being used.
func (c *Client) Model() string {
	return c.model
}

// GenerateContent sends a content generation request to the Gemini API.
func (c *Client) GenerateContent(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.apiURL, c.model, c.apiKey)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gemini: API error %d: %s", resp.StatusCode, string(raw))
	}

	var result GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("gemini: failed to decode response: %w", err)
	}

	return &result, nil
}

// ExtractActionItems asks the model for the action items in text.
// An empty list is a valid answer.
func (c *Client) ExtractActionItems(ctx context.Context, text string) ([]ActionItem, error) {
	req := GenerateRequest{
		SystemInstruction: &Content{Parts: []Part{{Text: ActionItemSystemPrompt}}},
		Contents: []Content{
			{Role: "user", Parts: []Part{{Text: BuildActionItemPrompt(text)}}},
		},
		GenerationConfig: &GenerationConfig{
			Temperature:      actionItemTemperature,
			MaxOutputTokens:  actionItemMaxTokens,
			ResponseMIMEType: "application/json",
		},
	}

	resp, err := c.GenerateContent(ctx, req)
	if err != nil {
		return nil, err
	}

	raw := resp.Text()
	if raw == "" {
		return nil, fmt.Errorf("gemini: empty response")
	}
	return DecodeActionItems(raw)
}
