package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Kitan-Dara06/flashcard-generator-public/internal/config"
	"github.com/Kitan-Dara06/flashcard-generator-public/internal/models"
)

type OpenAIAPI struct {
	baseURL     string
	apiKey      string
	model       string
	temperature float64
	maxTokens   int
	http        *http.Client
}

func NewOpenAIAPI(cfg config.OpenAIConfig) *OpenAIAPI {
	return &OpenAIAPI{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		http:        &http.Client{Timeout: cfg.Timeout},
	}
}

// ChatJSON sends a single user prompt and returns the model reply, which the
// request forces into JSON-object format.
func (o *OpenAIAPI) ChatJSON(ctx context.Context, prompt string) (string, error) {
	reqBody := models.ChatCompletionRequest{
		Model:       o.model,
		Messages:    []models.ChatMessage{{Role: "user", Content: prompt}},
		Temperature: o.temperature,
		MaxTokens:   o.maxTokens,
	}
	reqBody.ResponseFormat.Type = "json_object"

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", o.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var data models.ChatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("failed to decode chat completion response: %w", err)
	}

	if data.Error != nil {
		return "", fmt.Errorf("chat completion failed: %s", data.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat completion failed: status %d", resp.StatusCode)
	}
	if len(data.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	return strings.TrimSpace(data.Choices[0].Message.Content), nil
}
