package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

const assistantSystemPrompt = "You are an expert cooking assistant. Answer questions about recipes, ingredients and techniques, and suggest dishes based on what the user has on hand."

// ChatMessage is one turn of an assistant conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message ChatMessage `json:"message"`
	} `json:"choices"`
}

// AssistantService proxies cooking questions to an external generative
// text API. It holds no state other than the client configuration.
type AssistantService struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
}

// NewAssistantService reads the API key from ASSISTANT_API_KEY or from the
// file named by ASSISTANT_API_KEY_FILE.
func NewAssistantService() (*AssistantService, error) {
	apiKey := os.Getenv("ASSISTANT_API_KEY")
	if apiKey == "" {
		apiKeyFile := os.Getenv("ASSISTANT_API_KEY_FILE")
		if apiKeyFile == "" {
			return nil, fmt.Errorf("ASSISTANT_API_KEY or ASSISTANT_API_KEY_FILE must be set")
		}
		apiKeyBytes, err := os.ReadFile(apiKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read API key file: %w", err)
		}
		apiKey = strings.TrimSpace(string(apiKeyBytes))
		if apiKey == "" {
			return nil, fmt.Errorf("API key file is empty")
		}
	}

	apiURL := os.Getenv("ASSISTANT_API_URL")
	if apiURL == "" {
		apiURL = "https://api.openai.com/v1/chat/completions"
	}

	model := os.Getenv("ASSISTANT_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}

	return &AssistantService{
		apiKey: apiKey,
		apiURL: apiURL,
		model:  model,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}, nil
}

// Query sends the user's message, with optional conversation history, and
// returns the assistant's reply.
func (s *AssistantService) Query(ctx context.Context, message string, history []ChatMessage) (string, error) {
	messages := make([]ChatMessage, 0, len(history)+2)
	messages = append(messages, ChatMessage{Role: "system", Content: assistantSystemPrompt})
	messages = append(messages, history...)
	messages = append(messages, ChatMessage{Role: "user", Content: message})

	reqBody := chatCompletionRequest{
		Model:       s.model,
		Messages:    messages,
		Temperature: 0.7,
		MaxTokens:   800,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[AssistantService] API request failed with status %d: %s", resp.StatusCode, string(body))
		return "", fmt.Errorf("assistant API request failed with status %d", resp.StatusCode)
	}

	var result chatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no choices in assistant response")
	}

	return result.Choices[0].Message.Content, nil
}
