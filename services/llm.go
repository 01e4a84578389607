package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	completionModel  = "meta-llama/Llama-3-8b-chat-hf"
	completionSystem = "You are FinBot, a helpful finance assistant. Keep answers short (2-3 sentences max)."
)

type CompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// CompletionClient calls the Together.ai chat-completions API.
type CompletionClient struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// NewCompletionClient builds a client with the API key from the
// environment and a bounded request timeout. The call is at-most-once,
// no retry.
func NewCompletionClient() *CompletionClient {
	return &CompletionClient{
		BaseURL: "https://api.together.xyz/v1/chat/completions",
		APIKey:  os.Getenv("TOGETHER_API_KEY"),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Complete requests a bounded-length reply for the user message.
func (cc *CompletionClient) Complete(userMessage string) (string, error) {
	if cc.APIKey == "" {
		return "", fmt.Errorf("TOGETHER_API_KEY is not set")
	}

	requestBody, _ := json.Marshal(map[string]interface{}{
		"model": completionModel,
		"messages": []map[string]string{
			{"role": "system", "content": completionSystem},
			{"role": "user", "content": userMessage},
		},
		"max_tokens":  150,
		"temperature": 0.7,
	})

	req, err := http.NewRequest("POST", cc.BaseURL, bytes.NewBuffer(requestBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+cc.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := cc.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion API returned %d: %s", resp.StatusCode, string(body))
	}

	var completion CompletionResponse
	if err := json.Unmarshal(body, &completion); err != nil || len(completion.Choices) == 0 {
		return "", fmt.Errorf("completion API returned an invalid body")
	}

	reply := strings.TrimSpace(completion.Choices[0].Message.Content)
	if reply == "" {
		return "", fmt.Errorf("completion API returned an empty reply")
	}
	return reply, nil
}
