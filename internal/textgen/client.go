package textgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/saulo-duarte/neurobloom-api/internal/config"
)

const (
	defaultBaseURL = "https://api.groq.com/openai/v1/chat/completions"
	defaultModel   = "llama-3.1-8b-instant"

	temperature = 0.7
)

type Client struct {
	BaseURL    string
	Model      string
	apiKey     string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		Model:   defaultModel,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Generate envia o prompt para o endpoint de chat-completions e retorna o
// texto gerado. Qualquer falha de transporte ou de formato vira erro, nunca
// texto de erro misturado ao conteúdo.
func (c *Client) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	log := config.WithContext(ctx)

	payload := completionRequest{
		Model:       c.Model,
		Messages:    []message{{Role: "user", Content: prompt}},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Error("Falha na chamada ao endpoint de geração de texto")
		return "", fmt.Errorf("text generation request failed: %w", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var parsed completionResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		log.WithError(err).Errorf("Resposta inesperada do modelo (status %d)", res.StatusCode)
		return "", fmt.Errorf("unexpected response (status %d): %w", res.StatusCode, err)
	}

	if len(parsed.Choices) == 0 {
		log.Errorf("Resposta sem choices (status %d): %s", res.StatusCode, string(raw))
		return "", fmt.Errorf("response has no choices (status %d)", res.StatusCode)
	}

	return parsed.Choices[0].Message.Content, nil
}
