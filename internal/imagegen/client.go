package imagegen

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/saulo-duarte/neurobloom-api/internal/config"
)

const defaultBaseURL = "https://api.stability.ai/v2beta/stable-image/generate/core"

type Client struct {
	BaseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Generate envia o prompt para o endpoint de geração de imagem e retorna os
// bytes PNG crus. Qualquer status diferente de 200 é tratado como falha.
func (c *Client) Generate(ctx context.Context, prompt string) ([]byte, error) {
	log := config.WithContext(ctx)

	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	// A API exige um campo de arquivo, mesmo vazio.
	if _, err := form.CreateFormFile("none", ""); err != nil {
		return nil, fmt.Errorf("build form: %w", err)
	}
	if err := form.WriteField("prompt", prompt); err != nil {
		return nil, fmt.Errorf("build form: %w", err)
	}
	if err := form.WriteField("output_format", "png"); err != nil {
		return nil, fmt.Errorf("build form: %w", err)
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("build form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, &body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Accept", "image/*")

	res, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Error("Falha na chamada ao endpoint de geração de imagem")
		return nil, fmt.Errorf("image generation request failed: %w", err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		log.Errorf("Geração de imagem falhou (status %d): %s", res.StatusCode, string(data))
		return nil, fmt.Errorf("image generation failed (status %d)", res.StatusCode)
	}

	return data, nil
}
