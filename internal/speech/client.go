package speech

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/saulo-duarte/neurobloom-api/internal/config"
)

const (
	defaultBaseURL = "https://translate.google.com/translate_tts"
	languageCode   = "en"
)

type Client struct {
	BaseURL    string
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Synthesize converte o texto inteiro em áudio MP3 usando o endpoint público
// de TTS do Google Translate. Falhas se propagam como erro.
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	log := config.WithContext(ctx)

	if text == "" {
		return nil, fmt.Errorf("empty text")
	}

	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("tl", languageCode)
	q.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Error("Falha na chamada ao endpoint de síntese de voz")
		return nil, fmt.Errorf("speech synthesis request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		log.Errorf("Síntese de voz falhou (status %d)", res.StatusCode)
		return nil, fmt.Errorf("speech synthesis failed (status %d)", res.StatusCode)
	}

	audio, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	return audio, nil
}
