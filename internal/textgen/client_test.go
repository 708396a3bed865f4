package textgen_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/saulo-duarte/neurobloom-api/internal/textgen"
)

func TestGenerate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
				t.Errorf("Header de autorização incorreto: %q", got)
			}

			var payload map[string]interface{}
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				t.Fatalf("Corpo da requisição inválido: %v", err)
			}
			if payload["model"] != "llama-3.1-8b-instant" {
				t.Errorf("Modelo incorreto: %v", payload["model"])
			}
			if payload["max_tokens"] != float64(200) {
				t.Errorf("max_tokens incorreto: %v", payload["max_tokens"])
			}

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"choices":[{"message":{"content":"olá!"}}]}`))
		}))
		defer srv.Close()

		client := textgen.NewClient("test-key")
		client.BaseURL = srv.URL

		text, err := client.Generate(context.Background(), "oi", 200)
		if err != nil {
			t.Fatalf("Generate falhou: %v", err)
		}
		if text != "olá!" {
			t.Errorf("Texto gerado incorreto: %q", text)
		}
	})

	t.Run("ResponseWithoutChoices", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"invalid api key"}}`))
		}))
		defer srv.Close()

		client := textgen.NewClient("bad-key")
		client.BaseURL = srv.URL

		if _, err := client.Generate(context.Background(), "oi", 200); err == nil {
			t.Error("Generate deveria falhar quando a resposta não tem choices.")
		}
	})

	t.Run("NonJSONResponse", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte("gateway timeout"))
		}))
		defer srv.Close()

		client := textgen.NewClient("test-key")
		client.BaseURL = srv.URL

		if _, err := client.Generate(context.Background(), "oi", 200); err == nil {
			t.Error("Generate deveria falhar com resposta que não é JSON.")
		}
	})

	t.Run("TransportFailure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		srv.Close()

		client := textgen.NewClient("test-key")
		client.BaseURL = srv.URL

		if _, err := client.Generate(context.Background(), "oi", 200); err == nil {
			t.Error("Generate deveria falhar com o servidor fora do ar.")
		}
	})
}
