package aiquiz

import (
	"encoding/json"
	"fmt"
	"strings"
)

var requiredKeys = []string{"question", "options", "answer"}

// ParseQuestions interpreta a saída bruta do modelo em duas etapas: primeiro
// o texto inteiro como JSON, depois o trecho entre o primeiro "[" e o último
// "]" caso o modelo tenha adicionado comentários em volta. Se as duas
// tentativas falharem, o erro carrega a saída bruta sem modificação.
func ParseQuestions(raw string, n int) ([]Question, error) {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.Trim(clean, "`")

	if questions, err := decodeQuestions([]byte(clean)); err == nil && len(questions) > 0 {
		return truncate(questions, n), nil
	}

	start := strings.Index(clean, "[")
	end := strings.LastIndex(clean, "]")
	if start == -1 || end <= start {
		return nil, &ParseError{
			Message: "model did not return a valid JSON quiz",
			Raw:     raw,
		}
	}

	questions, err := decodeQuestions([]byte(clean[start : end+1]))
	if err != nil {
		return nil, &ParseError{
			Message: fmt.Sprintf("failed to parse quiz JSON: %v", err),
			Raw:     raw,
		}
	}

	return truncate(questions, n), nil
}

// A validação checa apenas a presença das chaves, não o formato dos valores.
func decodeQuestions(data []byte) ([]Question, error) {
	var items []map[string]json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}

	for i, item := range items {
		for _, key := range requiredKeys {
			if _, ok := item[key]; !ok {
				return nil, fmt.Errorf("question %d is missing key %q", i, key)
			}
		}
	}

	var questions []Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func truncate(questions []Question, n int) []Question {
	if len(questions) > n {
		return questions[:n]
	}
	return questions
}
