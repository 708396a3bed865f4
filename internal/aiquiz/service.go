package aiquiz

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/neurobloom-api/internal/config"
)

const quizMaxTokens = 800

type Provider interface {
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
}

type Service interface {
	GenerateQuiz(ctx context.Context, storyText string, n int) ([]Question, error)
}

type service struct {
	provider Provider
}

func NewService(provider Provider) Service {
	return &service{provider: provider}
}

func (s *service) GenerateQuiz(ctx context.Context, storyText string, n int) ([]Question, error) {
	log := config.WithContext(ctx)

	if n <= 0 {
		n = 3
	}
	if n > 10 {
		n = 10
	}

	prompt := BuildQuizPrompt(storyText, n)

	raw, err := s.provider.Generate(ctx, prompt, quizMaxTokens)
	if err != nil {
		log.WithError(err).Error("[AIQUIZ] Falha na geração de texto para o quiz")
		return nil, fmt.Errorf("quiz generation failed: %w", err)
	}

	questions, err := ParseQuestions(raw, n)
	if err != nil {
		log.WithError(err).Errorf("[AIQUIZ] Falha ao interpretar o quiz. Saída bruta:\n%s", raw)
		return nil, err
	}

	log.Infof("[AIQUIZ] Geradas %d perguntas com sucesso", len(questions))
	return questions, nil
}
