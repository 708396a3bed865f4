package story

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/saulo-duarte/neurobloom-api/internal/config"
	"github.com/saulo-duarte/neurobloom-api/internal/session"
)

var ErrNoStory = errors.New("no story for this session")

const (
	storyMaxTokens = 600

	illustrationPrefix = "children's illustration: "
	// A ilustração usa só o começo da história para caber no prompt.
	illustrationExcerptLen = 200
)

type TextProvider interface {
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
}

type ImageProvider interface {
	Generate(ctx context.Context, prompt string) ([]byte, error)
}

type SpeechProvider interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

type Service interface {
	GenerateStory(ctx context.Context, sess *session.Session, title string, age AgeGroup) (string, error)
	Illustrate(ctx context.Context, sess *session.Session) ([]byte, error)
	Narrate(ctx context.Context, sess *session.Session) ([]byte, error)
}

type service struct {
	text   TextProvider
	image  ImageProvider
	speech SpeechProvider
}

func NewService(text TextProvider, image ImageProvider, speech SpeechProvider) Service {
	return &service{
		text:   text,
		image:  image,
		speech: speech,
	}
}

// GenerateStory cria uma história nova e a instala na sessão, o que descarta
// qualquer quiz anterior.
func (s *service) GenerateStory(ctx context.Context, sess *session.Session, title string, age AgeGroup) (string, error) {
	log := config.WithContext(ctx)

	prompt := fmt.Sprintf(
		"Write a sweet children's story titled '%s' for kids aged %s. Make it fun, simple, and magical.",
		title, age,
	)

	text, err := s.text.Generate(ctx, prompt, storyMaxTokens)
	if err != nil {
		log.WithError(err).Error("Falha ao gerar história")
		return "", fmt.Errorf("story generation failed: %w", err)
	}

	sess.SetStory(text)
	log.Info("História gerada e quiz anterior descartado")
	return text, nil
}

func (s *service) Illustrate(ctx context.Context, sess *session.Session) ([]byte, error) {
	text := sess.Story()
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoStory
	}

	return s.image.Generate(ctx, illustrationPrefix+excerpt(text, illustrationExcerptLen))
}

func (s *service) Narrate(ctx context.Context, sess *session.Session) ([]byte, error) {
	text := sess.Story()
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoStory
	}

	return s.speech.Synthesize(ctx, text)
}

func excerpt(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
