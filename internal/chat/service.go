package chat

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/neurobloom-api/internal/config"
	"github.com/saulo-duarte/neurobloom-api/internal/session"
)

const (
	replyMaxTokens = 200
	botName        = "NeuroBloom"
	userName       = "You"
)

type Provider interface {
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
}

type Service interface {
	Send(ctx context.Context, sess *session.Session, message string) (string, error)
}

type service struct {
	provider Provider
}

func NewService(provider Provider) Service {
	return &service{provider: provider}
}

// Send registra a mensagem do usuário, pede a resposta ao modelo e anexa as
// duas ao histórico da sessão. O histórico é só de acréscimo.
func (s *service) Send(ctx context.Context, sess *session.Session, message string) (string, error) {
	log := config.WithContext(ctx)

	sess.AppendChat(userName, message)

	reply, err := s.provider.Generate(ctx, message, replyMaxTokens)
	if err != nil {
		log.WithError(err).Error("Falha ao gerar resposta do chat")
		return "", fmt.Errorf("chat reply failed: %w", err)
	}

	sess.AppendChat(botName, reply)
	return reply, nil
}
