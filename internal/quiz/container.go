package quiz

import "github.com/saulo-duarte/neurobloom-api/internal/aiquiz"

type QuizContainer struct {
	Handler *Handler
}

func NewQuizContainer(service aiquiz.Service) *QuizContainer {
	handler := NewHandler(service)

	return &QuizContainer{
		Handler: handler,
	}
}
