package container

import (
	"context"
	"os"
	"time"

	"github.com/saulo-duarte/neurobloom-api/internal/aiquiz"
	"github.com/saulo-duarte/neurobloom-api/internal/chat"
	"github.com/saulo-duarte/neurobloom-api/internal/config"
	"github.com/saulo-duarte/neurobloom-api/internal/imagegen"
	"github.com/saulo-duarte/neurobloom-api/internal/quiz"
	"github.com/saulo-duarte/neurobloom-api/internal/session"
	"github.com/saulo-duarte/neurobloom-api/internal/speech"
	"github.com/saulo-duarte/neurobloom-api/internal/story"
	"github.com/saulo-duarte/neurobloom-api/internal/textgen"
)

const (
	sessionTTL   = 2 * time.Hour
	janitorEvery = 10 * time.Minute
)

type Container struct {
	ChatContainer  *chat.ChatContainer
	StoryContainer *story.StoryContainer
	QuizContainer  *quiz.QuizContainer
	SessionStore   *session.Store
}

func New() *Container {
	config.Init()
	config.InitCrypto()

	// As chaves não são validadas na subida: sem chave, a falha acontece
	// na própria requisição ao endpoint remoto.
	textClient := textgen.NewClient(os.Getenv("GROQ_API_KEY"))
	imageClient := imagegen.NewClient(os.Getenv("STABILITY_API_KEY"))
	speechClient := speech.NewClient()

	store := session.NewStore(sessionTTL)
	store.StartJanitor(context.Background(), janitorEvery)

	aiQuizService := aiquiz.NewService(textClient)

	return &Container{
		ChatContainer:  chat.NewChatContainer(textClient),
		StoryContainer: story.NewStoryContainer(textClient, imageClient, speechClient),
		QuizContainer:  quiz.NewQuizContainer(aiQuizService),
		SessionStore:   store,
	}
}
