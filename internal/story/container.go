package story

type StoryContainer struct {
	Handler *Handler
}

func NewStoryContainer(text TextProvider, image ImageProvider, speech SpeechProvider) *StoryContainer {
	service := NewService(text, image, speech)
	handler := NewHandler(service)

	return &StoryContainer{
		Handler: handler,
	}
}
