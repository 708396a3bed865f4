package chat

type ChatContainer struct {
	Handler *Handler
}

func NewChatContainer(provider Provider) *ChatContainer {
	service := NewService(provider)
	handler := NewHandler(service)

	return &ChatContainer{
		Handler: handler,
	}
}
