package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/saulo-duarte/neurobloom-api/internal/container"
	"github.com/saulo-duarte/neurobloom-api/internal/router"
)

var adapter *httpadapter.HandlerAdapter

func init() {
	c := container.New()

	r := router.New(router.RouterConfig{
		ChatHandler:  c.ChatContainer.Handler,
		StoryHandler: c.StoryContainer.Handler,
		QuizHandler:  c.QuizContainer.Handler,
		SessionStore: c.SessionStore,
	})

	adapter = httpadapter.New(r)
}

func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return adapter.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(handler)
}
