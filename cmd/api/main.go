package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/neurobloom-api/internal/container"
	"github.com/saulo-duarte/neurobloom-api/internal/router"
)

func main() {
	c := container.New()

	r := router.New(router.RouterConfig{
		ChatHandler:  c.ChatContainer.Handler,
		StoryHandler: c.StoryContainer.Handler,
		QuizHandler:  c.QuizContainer.Handler,
		SessionStore: c.SessionStore,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logrus.Infof("Servidor ouvindo na porta %s", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("Servidor encerrou com erro")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Erro no desligamento do servidor")
	}
	logrus.Info("Servidor encerrado")
}
