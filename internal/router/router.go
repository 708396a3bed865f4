package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/neurobloom-api/internal/chat"
	"github.com/saulo-duarte/neurobloom-api/internal/middlewares"
	"github.com/saulo-duarte/neurobloom-api/internal/quiz"
	"github.com/saulo-duarte/neurobloom-api/internal/session"
	"github.com/saulo-duarte/neurobloom-api/internal/story"
)

type RouterConfig struct {
	ChatHandler  *chat.Handler
	StoryHandler *story.Handler
	QuizHandler  *quiz.Handler
	SessionStore *session.Store
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(session.Middleware(cfg.SessionStore))

		r.Mount("/chat", chat.Routes(cfg.ChatHandler))
		r.Mount("/story", story.Routes(cfg.StoryHandler))
		r.Mount("/quizzes", quiz.Routes(cfg.QuizHandler))
	})
	return r
}
