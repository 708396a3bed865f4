package config

import (
	"context"
	"os"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

func Init() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if file := os.Getenv("LOG_FILE"); file != "" {
		logrus.SetOutput(&lumberjack.Logger{
			Filename:   file,
			MaxSize:    50,
			MaxBackups: 3,
			MaxAge:     14,
		})
	}
}

func WithContext(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(logrus.StandardLogger())
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		entry = entry.WithField("request_id", reqID)
	}
	return entry
}
