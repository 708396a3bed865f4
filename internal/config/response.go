package config

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("Erro ao serializar resposta JSON")
	}
}
