package chat

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/saulo-duarte/neurobloom-api/internal/config"
	"github.com/saulo-duarte/neurobloom-api/internal/session"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "session not initialized", http.StatusInternalServerError)
		return
	}

	var req SendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		http.Error(w, "message required", http.StatusBadRequest)
		return
	}

	reply, err := h.service.Send(r.Context(), sess, req.Message)
	if err != nil {
		log.WithError(err).Error("Erro ao responder mensagem de chat")
		http.Error(w, "failed to generate reply", http.StatusBadGateway)
		return
	}

	config.JSON(w, http.StatusOK, SendResponse{
		Reply: reply,
		Chat:  sess.Chat(),
	})
}

func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "session not initialized", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, HistoryResponse{Chat: sess.Chat()})
}
