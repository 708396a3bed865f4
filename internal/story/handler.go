package story

import (
	"encoding/json"
	"errors"
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

func (h *Handler) CreateStory(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "session not initialized", http.StatusInternalServerError)
		return
	}

	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		http.Error(w, "title required", http.StatusBadRequest)
		return
	}

	age := AgeGroup(req.AgeGroup)
	if req.AgeGroup == "" {
		age = Age4to6
	} else if !age.IsValid() {
		http.Error(w, "invalid age_group", http.StatusBadRequest)
		return
	}

	text, err := h.service.GenerateStory(r.Context(), sess, req.Title, age)
	if err != nil {
		log.WithError(err).Error("Erro ao criar história")
		http.Error(w, "failed to generate story", http.StatusBadGateway)
		return
	}

	config.JSON(w, http.StatusCreated, StoryResponse{Story: text})
}

func (h *Handler) GetStory(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "session not initialized", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, StoryResponse{Story: sess.Story()})
}

func (h *Handler) Illustrate(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "session not initialized", http.StatusInternalServerError)
		return
	}

	image, err := h.service.Illustrate(r.Context(), sess)
	if err != nil {
		if errors.Is(err, ErrNoStory) {
			http.Error(w, "generate a story first", http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Erro ao ilustrar história")
		http.Error(w, "image generation failed", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(image)
}

func (h *Handler) Narrate(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "session not initialized", http.StatusInternalServerError)
		return
	}

	audio, err := h.service.Narrate(r.Context(), sess)
	if err != nil {
		if errors.Is(err, ErrNoStory) {
			http.Error(w, "generate a story first", http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Erro ao narrar história")
		http.Error(w, "speech synthesis failed", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Write(audio)
}
