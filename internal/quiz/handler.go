package quiz

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/neurobloom-api/internal/aiquiz"
	"github.com/saulo-duarte/neurobloom-api/internal/config"
	"github.com/saulo-duarte/neurobloom-api/internal/session"
)

type Handler struct {
	service aiquiz.Service
}

func NewHandler(s aiquiz.Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "session not initialized", http.StatusInternalServerError)
		return
	}

	// Corpo vazio é aceito: a quantidade cai no padrão do serviço.
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	story := sess.Story()
	if strings.TrimSpace(story) == "" {
		http.Error(w, "generate a story first", http.StatusBadRequest)
		return
	}

	questions, err := h.service.GenerateQuiz(r.Context(), story, req.QuestionCount)
	if err != nil {
		var parseErr *aiquiz.ParseError
		if errors.As(err, &parseErr) {
			log.WithError(err).Warn("Quiz descartado: o modelo não devolveu JSON válido")
			config.JSON(w, http.StatusBadGateway, GenerationError{
				Error:     parseErr.Message,
				RawOutput: parseErr.Raw,
			})
			return
		}
		log.WithError(err).Error("Erro ao gerar quiz")
		config.JSON(w, http.StatusBadGateway, GenerationError{Error: "failed to generate quiz"})
		return
	}

	sess.SetQuiz(questions)

	config.JSON(w, http.StatusCreated, CreateResponse{
		Message: "quiz generated",
		Total:   len(questions),
	})
}

func (h *Handler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "session not initialized", http.StatusInternalServerError)
		return
	}

	questions, ok := sess.QuizQuestions()
	if !ok {
		http.Error(w, "no quiz generated yet", http.StatusNotFound)
		return
	}

	views := make([]QuestionView, len(questions))
	for i, q := range questions {
		views[i] = QuestionView{
			Index:    i,
			Question: q.Question,
			Options:  q.Options,
		}
	}

	score, total, _ := sess.QuizScore()
	config.JSON(w, http.StatusOK, QuizView{
		Questions: views,
		Score:     score,
		Total:     total,
	})
}

func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "session not initialized", http.StatusInternalServerError)
		return
	}

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "invalid question index", http.StatusBadRequest)
		return
	}

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Choice) == "" {
		http.Error(w, "choice required", http.StatusBadRequest)
		return
	}

	result, err := sess.SubmitAnswer(index, req.Choice)
	if err != nil {
		if errors.Is(err, session.ErrNoQuiz) {
			http.Error(w, "no quiz generated yet", http.StatusNotFound)
			return
		}
		http.Error(w, "invalid question index", http.StatusBadRequest)
		return
	}

	_, total, _ := sess.QuizScore()
	log.Infof("Resposta registrada para a pergunta %d: %s", index, result.Outcome)

	config.JSON(w, http.StatusOK, SubmitResponse{
		Outcome:       string(result.Outcome),
		CorrectOption: result.CorrectOption,
		Score:         result.Score,
		Total:         total,
	})
}

func (h *Handler) GetQuestionStatus(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "session not initialized", http.StatusInternalServerError)
		return
	}

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "invalid question index", http.StatusBadRequest)
		return
	}

	status, err := sess.QuestionStatus(index)
	if err != nil {
		if errors.Is(err, session.ErrNoQuiz) {
			http.Error(w, "no quiz generated yet", http.StatusNotFound)
			return
		}
		http.Error(w, "invalid question index", http.StatusBadRequest)
		return
	}

	config.JSON(w, http.StatusOK, StatusResponse{
		Answered:        status.Answered,
		SubmittedChoice: status.SubmittedChoice,
		IsCorrect:       status.IsCorrect,
		CorrectOption:   status.CorrectOption,
	})
}

func (h *Handler) GetScore(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "session not initialized", http.StatusInternalServerError)
		return
	}

	score, total, ok := sess.QuizScore()
	if !ok {
		http.Error(w, "no quiz generated yet", http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, ScoreResponse{Score: score, Total: total})
}
