package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/neurobloom-api/internal/aiquiz"
)

var ErrNoQuiz = errors.New("no quiz for this session")

type Message struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// Session guarda todo o estado efêmero de um usuário: histórico de chat,
// história atual e o quiz em andamento. Nada sobrevive ao processo.
type Session struct {
	ID uuid.UUID

	mu       sync.Mutex
	chat     []Message
	story    string
	quiz     *aiquiz.State
	lastSeen time.Time
}

func New() *Session {
	return &Session{
		ID:       uuid.New(),
		lastSeen: time.Now(),
	}
}

func (s *Session) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
}

func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) AppendChat(speaker, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chat = append(s.chat, Message{Speaker: speaker, Text: text})
}

func (s *Session) Chat() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.chat))
	copy(out, s.chat)
	return out
}

func (s *Session) Story() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.story
}

// SetStory troca a história atual e invalida o quiz anterior por inteiro,
// inclusive pontuação e respostas registradas.
func (s *Session) SetStory(story string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.story = story
	s.quiz = nil
}

func (s *Session) SetQuiz(questions []aiquiz.Question) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quiz = aiquiz.NewState(questions)
}

func (s *Session) QuizQuestions() ([]aiquiz.Question, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.quiz == nil {
		return nil, false
	}
	return s.quiz.Questions(), true
}

func (s *Session) SubmitAnswer(index int, choice string) (aiquiz.SubmissionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.quiz == nil {
		return aiquiz.SubmissionResult{}, ErrNoQuiz
	}
	return s.quiz.Submit(index, choice)
}

func (s *Session) QuestionStatus(index int) (aiquiz.QuestionStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.quiz == nil {
		return aiquiz.QuestionStatus{}, ErrNoQuiz
	}
	return s.quiz.Status(index)
}

func (s *Session) QuizScore() (score, total int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.quiz == nil {
		return 0, 0, false
	}
	return s.quiz.Score(), s.quiz.Len(), true
}
