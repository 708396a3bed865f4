package aiquiz

import (
	"fmt"
	"strings"
)

// State é a máquina de pontuação de um quiz. Cada pergunta vai de
// não-respondida para respondida exatamente uma vez; o estado inteiro só
// zera quando o quiz é substituído por outro.
type State struct {
	questions []Question
	answered  map[int]bool
	submitted map[int]string
	score     int
}

func NewState(questions []Question) *State {
	return &State{
		questions: questions,
		answered:  make(map[int]bool),
		submitted: make(map[int]string),
	}
}

func (s *State) Questions() []Question {
	return s.questions
}

func (s *State) Len() int {
	return len(s.questions)
}

func (s *State) Score() int {
	return s.score
}

// Submit registra a primeira resposta de uma pergunta e atualiza a
// pontuação. Submissões repetidas não mudam nada.
func (s *State) Submit(index int, choice string) (SubmissionResult, error) {
	if len(s.questions) == 0 {
		return SubmissionResult{}, fmt.Errorf("no quiz loaded")
	}
	if index < 0 || index >= len(s.questions) {
		return SubmissionResult{}, fmt.Errorf("question index %d out of range", index)
	}

	if s.answered[index] {
		return SubmissionResult{Outcome: OutcomeAlreadyAnswered, Score: s.score}, nil
	}

	q := s.questions[index]
	s.submitted[index] = choice
	s.answered[index] = true

	answerLetter := strings.ToUpper(strings.TrimSpace(q.Answer))
	if firstLetter(choice) == answerLetter {
		s.score++
		return SubmissionResult{Outcome: OutcomeCorrect, Score: s.score}, nil
	}

	return SubmissionResult{
		Outcome:       OutcomeIncorrect,
		CorrectOption: correctOption(q.Options, answerLetter),
		Score:         s.score,
	}, nil
}

// Status é derivado do estado armazenado, sem efeito colateral.
func (s *State) Status(index int) (QuestionStatus, error) {
	if index < 0 || index >= len(s.questions) {
		return QuestionStatus{}, fmt.Errorf("question index %d out of range", index)
	}

	status := QuestionStatus{
		Answered:        s.answered[index],
		SubmittedChoice: s.submitted[index],
	}
	if !status.Answered {
		return status, nil
	}

	q := s.questions[index]
	answerLetter := strings.ToUpper(strings.TrimSpace(q.Answer))
	status.IsCorrect = firstLetter(status.SubmittedChoice) == answerLetter
	if !status.IsCorrect {
		status.CorrectOption = correctOption(q.Options, answerLetter)
	}
	return status, nil
}

func firstLetter(choice string) string {
	trimmed := strings.TrimSpace(choice)
	if trimmed == "" {
		return ""
	}
	return strings.ToUpper(string([]rune(trimmed)[0]))
}

// correctOption devolve a opção cujo prefixo bate com a letra da resposta,
// ou vazio quando nenhuma bate.
func correctOption(options []string, answerLetter string) string {
	for _, opt := range options {
		if strings.HasPrefix(strings.ToUpper(strings.TrimSpace(opt)), answerLetter) {
			return opt
		}
	}
	return ""
}
