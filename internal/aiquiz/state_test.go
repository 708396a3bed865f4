package aiquiz_test

import (
	"testing"

	"github.com/saulo-duarte/neurobloom-api/internal/aiquiz"
)

func sampleQuestions() []aiquiz.Question {
	return []aiquiz.Question{
		{Question: "Q1?", Options: []string{"A) x", "B) y", "C) z", "D) w"}, Answer: "B"},
		{Question: "Q2?", Options: []string{"A) a", "B) b", "C) c", "D) d"}, Answer: "A"},
		{Question: "Q3?", Options: []string{"A) e", "B) f", "C) g", "D) h"}, Answer: "D"},
	}
}

func TestStateSubmit(t *testing.T) {
	t.Run("CorrectAnswer", func(t *testing.T) {
		state := aiquiz.NewState(sampleQuestions())

		res, err := state.Submit(0, "B) y")
		if err != nil {
			t.Fatalf("Submit falhou: %v", err)
		}
		if res.Outcome != aiquiz.OutcomeCorrect {
			t.Errorf("Esperava resposta correta, recebeu %q", res.Outcome)
		}
		if state.Score() != 1 {
			t.Errorf("Pontuação deveria ser 1, é %d", state.Score())
		}
	})

	t.Run("IncorrectAnswer", func(t *testing.T) {
		state := aiquiz.NewState(sampleQuestions())

		res, err := state.Submit(0, "C) z")
		if err != nil {
			t.Fatalf("Submit falhou: %v", err)
		}
		if res.Outcome != aiquiz.OutcomeIncorrect {
			t.Errorf("Esperava resposta incorreta, recebeu %q", res.Outcome)
		}
		if res.CorrectOption != "B) y" {
			t.Errorf("Opção correta deveria ser 'B) y', recebeu %q", res.CorrectOption)
		}
		if state.Score() != 0 {
			t.Errorf("Pontuação não deveria mudar em erro, é %d", state.Score())
		}
	})

	t.Run("ResubmissionIsIdempotent", func(t *testing.T) {
		state := aiquiz.NewState(sampleQuestions())

		if _, err := state.Submit(0, "B) y"); err != nil {
			t.Fatalf("Primeira submissão falhou: %v", err)
		}

		res, err := state.Submit(0, "A) x")
		if err != nil {
			t.Fatalf("Segunda submissão falhou: %v", err)
		}
		if res.Outcome != aiquiz.OutcomeAlreadyAnswered {
			t.Errorf("Esperava already_answered, recebeu %q", res.Outcome)
		}
		if state.Score() != 1 {
			t.Errorf("Pontuação não deveria mudar, é %d", state.Score())
		}

		status, err := state.Status(0)
		if err != nil {
			t.Fatalf("Status falhou: %v", err)
		}
		if status.SubmittedChoice != "B) y" {
			t.Errorf("A escolha registrada não deveria mudar, é %q", status.SubmittedChoice)
		}
	})

	t.Run("CaseAndWhitespaceInsensitive", func(t *testing.T) {
		questions := sampleQuestions()
		questions[0].Answer = " b "
		state := aiquiz.NewState(questions)

		res, err := state.Submit(0, "b) y")
		if err != nil {
			t.Fatalf("Submit falhou: %v", err)
		}
		if res.Outcome != aiquiz.OutcomeCorrect {
			t.Errorf("Comparação deveria ignorar caixa e espaços, recebeu %q", res.Outcome)
		}
	})

	t.Run("NoOptionMatchesAnswerLetter", func(t *testing.T) {
		questions := sampleQuestions()
		questions[0].Answer = "E"
		state := aiquiz.NewState(questions)

		res, err := state.Submit(0, "A) x")
		if err != nil {
			t.Fatalf("Submit falhou: %v", err)
		}
		if res.Outcome != aiquiz.OutcomeIncorrect {
			t.Errorf("Esperava resposta incorreta, recebeu %q", res.Outcome)
		}
		if res.CorrectOption != "" {
			t.Errorf("Sem opção correspondente, a opção correta deveria ser vazia: %q", res.CorrectOption)
		}
	})

	t.Run("EmptyQuiz", func(t *testing.T) {
		state := aiquiz.NewState(nil)
		if _, err := state.Submit(0, "A) x"); err == nil {
			t.Error("Submit deveria falhar com quiz vazio.")
		}
	})

	t.Run("IndexOutOfRange", func(t *testing.T) {
		state := aiquiz.NewState(sampleQuestions())
		if _, err := state.Submit(3, "A) x"); err == nil {
			t.Error("Submit deveria falhar com índice fora do intervalo.")
		}
		if _, err := state.Submit(-1, "A) x"); err == nil {
			t.Error("Submit deveria falhar com índice negativo.")
		}
	})
}

func TestStateScoreInvariant(t *testing.T) {
	state := aiquiz.NewState(sampleQuestions())

	// Uma certa, uma errada, uma certa: a pontuação conta só os acertos.
	choices := map[int]string{0: "B) y", 1: "C) c", 2: "D) h"}
	for idx, choice := range choices {
		if _, err := state.Submit(idx, choice); err != nil {
			t.Fatalf("Submit(%d) falhou: %v", idx, err)
		}
	}

	if state.Score() != 2 {
		t.Errorf("Pontuação deveria ser 2, é %d", state.Score())
	}
	if state.Score() < 0 || state.Score() > state.Len() {
		t.Errorf("Pontuação %d fora do intervalo [0, %d]", state.Score(), state.Len())
	}
}

func TestStateStatus(t *testing.T) {
	t.Run("Unanswered", func(t *testing.T) {
		state := aiquiz.NewState(sampleQuestions())

		status, err := state.Status(1)
		if err != nil {
			t.Fatalf("Status falhou: %v", err)
		}
		if status.Answered || status.SubmittedChoice != "" {
			t.Errorf("Pergunta não respondida deveria ter status vazio: %+v", status)
		}
	})

	t.Run("AnsweredWrong", func(t *testing.T) {
		state := aiquiz.NewState(sampleQuestions())
		if _, err := state.Submit(1, "D) d"); err != nil {
			t.Fatalf("Submit falhou: %v", err)
		}

		status, err := state.Status(1)
		if err != nil {
			t.Fatalf("Status falhou: %v", err)
		}
		if !status.Answered || status.IsCorrect {
			t.Errorf("Status incorreto: %+v", status)
		}
		if status.CorrectOption != "A) a" {
			t.Errorf("Opção correta deveria ser 'A) a', recebeu %q", status.CorrectOption)
		}
	})

	t.Run("OutOfRange", func(t *testing.T) {
		state := aiquiz.NewState(sampleQuestions())
		if _, err := state.Status(10); err == nil {
			t.Error("Status deveria falhar com índice fora do intervalo.")
		}
	})
}
