package aiquiz

type Question struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// ParseError indica que o modelo não devolveu um quiz em JSON válido.
// Raw carrega a saída completa do modelo para diagnóstico.
type ParseError struct {
	Message string
	Raw     string
}

func (e *ParseError) Error() string {
	return e.Message
}

type Outcome string

const (
	OutcomeCorrect         Outcome = "correct"
	OutcomeIncorrect       Outcome = "incorrect"
	OutcomeAlreadyAnswered Outcome = "already_answered"
)

type SubmissionResult struct {
	Outcome       Outcome
	CorrectOption string
	Score         int
}

type QuestionStatus struct {
	Answered        bool
	SubmittedChoice string
	IsCorrect       bool
	CorrectOption   string
}
