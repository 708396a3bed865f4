package quiz

type CreateRequest struct {
	QuestionCount int `json:"question_count"`
}

type CreateResponse struct {
	Message string `json:"message"`
	Total   int    `json:"total"`
}

// QuestionView é a pergunta como o cliente a vê: sem a letra da resposta,
// que fica só no servidor.
type QuestionView struct {
	Index    int      `json:"index"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type QuizView struct {
	Questions []QuestionView `json:"questions"`
	Score     int            `json:"score"`
	Total     int            `json:"total"`
}

type SubmitRequest struct {
	Choice string `json:"choice"`
}

type SubmitResponse struct {
	Outcome       string `json:"outcome"`
	CorrectOption string `json:"correct_option,omitempty"`
	Score         int    `json:"score"`
	Total         int    `json:"total"`
}

type StatusResponse struct {
	Answered        bool   `json:"answered"`
	SubmittedChoice string `json:"submitted_choice,omitempty"`
	IsCorrect       bool   `json:"is_correct"`
	CorrectOption   string `json:"correct_option,omitempty"`
}

type ScoreResponse struct {
	Score int `json:"score"`
	Total int `json:"total"`
}

// GenerationError separa a mensagem para o usuário da saída bruta do
// modelo, que fica disponível para depuração.
type GenerationError struct {
	Error     string `json:"error"`
	RawOutput string `json:"raw_output,omitempty"`
}
