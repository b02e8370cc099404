package dto

type QuizItemResponse struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
}

type AnswerQuizRequest struct {
	Choice *int `json:"choice" validate:"required,min=0"`
}

type AnswerQuizResponse struct {
	Correct      bool `json:"correct"`
	CorrectIndex int  `json:"correct_index"`
}
