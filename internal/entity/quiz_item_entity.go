package entity

// QuizItem is a single multiple-choice question. A well-formed item carries
// exactly four options with CorrectIndex inside option bounds; the one
// exception is the placeholder item produced when no packets exist, which has
// a single option.
type QuizItem struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
}
