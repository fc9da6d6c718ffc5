package trivia

// Category is a labeled grouping for questions. Categories are seeded out of
// band and never mutated by this service.
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// Question is a single trivia item. The category field is a loose reference
// to Category.ID; existence is not enforced on reads.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// QuestionInput carries the four client-supplied fields for a new question.
// The store assigns the id.
type QuestionInput struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// QuestionPage is a windowed query result. TotalQuestions counts the full
// selection before windowing. Categories carries the id-to-type map for the
// list-questions operation and is nil elsewhere. CurrentCategory is set only
// for category-scoped queries.
type QuestionPage struct {
	Questions       []Question
	TotalQuestions  int
	Categories      map[int]string
	CurrentCategory *int
}
