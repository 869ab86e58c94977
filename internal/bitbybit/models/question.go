package models

// Difficulty represents the requested difficulty of generated questions
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Difficulties lists every difficulty accepted by the generator
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Valid reports whether d is one of the known difficulties
func (d Difficulty) Valid() bool {
	for _, known := range Difficulties {
		if d == known {
			return true
		}
	}
	return false
}

// DefaultMarks is awarded for a question that does not set its own marks
const DefaultMarks = 2

// Question is a multiple choice question as exchanged with the generator endpoints
type Question struct {
	QuestionText string   `json:"question_text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Marks        int      `json:"marks"`
}

// NewBlankQuestion returns the placeholder used when a question is added by hand
func NewBlankQuestion() Question {
	return Question{
		QuestionText: "New Question...",
		Options:      []string{"Option A", "Option B", "Option C", "Option D"},
		CorrectIndex: 0,
		Marks:        DefaultMarks,
	}
}

// GenerateQuestionsRequest represents the request body for the AI generator
type GenerateQuestionsRequest struct {
	TopicID            int64      `json:"topic_id"`
	NumQuestions       int        `json:"num_questions"`
	Difficulty         Difficulty `json:"difficulty"`
	CustomInstructions string     `json:"custom_instructions,omitempty"`
}

// SaveBulkRequest represents the request body for persisting a batch of questions
type SaveBulkRequest struct {
	ExamID    int64      `json:"exam_id"`
	Questions []Question `json:"questions"`
	Duration  int        `json:"duration"`
}

// SaveBulkResponse represents the response of the bulk save endpoint
type SaveBulkResponse struct {
	Status          string `json:"status"`
	Added           int    `json:"added"`
	DurationUpdated bool   `json:"duration_updated"`
}
