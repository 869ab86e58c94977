package models

// Topic is a study topic whose notes feed the question generator
type Topic struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// Exam is a mock exam that generated questions are published into
type Exam struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
}
