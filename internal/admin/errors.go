package admin

import "errors"

// Validation failures caught before any request is sent
var (
	ErrTitleRequired   = errors.New("title is required")
	ErrTopicRequired   = errors.New("select a topic first")
	ErrExamRequired    = errors.New("select an exam first")
	ErrNoQuestions     = errors.New("no questions to save")
	ErrUnknownQuestion = errors.New("question not found in draft")
	ErrOptionIndex     = errors.New("option index out of range")
)
