package admin

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/bitbybit/models"
)

// MinutesPerQuestion is the pacing used to suggest an exam duration
const MinutesPerQuestion = 1.5

// SuggestedDuration returns the exam duration in minutes for n questions, rounded up
func SuggestedDuration(n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Ceil(float64(n) * MinutesPerQuestion))
}

type TopicSource interface {
	ListTopics(ctx context.Context) ([]models.Topic, error)
}

type ExamSource interface {
	ListExams(ctx context.Context) ([]models.Exam, error)
}

type QuestionGenerator interface {
	GenerateQuestions(ctx context.Context, req models.GenerateQuestionsRequest) ([]models.Question, error)
}

type QuestionSaver interface {
	SaveQuestionsBulk(ctx context.Context, req models.SaveBulkRequest) (*models.SaveBulkResponse, error)
}

// GeneratorBackend is everything the generator session needs from the API
type GeneratorBackend interface {
	TopicSource
	ExamSource
	QuestionGenerator
	QuestionSaver
}

// DraftQuestion is a question under review, identified by a client-side ID
// that stays stable across edits, removals and reloads of the draft.
type DraftQuestion struct {
	ID string `json:"id"`
	models.Question
}

// GenerateOptions describes one generation batch
type GenerateOptions struct {
	TopicID      int64
	NumQuestions int
	Difficulty   models.Difficulty
	Instructions string
}

// GeneratorSession accumulates generated and hand-written questions for
// review before they are published to an exam in a single bulk call.
type GeneratorSession struct {
	backend GeneratorBackend

	topics []models.Topic
	exams  []models.Exam

	questions []DraftQuestion

	// durationOverride is set by the operator and dropped whenever the
	// question list changes, at which point the suggestion applies again
	durationOverride *int
}

func NewGeneratorSession(backend GeneratorBackend) *GeneratorSession {
	return &GeneratorSession{backend: backend}
}

// LoadSources fetches the topics and exams the operator can pick from
func (s *GeneratorSession) LoadSources(ctx context.Context) error {
	topics, err := s.backend.ListTopics(ctx)
	if err != nil {
		return err
	}
	exams, err := s.backend.ListExams(ctx)
	if err != nil {
		return err
	}

	s.topics = topics
	s.exams = exams
	return nil
}

func (s *GeneratorSession) Topics() []models.Topic {
	return append([]models.Topic(nil), s.topics...)
}

func (s *GeneratorSession) Exams() []models.Exam {
	return append([]models.Exam(nil), s.exams...)
}

// Generate requests a batch and appends it to the draft
func (s *GeneratorSession) Generate(ctx context.Context, opts GenerateOptions) ([]DraftQuestion, error) {
	if opts.TopicID == 0 {
		return nil, ErrTopicRequired
	}

	questions, err := s.backend.GenerateQuestions(ctx, models.GenerateQuestionsRequest{
		TopicID:            opts.TopicID,
		NumQuestions:       opts.NumQuestions,
		Difficulty:         opts.Difficulty,
		CustomInstructions: opts.Instructions,
	})
	if err != nil {
		return nil, err
	}

	added := make([]DraftQuestion, 0, len(questions))
	for _, q := range questions {
		added = append(added, DraftQuestion{ID: uuid.NewString(), Question: q})
	}
	s.questions = append(s.questions, added...)
	s.listChanged()

	return cloneDrafts(added), nil
}

// AddBlank appends a placeholder question for manual authoring
func (s *GeneratorSession) AddBlank() DraftQuestion {
	q := DraftQuestion{ID: uuid.NewString(), Question: models.NewBlankQuestion()}
	s.questions = append(s.questions, q)
	s.listChanged()
	return cloneDraft(q)
}

// Questions returns a copy of the draft in display order
func (s *GeneratorSession) Questions() []DraftQuestion {
	return cloneDrafts(s.questions)
}

func (s *GeneratorSession) Len() int {
	return len(s.questions)
}

// IDAt resolves a zero-based display position to the question ID
func (s *GeneratorSession) IDAt(i int) (string, error) {
	if i < 0 || i >= len(s.questions) {
		return "", fmt.Errorf("%w: position %d", ErrUnknownQuestion, i+1)
	}
	return s.questions[i].ID, nil
}

func (s *GeneratorSession) UpdateText(id, text string) error {
	q, err := s.find(id)
	if err != nil {
		return err
	}
	q.QuestionText = text
	s.listChanged()
	return nil
}

func (s *GeneratorSession) UpdateOption(id string, option int, text string) error {
	q, err := s.find(id)
	if err != nil {
		return err
	}
	if option < 0 || option >= len(q.Options) {
		return fmt.Errorf("%w: %d", ErrOptionIndex, option)
	}
	q.Options[option] = text
	s.listChanged()
	return nil
}

func (s *GeneratorSession) SetCorrect(id string, option int) error {
	q, err := s.find(id)
	if err != nil {
		return err
	}
	if option < 0 || option >= len(q.Options) {
		return fmt.Errorf("%w: %d", ErrOptionIndex, option)
	}
	q.CorrectIndex = option
	s.listChanged()
	return nil
}

func (s *GeneratorSession) SetMarks(id string, marks int) error {
	if marks < 0 {
		return fmt.Errorf("marks cannot be negative")
	}
	q, err := s.find(id)
	if err != nil {
		return err
	}
	q.Marks = marks
	s.listChanged()
	return nil
}

func (s *GeneratorSession) Remove(id string) error {
	for i := range s.questions {
		if s.questions[i].ID == id {
			s.questions = append(s.questions[:i], s.questions[i+1:]...)
			s.listChanged()
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownQuestion, id)
}

func (s *GeneratorSession) Clear() {
	s.questions = nil
	s.listChanged()
}

// SuggestedDuration is the derived duration for the current draft
func (s *GeneratorSession) SuggestedDuration() int {
	return SuggestedDuration(len(s.questions))
}

// Duration is the duration that will be published: the operator override if
// one is set, otherwise the suggestion.
func (s *GeneratorSession) Duration() int {
	if s.durationOverride != nil {
		return *s.durationOverride
	}
	return s.SuggestedDuration()
}

func (s *GeneratorSession) SetDuration(minutes int) error {
	if minutes < 0 {
		return fmt.Errorf("duration cannot be negative")
	}
	s.durationOverride = &minutes
	return nil
}

// Save publishes the whole draft to an exam in one call. The draft is cleared
// on success and kept intact on failure.
func (s *GeneratorSession) Save(ctx context.Context, examID int64) (*models.SaveBulkResponse, error) {
	if examID == 0 {
		return nil, ErrExamRequired
	}
	if len(s.questions) == 0 {
		return nil, ErrNoQuestions
	}

	questions := make([]models.Question, 0, len(s.questions))
	for _, q := range s.questions {
		questions = append(questions, cloneDraft(q).Question)
	}

	saveResp, err := s.backend.SaveQuestionsBulk(ctx, models.SaveBulkRequest{
		ExamID:    examID,
		Questions: questions,
		Duration:  s.Duration(),
	})
	if err != nil {
		return nil, err
	}

	s.Clear()
	return saveResp, nil
}

func (s *GeneratorSession) find(id string) (*DraftQuestion, error) {
	for i := range s.questions {
		if s.questions[i].ID == id {
			return &s.questions[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownQuestion, id)
}

func (s *GeneratorSession) listChanged() {
	s.durationOverride = nil
}

func cloneDraft(q DraftQuestion) DraftQuestion {
	q.Options = append([]string(nil), q.Options...)
	return q
}

func cloneDrafts(in []DraftQuestion) []DraftQuestion {
	out := make([]DraftQuestion, 0, len(in))
	for _, q := range in {
		out = append(out, cloneDraft(q))
	}
	return out
}
