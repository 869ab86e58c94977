package bitbybit

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/bitbybit/models"
)

// GenerateQuestions asks the AI generator for a batch of questions based on a topic's notes
func (c *Client) GenerateQuestions(ctx context.Context, req models.GenerateQuestionsRequest) ([]models.Question, error) {
	if req.TopicID == 0 {
		return nil, fmt.Errorf("topic ID is required")
	}
	if req.NumQuestions <= 0 {
		return nil, fmt.Errorf("number of questions must be positive")
	}
	if req.Difficulty == "" {
		req.Difficulty = models.DifficultyMedium
	}
	if !req.Difficulty.Valid() {
		return nil, fmt.Errorf("unknown difficulty: %s", req.Difficulty)
	}

	var questions []models.Question
	if _, err := c.doRequest(ctx, http.MethodPost, "ai-generator/generate/", req, &questions); err != nil {
		return nil, fmt.Errorf("failed to generate questions: %w", err)
	}

	return questions, nil
}

// SaveQuestionsBulk persists a batch of questions into an exam and sets its duration
func (c *Client) SaveQuestionsBulk(ctx context.Context, req models.SaveBulkRequest) (*models.SaveBulkResponse, error) {
	if req.ExamID == 0 {
		return nil, fmt.Errorf("exam ID is required")
	}

	// Send an empty list rather than null
	if req.Questions == nil {
		req.Questions = []models.Question{}
	}

	var saveResp models.SaveBulkResponse
	if _, err := c.doRequest(ctx, http.MethodPost, "ai-generator/save_bulk/", req, &saveResp); err != nil {
		return nil, fmt.Errorf("failed to save questions: %w", err)
	}

	return &saveResp, nil
}
