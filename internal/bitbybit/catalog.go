package bitbybit

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/bitbybit/models"
)

// ListTopics retrieves the study topics available to the generator
func (c *Client) ListTopics(ctx context.Context) ([]models.Topic, error) {
	var topics []models.Topic
	if _, err := c.doRequest(ctx, http.MethodGet, "topics/", nil, &topics); err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}

	return topics, nil
}

// ListExams retrieves the exams questions can be published into
func (c *Client) ListExams(ctx context.Context) ([]models.Exam, error) {
	var exams []models.Exam
	if _, err := c.doRequest(ctx, http.MethodGet, "exams/", nil, &exams); err != nil {
		return nil, fmt.Errorf("failed to list exams: %w", err)
	}

	return exams, nil
}
