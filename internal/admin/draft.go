package admin

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Draft is the persisted form of a generator session
type Draft struct {
	Questions        []DraftQuestion `json:"questions"`
	DurationOverride *int            `json:"duration_override,omitempty"`
}

// Draft captures the session's questions and duration override
func (s *GeneratorSession) Draft() Draft {
	d := Draft{Questions: cloneDrafts(s.questions)}
	if s.durationOverride != nil {
		minutes := *s.durationOverride
		d.DurationOverride = &minutes
	}
	return d
}

// Restore replaces the session's questions and duration override with a saved draft
func (s *GeneratorSession) Restore(d Draft) {
	s.questions = cloneDrafts(d.Questions)
	s.durationOverride = nil
	if d.DurationOverride != nil {
		minutes := *d.DurationOverride
		s.durationOverride = &minutes
	}
}

// LoadDraftFile reads a draft, returning an empty one if the file does not exist
func LoadDraftFile(path string) (Draft, error) {
	var d Draft

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return d, nil
	}
	if err != nil {
		return d, fmt.Errorf("failed to read draft: %w", err)
	}

	if err := json.Unmarshal(data, &d); err != nil {
		return d, fmt.Errorf("failed to parse draft %s: %w", path, err)
	}
	return d, nil
}

// SaveDraftFile writes a draft as indented JSON
func SaveDraftFile(path string, d Draft) error {
	if d.Questions == nil {
		d.Questions = []DraftQuestion{}
	}

	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write draft: %w", err)
	}
	return nil
}
