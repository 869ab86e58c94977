package admin

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/bitbybit/models"
	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/bitbybit/test"
)

func TestSuggestedDuration(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{n: 0, want: 0},
		{n: 1, want: 2},
		{n: 2, want: 3},
		{n: 5, want: 8},
		{n: 10, want: 15},
		{n: 51, want: 77},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SuggestedDuration(tt.n), "n=%d", tt.n)
	}
}

func TestGeneratorSessionAccumulatesBatches(t *testing.T) {
	backend := test.NewFakeBackend(t, test.TestToken)
	session := NewGeneratorSession(newClient(t, backend))
	ctx := context.Background()

	require.NoError(t, session.LoadSources(ctx))
	assert.NotEmpty(t, session.Topics())
	assert.NotEmpty(t, session.Exams())

	_, err := session.Generate(ctx, GenerateOptions{TopicID: 1, NumQuestions: 3, Difficulty: models.DifficultyEasy})
	require.NoError(t, err)
	_, err = session.Generate(ctx, GenerateOptions{TopicID: 2, NumQuestions: 2, Difficulty: models.DifficultyHard})
	require.NoError(t, err)

	assert.Equal(t, 5, session.Len())
	assert.Equal(t, 8, session.Duration())

	ids := make(map[string]bool)
	for _, q := range session.Questions() {
		assert.NotEmpty(t, q.ID)
		ids[q.ID] = true
	}
	assert.Len(t, ids, 5)
}

func TestGeneratorSessionRequiresTopic(t *testing.T) {
	backend := test.NewFakeBackend(t, test.TestToken)
	session := NewGeneratorSession(newClient(t, backend))

	_, err := session.Generate(context.Background(), GenerateOptions{NumQuestions: 5})
	assert.ErrorIs(t, err, ErrTopicRequired)
	assert.Empty(t, backend.Requests())
}

func TestGeneratorSessionGenerateFailureKeepsDraft(t *testing.T) {
	backend := test.NewFakeBackend(t, test.TestToken)
	session := NewGeneratorSession(newClient(t, backend))
	session.AddBlank()

	_, err := session.Generate(context.Background(), GenerateOptions{TopicID: test.TopicWithoutNotes, NumQuestions: 5})
	require.Error(t, err)
	assert.Equal(t, 1, session.Len())
}

func TestGeneratorSessionEdits(t *testing.T) {
	session := NewGeneratorSession(nil)

	first := session.AddBlank()
	second := session.AddBlank()
	third := session.AddBlank()
	assert.Equal(t, models.NewBlankQuestion(), first.Question)

	require.NoError(t, session.UpdateText(second.ID, "What is 2+2?"))
	require.NoError(t, session.UpdateOption(second.ID, 3, "4"))
	require.NoError(t, session.SetCorrect(second.ID, 3))
	require.NoError(t, session.SetMarks(second.ID, 4))

	assert.ErrorIs(t, session.UpdateOption(second.ID, 4, "x"), ErrOptionIndex)
	assert.ErrorIs(t, session.SetCorrect(second.ID, -1), ErrOptionIndex)
	assert.ErrorIs(t, session.UpdateText("missing", "x"), ErrUnknownQuestion)
	assert.Error(t, session.SetMarks(second.ID, -1))

	require.NoError(t, session.Remove(first.ID))
	assert.ErrorIs(t, session.Remove(first.ID), ErrUnknownQuestion)

	questions := session.Questions()
	require.Len(t, questions, 2)
	assert.Equal(t, second.ID, questions[0].ID)
	assert.Equal(t, third.ID, questions[1].ID)
	assert.Equal(t, "What is 2+2?", questions[0].QuestionText)
	assert.Equal(t, []string{"Option A", "Option B", "Option C", "4"}, questions[0].Options)
	assert.Equal(t, 3, questions[0].CorrectIndex)
	assert.Equal(t, 4, questions[0].Marks)

	// The blank template is not shared between questions
	assert.Equal(t, "Option D", questions[1].Options[3])

	id, err := session.IDAt(1)
	require.NoError(t, err)
	assert.Equal(t, third.ID, id)
	_, err = session.IDAt(2)
	assert.ErrorIs(t, err, ErrUnknownQuestion)
}

func TestGeneratorSessionQuestionsAreCopies(t *testing.T) {
	session := NewGeneratorSession(nil)
	q := session.AddBlank()

	questions := session.Questions()
	questions[0].Options[0] = "mutated"

	assert.Equal(t, "Option A", session.Questions()[0].Options[0])
	assert.Equal(t, q.ID, session.Questions()[0].ID)
}

func TestGeneratorSessionDurationOverride(t *testing.T) {
	session := NewGeneratorSession(nil)
	assert.Equal(t, 0, session.Duration())

	session.AddBlank()
	session.AddBlank()
	assert.Equal(t, 3, session.Duration())

	require.NoError(t, session.SetDuration(45))
	assert.Equal(t, 45, session.Duration())
	assert.Error(t, session.SetDuration(-1))

	// Any change to the question list drops the override
	id, err := session.IDAt(0)
	require.NoError(t, err)

	edits := map[string]func() error{
		"text":    func() error { return session.UpdateText(id, "edited") },
		"option":  func() error { return session.UpdateOption(id, 1, "changed") },
		"correct": func() error { return session.SetCorrect(id, 2) },
		"marks":   func() error { return session.SetMarks(id, 4) },
	}
	for name, edit := range edits {
		require.NoError(t, session.SetDuration(45))
		require.NoError(t, edit(), name)
		assert.Equal(t, 3, session.Duration(), name)
		assert.Equal(t, session.SuggestedDuration(), session.Duration(), name)
	}

	// A rejected edit leaves the override alone
	require.NoError(t, session.SetDuration(45))
	assert.ErrorIs(t, session.UpdateOption(id, 9, "nope"), ErrOptionIndex)
	assert.Equal(t, 45, session.Duration())

	session.AddBlank()
	assert.Equal(t, 5, session.Duration())
}

func TestGeneratorSessionSave(t *testing.T) {
	backend := test.NewFakeBackend(t, test.TestToken)
	session := NewGeneratorSession(newClient(t, backend))
	ctx := context.Background()

	_, err := session.Save(ctx, 1)
	assert.ErrorIs(t, err, ErrNoQuestions)

	_, err = session.Generate(ctx, GenerateOptions{TopicID: 1, NumQuestions: 4})
	require.NoError(t, err)
	session.AddBlank()

	_, err = session.Save(ctx, 0)
	assert.ErrorIs(t, err, ErrExamRequired)

	saveResp, err := session.Save(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, saveResp.Added)
	assert.True(t, saveResp.DurationUpdated)
	assert.Zero(t, session.Len())

	exam, ok := backend.Exam(1)
	require.True(t, ok)
	assert.Equal(t, 8, exam.DurationMinutes)
	saved := backend.SavedQuestions(1)
	require.Len(t, saved, 5)
	assert.Equal(t, models.NewBlankQuestion(), saved[4])
	assert.NotContains(t, string(backend.LastRequest().Body), `"id"`)
}

type failingSaver struct {
	GeneratorBackend
}

func (failingSaver) SaveQuestionsBulk(context.Context, models.SaveBulkRequest) (*models.SaveBulkResponse, error) {
	return nil, errors.New("network down")
}

func TestGeneratorSessionSaveFailureKeepsDraft(t *testing.T) {
	session := NewGeneratorSession(failingSaver{})
	session.AddBlank()
	require.NoError(t, session.SetDuration(30))

	_, err := session.Save(context.Background(), 1)
	assert.Error(t, err)
	assert.Equal(t, 1, session.Len())
	assert.Equal(t, 30, session.Duration())
}

func TestDraftRoundTripThroughFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draft.json")

	empty, err := LoadDraftFile(path)
	require.NoError(t, err)
	assert.Empty(t, empty.Questions)

	session := NewGeneratorSession(nil)
	q := session.AddBlank()
	require.NoError(t, session.SetDuration(12))
	require.NoError(t, SaveDraftFile(path, session.Draft()))

	loaded, err := LoadDraftFile(path)
	require.NoError(t, err)

	restored := NewGeneratorSession(nil)
	restored.Restore(loaded)
	assert.Equal(t, session.Questions(), restored.Questions())
	assert.Equal(t, q.ID, restored.Questions()[0].ID)
	assert.Equal(t, 12, restored.Duration())
}
