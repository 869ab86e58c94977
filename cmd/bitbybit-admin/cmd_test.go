package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/admin"
	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/bitbybit"
	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/bitbybit/credentials"
	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/bitbybit/models"
	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/bitbybit/test"
)

func setup(t *testing.T) (*commandLine, *test.FakeBackend, *bytes.Buffer) {
	t.Helper()

	backend := test.NewFakeBackend(t, test.TestToken)
	store := credentials.NewMemoryStore(test.TestToken)
	client, err := bitbybit.New(backend.URL(), bitbybit.WithCredentialStore(store))
	require.NoError(t, err)

	out := &bytes.Buffer{}
	return &commandLine{
		client:    client,
		store:     store,
		draftPath: filepath.Join(t.TempDir(), "draft.json"),
		out:       out,
	}, backend, out
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
	wantOut    string
}

func runCLITests(t *testing.T, cli *commandLine, out *bytes.Buffer, tests []cliTest) {
	t.Helper()

	for _, tt := range tests {
		args := append([]string{"bitbybit-admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			out.Reset()
			err := cli.run(args)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantErrStr != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrStr)
			default:
				require.NoError(t, err)
			}
			if tt.wantOut != "" {
				assert.Contains(t, out.String(), tt.wantOut)
			}
		})
	}
}

func Test_commandLine_usage(t *testing.T) {
	cli, _, out := setup(t)

	runCLITests(t, cli, out, []cliTest{
		{name: "no command", wantErr: errHelp, wantOut: "Usage:"},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "token: no subcommand", args: []string{"token"}, wantErr: errHelp},
		{name: "banners: unknown subcommand", args: []string{"banners", "lol"}, wantErr: errHelp},
		{name: "draft: unknown subcommand", args: []string{"draft", "lol"}, wantErr: errHelp},
		{name: "generate: no topic", args: []string{"generate"}, wantErr: errHelp},
		{name: "publish: no exam", args: []string{"publish"}, wantErr: errHelp},
		{name: "score: no attempts", args: []string{"score"}, wantErr: errHelp},
		{name: "chart: no output", args: []string{"chart"}, wantErr: errHelp},
		{name: "bad flag", args: []string{"banners", "delete", "-id", "lol"}, wantErr: errHelp},
	})
}

func Test_commandLine_token(t *testing.T) {
	cli, _, out := setup(t)

	prev := readPasswordFunc
	t.Cleanup(func() { readPasswordFunc = prev })
	readPasswordFunc = func(int) ([]byte, error) { return []byte("prompted-token-value"), nil }

	runCLITests(t, cli, out, []cliTest{
		{name: "show", args: []string{"token", "show"}, wantOut: "expires: unknown"},
		{name: "set from flag", args: []string{"token", "set", "-token", "flag-token-value"}, wantOut: "access token saved"},
		{name: "show masked", args: []string{"token", "show"}, wantOut: "flag...alue"},
		{name: "set from prompt", args: []string{"token", "set"}, wantOut: "access token saved"},
		{name: "show prompted", args: []string{"token", "show"}, wantOut: "prom...alue"},
		{name: "clear", args: []string{"token", "clear"}, wantOut: "access token cleared"},
		{name: "show cleared", args: []string{"token", "show"}, wantOut: "no access token saved"},
	})

	readPasswordFunc = func(int) ([]byte, error) { return nil, nil }
	runCLITests(t, cli, out, []cliTest{
		{name: "empty prompt", args: []string{"token", "set"}, wantErr: errHelp},
	})
}

func Test_commandLine_banners(t *testing.T) {
	cli, backend, out := setup(t)

	seeded := models.NewBannerForm()
	seeded.Title = gofakeit.Sentence(3)
	existing := backend.SeedBanner(seeded)
	title := gofakeit.Sentence(3)

	runCLITests(t, cli, out, []cliTest{
		{name: "list", args: []string{"banners", "list"}, wantOut: existing.Title},
		{name: "create: no title", args: []string{"banners", "create"}, wantErr: errHelp},
		{name: "create", args: []string{"banners", "create", "-title", title, "-from", "red-600"}, wantOut: "created banner 2"},
		{name: "delete: no id", args: []string{"banners", "delete"}, wantErr: errHelp},
		{name: "delete", args: []string{"banners", "delete", "-id", "1"}, wantOut: "deleted banner 1"},
		{name: "delete unknown", args: []string{"banners", "delete", "-id", "1"}, wantErrStr: "API error: 404"},
	})

	banners := backend.Banners()
	require.Len(t, banners, 1)
	assert.Equal(t, title, banners[0].Title)
	assert.Equal(t, "red-600", banners[0].BgGradientFrom)
	assert.Equal(t, models.DefaultBannerGradientTo, banners[0].BgGradientTo)
}

func Test_commandLine_catalog(t *testing.T) {
	cli, _, out := setup(t)

	runCLITests(t, cli, out, []cliTest{
		{name: "topics", args: []string{"topics"}, wantOut: "Modern History"},
		{name: "exams", args: []string{"exams"}, wantOut: "60 min"},
	})

	require.NoError(t, cli.store.Clear(context.Background()))
	runCLITests(t, cli, out, []cliTest{
		{name: "topics without token", args: []string{"topics"}, wantErrStr: "API error: 401"},
	})
}

func Test_commandLine_generatorWorkflow(t *testing.T) {
	cli, backend, out := setup(t)

	runCLITests(t, cli, out, []cliTest{
		{name: "empty draft", args: []string{"draft", "show"}, wantOut: "draft is empty"},
		{name: "generate", args: []string{"generate", "-topic", "1", "-n", "3", "-difficulty", "Easy"}, wantOut: "3 questions, duration 5 minutes"},
		{name: "generate more", args: []string{"generate", "-topic", "2", "-n", "2"}, wantOut: "5 questions, duration 8 minutes"},
		{name: "generate without notes", args: []string{"generate", "-topic", "99", "-n", "2"}, wantErrStr: "no notes to generate from"},
		{name: "add blank", args: []string{"draft", "add"}, wantOut: "6. New Question..."},
		{name: "set text", args: []string{"draft", "set-text", "-q", "6", "-text", "What is 7 x 8?"}, wantOut: "6. What is 7 x 8?"},
		{name: "set option", args: []string{"draft", "set-option", "-q", "6", "-option", "2", "-text", "56"}, wantOut: "2) 56"},
		{name: "set correct", args: []string{"draft", "set-correct", "-q", "6", "-option", "2"}, wantOut: "* 2) 56"},
		{name: "set correct out of range", args: []string{"draft", "set-correct", "-q", "6", "-option", "9"}, wantErr: admin.ErrOptionIndex},
		{name: "set marks", args: []string{"draft", "set-marks", "-q", "6", "-marks", "4"}, wantOut: "[4 marks]"},
		{name: "unknown position", args: []string{"draft", "rm", "-q", "42"}, wantErr: admin.ErrUnknownQuestion},
		{name: "no position", args: []string{"draft", "rm"}, wantErr: errHelp},
		{name: "override duration", args: []string{"draft", "duration", "-minutes", "20"}, wantOut: "duration 20 minutes (suggested 9)"},
		{name: "remove resets override", args: []string{"draft", "rm", "-q", "1"}, wantOut: "5 questions, duration 8 minutes"},
		{name: "publish without exam", args: []string{"publish", "-exam", "0"}, wantErr: errHelp},
		{name: "publish to unknown exam", args: []string{"publish", "-exam", "77"}, wantErrStr: "API error: 404"},
		{name: "draft kept after failure", args: []string{"draft", "show"}, wantOut: "5 questions"},
		{name: "publish", args: []string{"publish", "-exam", "2"}, wantOut: "added 5 questions to exam 2"},
		{name: "draft cleared after publish", args: []string{"draft", "show"}, wantOut: "draft is empty"},
		{name: "publish empty draft", args: []string{"publish", "-exam", "2"}, wantErr: admin.ErrNoQuestions},
	})

	saved := backend.SavedQuestions(2)
	require.Len(t, saved, 5)
	assert.Equal(t, "What is 7 x 8?", saved[4].QuestionText)
	assert.Equal(t, 2, saved[4].CorrectIndex)
	assert.Equal(t, 4, saved[4].Marks)

	exam, ok := backend.Exam(2)
	require.True(t, ok)
	assert.Equal(t, 8, exam.DurationMinutes)
}

func Test_commandLine_draftClear(t *testing.T) {
	cli, _, out := setup(t)

	runCLITests(t, cli, out, []cliTest{
		{name: "add", args: []string{"draft", "add"}},
		{name: "clear", args: []string{"draft", "clear"}, wantOut: "draft cleared"},
		{name: "show", args: []string{"draft", "show"}, wantOut: "draft is empty"},
	})
}

func Test_commandLine_examInfo(t *testing.T) {
	cli, _, out := setup(t)
	chartPath := filepath.Join(t.TempDir(), "chart.svg")

	runCLITests(t, cli, out, []cliTest{
		{name: "default pattern", args: []string{"pattern"}, wantOut: "General Duty (GD)"},
		{name: "pattern subject", args: []string{"pattern", "-role", "clerk", "-subject", "English"}, wantOut: "Vocabulary"},
		{name: "unknown role", args: []string{"pattern", "-role", "pilot"}, wantErrStr: "known roles: clerk, gd, tech"},
		{name: "unknown subject", args: []string{"pattern", "-subject", "Cooking"}, wantErrStr: "not a syllabus subject"},
		{name: "score", args: []string{"score", "-correct", "10", "-wrong", "5"}, wantOut: "projected score: 17.5 / 100"},
		{name: "score tech", args: []string{"score", "-role", "tech", "-correct", "30", "-wrong", "20"}, wantOut: "projected score: 100 / 200"},
		{name: "score too many", args: []string{"score", "-correct", "40", "-wrong", "15"}, wantErrStr: "cannot exceed"},
		{name: "chart", args: []string{"chart", "-role", "clerk", "-out", chartPath}, wantOut: "chart written to"},
	})

	svg, err := os.ReadFile(chartPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(svg), "<svg"))
	assert.Contains(t, string(svg), "Computer Science")
}
