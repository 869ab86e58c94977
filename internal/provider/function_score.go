package provider

import (
	"context"
	"strings"

	"github.com/hashicorp/terraform-plugin-framework/function"

	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/examinfo"
)

// Ensure provider defined types fully satisfy framework interfaces.
var _ function.Function = &ScoreFunction{}

func NewScoreFunction() function.Function {
	return &ScoreFunction{}
}

// ScoreFunction projects an exam score from attempt counts
type ScoreFunction struct{}

func (f *ScoreFunction) Metadata(ctx context.Context, req function.MetadataRequest, resp *function.MetadataResponse) {
	resp.Name = "score"
}

func (f *ScoreFunction) Definition(ctx context.Context, req function.DefinitionRequest, resp *function.DefinitionResponse) {
	resp.Definition = function.Definition{
		Summary: "Projects the score of a written exam",
		MarkdownDescription: "Returns `correct * correct_mark - wrong * neg_mark` using the marking scheme of the role. " +
			"Fails when the attempts exceed the number of questions in the paper. Known roles: `" +
			strings.Join(examinfo.Roles(), "`, `") + "`.",
		Parameters: []function.Parameter{
			function.StringParameter{
				Name:                "role",
				MarkdownDescription: "Role key",
			},
			function.Int64Parameter{
				Name:                "correct",
				MarkdownDescription: "Number of correctly answered questions",
			},
			function.Int64Parameter{
				Name:                "wrong",
				MarkdownDescription: "Number of wrongly answered questions",
			},
		},
		Return: function.Float64Return{},
	}
}

func (f *ScoreFunction) Run(ctx context.Context, req function.RunRequest, resp *function.RunResponse) {
	var role string
	var correct, wrong int64

	resp.Error = function.ConcatFuncErrors(req.Arguments.Get(ctx, &role, &correct, &wrong))
	if resp.Error != nil {
		return
	}

	pattern, err := examinfo.Lookup(role)
	if err != nil {
		resp.Error = function.NewArgumentFuncError(0, err.Error())
		return
	}

	score, err := pattern.Score(int(correct), int(wrong))
	if err != nil {
		resp.Error = function.NewArgumentFuncError(2, err.Error())
		return
	}

	resp.Error = function.ConcatFuncErrors(resp.Result.Set(ctx, score))
}
