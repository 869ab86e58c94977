package provider

import (
	"context"
	"fmt"

	"github.com/hashicorp/terraform-plugin-framework/function"

	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/admin"
)

// Ensure provider defined types fully satisfy framework interfaces.
var _ function.Function = &SuggestedDurationFunction{}

func NewSuggestedDurationFunction() function.Function {
	return &SuggestedDurationFunction{}
}

// SuggestedDurationFunction derives an exam duration from a question count
type SuggestedDurationFunction struct{}

func (f *SuggestedDurationFunction) Metadata(ctx context.Context, req function.MetadataRequest, resp *function.MetadataResponse) {
	resp.Name = "suggested_duration"
}

func (f *SuggestedDurationFunction) Definition(ctx context.Context, req function.DefinitionRequest, resp *function.DefinitionResponse) {
	resp.Definition = function.Definition{
		Summary:             "Suggests an exam duration for a number of questions",
		MarkdownDescription: fmt.Sprintf("Returns the duration in minutes at %.1f minutes per question, rounded up.", admin.MinutesPerQuestion),
		Parameters: []function.Parameter{
			function.Int64Parameter{
				Name:                "questions",
				MarkdownDescription: "Number of questions",
			},
		},
		Return: function.Int64Return{},
	}
}

func (f *SuggestedDurationFunction) Run(ctx context.Context, req function.RunRequest, resp *function.RunResponse) {
	var questions int64

	resp.Error = function.ConcatFuncErrors(req.Arguments.Get(ctx, &questions))
	if resp.Error != nil {
		return
	}

	if questions < 0 {
		resp.Error = function.NewArgumentFuncError(0, "number of questions cannot be negative")
		return
	}

	resp.Error = function.ConcatFuncErrors(resp.Result.Set(ctx, int64(admin.SuggestedDuration(int(questions)))))
}
