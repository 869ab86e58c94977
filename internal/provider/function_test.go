package provider

import (
	"context"
	"testing"

	"github.com/hashicorp/terraform-plugin-framework/attr"
	"github.com/hashicorp/terraform-plugin-framework/function"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-testing/helper/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runFunction(t *testing.T, f function.Function, result attr.Value, args ...attr.Value) *function.RunResponse {
	t.Helper()

	resp := &function.RunResponse{Result: function.NewResultData(result)}
	f.Run(context.Background(), function.RunRequest{Arguments: function.NewArgumentsData(args)}, resp)
	return resp
}

func TestScoreFunction(t *testing.T) {
	testCases := []struct {
		role           string
		correct, wrong int64
		want           float64
	}{
		{role: "gd", correct: 10, wrong: 5, want: 17.5},
		{role: "gd", correct: 0, wrong: 10, want: -5},
		{role: "tech", correct: 30, wrong: 20, want: 100},
		{role: "clerk", correct: 50, wrong: 0, want: 200},
	}

	for _, tc := range testCases {
		resp := runFunction(t, NewScoreFunction(), types.Float64Unknown(),
			types.StringValue(tc.role), types.Int64Value(tc.correct), types.Int64Value(tc.wrong))
		require.Nil(t, resp.Error, "%s %d/%d", tc.role, tc.correct, tc.wrong)

		got, ok := resp.Result.Value().(types.Float64)
		require.True(t, ok)
		assert.InDelta(t, tc.want, got.ValueFloat64(), 1e-9, "%s %d/%d", tc.role, tc.correct, tc.wrong)
	}
}

func TestScoreFunctionErrors(t *testing.T) {
	resp := runFunction(t, NewScoreFunction(), types.Float64Unknown(),
		types.StringValue("pilot"), types.Int64Value(1), types.Int64Value(1))
	require.NotNil(t, resp.Error)
	assert.Contains(t, resp.Error.Error(), "unknown role")

	resp = runFunction(t, NewScoreFunction(), types.Float64Unknown(),
		types.StringValue("gd"), types.Int64Value(40), types.Int64Value(15))
	require.NotNil(t, resp.Error)
	assert.Contains(t, resp.Error.Error(), "cannot exceed")
}

func TestSuggestedDurationFunction(t *testing.T) {
	for questions, want := range map[int64]int64{0: 0, 1: 2, 10: 15, 11: 17} {
		resp := runFunction(t, NewSuggestedDurationFunction(), types.Int64Unknown(), types.Int64Value(questions))
		require.Nil(t, resp.Error)
		assert.Equal(t, types.Int64Value(want), resp.Result.Value(), "%d questions", questions)
	}

	resp := runFunction(t, NewSuggestedDurationFunction(), types.Int64Unknown(), types.Int64Value(-1))
	assert.NotNil(t, resp.Error)
}

func TestAccFunctions(t *testing.T) {
	resource.Test(t, resource.TestCase{
		PreCheck:                 func() { testAccPreCheck(t) },
		ProtoV6ProviderFactories: testAccProtoV6ProviderFactories,
		Steps: []resource.TestStep{
			{
				Config: `
output "score" {
  value = provider::bitbybit::score("gd", 10, 5)
}

output "duration" {
  value = provider::bitbybit::suggested_duration(25)
}
`,
				Check: resource.ComposeAggregateTestCheckFunc(
					resource.TestCheckOutput("score", "17.5"),
					resource.TestCheckOutput("duration", "38"),
				),
			},
		},
	})
}
