package provider

import (
	"context"
	"fmt"

	"github.com/hashicorp/terraform-plugin-framework-validators/int64validator"
	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"

	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/admin"
	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/bitbybit"
	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/bitbybit/models"
)

// Ensure provider defined types fully satisfy framework interfaces.
var _ datasource.DataSource = &GeneratedQuestionsDataSource{}
var _ datasource.DataSourceWithConfigure = &GeneratedQuestionsDataSource{}

func NewGeneratedQuestionsDataSource() datasource.DataSource {
	return &GeneratedQuestionsDataSource{}
}

// GeneratedQuestionsDataSource asks the AI generator for a batch of questions.
type GeneratedQuestionsDataSource struct {
	client *bitbybit.Client
}

type GeneratedQuestionsDataSourceModel struct {
	TopicID            types.Int64         `tfsdk:"topic_id"`
	NumQuestions       types.Int64         `tfsdk:"num_questions"`
	Difficulty         types.String        `tfsdk:"difficulty"`
	CustomInstructions types.String        `tfsdk:"custom_instructions"`
	Questions          []ExamQuestionModel `tfsdk:"questions"`
	SuggestedDuration  types.Int64         `tfsdk:"suggested_duration"`
}

func (d *GeneratedQuestionsDataSource) Metadata(ctx context.Context, req datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_generated_questions"
}

func (d *GeneratedQuestionsDataSource) Schema(ctx context.Context, req datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	difficulties := make([]string, 0, len(models.Difficulties))
	for _, difficulty := range models.Difficulties {
		difficulties = append(difficulties, string(difficulty))
	}

	resp.Schema = schema.Schema{
		MarkdownDescription: "This data source generates multiple choice questions from a topic's study notes. " +
			"Every read produces a new batch, so review the output before publishing it with `bitbybit_exam_questions`.",

		Attributes: map[string]schema.Attribute{
			"topic_id": schema.Int64Attribute{
				MarkdownDescription: "ID of the topic to generate from",
				Required:            true,
				Validators: []validator.Int64{
					int64validator.AtLeast(1),
				},
			},
			"num_questions": schema.Int64Attribute{
				MarkdownDescription: "Number of questions to generate",
				Required:            true,
				Validators: []validator.Int64{
					int64validator.AtLeast(1),
				},
			},
			"difficulty": schema.StringAttribute{
				MarkdownDescription: fmt.Sprintf("Difficulty of the questions. Defaults to `%s`", models.DifficultyMedium),
				Optional:            true,
				Validators: []validator.String{
					stringvalidator.OneOf(difficulties...),
				},
			},
			"custom_instructions": schema.StringAttribute{
				MarkdownDescription: "Free text guidance passed to the generator",
				Optional:            true,
			},
			"questions": schema.ListNestedAttribute{
				MarkdownDescription: "The generated questions",
				Computed:            true,
				NestedObject: schema.NestedAttributeObject{
					Attributes: map[string]schema.Attribute{
						"question_text": schema.StringAttribute{
							MarkdownDescription: "The question stem",
							Computed:            true,
						},
						"options": schema.ListAttribute{
							MarkdownDescription: "Answer options",
							ElementType:         types.StringType,
							Computed:            true,
						},
						"correct_index": schema.Int64Attribute{
							MarkdownDescription: "Zero-based index of the correct option",
							Computed:            true,
						},
						"marks": schema.Int64Attribute{
							MarkdownDescription: "Marks awarded for a correct answer",
							Computed:            true,
						},
					},
				},
			},
			"suggested_duration": schema.Int64Attribute{
				MarkdownDescription: fmt.Sprintf("Exam duration in minutes for the batch, %.1f minutes per question rounded up", admin.MinutesPerQuestion),
				Computed:            true,
			},
		},
	}
}

func (d *GeneratedQuestionsDataSource) Configure(ctx context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
	d.client = configureDataSourceClient(req, resp)
}

func (d *GeneratedQuestionsDataSource) Read(ctx context.Context, req datasource.ReadRequest, resp *datasource.ReadResponse) {
	var data GeneratedQuestionsDataSourceModel

	// Read Terraform configuration data into the model
	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)

	if resp.Diagnostics.HasError() {
		return
	}

	difficulty := models.DifficultyMedium
	if !data.Difficulty.IsNull() {
		difficulty = models.Difficulty(data.Difficulty.ValueString())
	}

	questions, err := d.client.GenerateQuestions(ctx, models.GenerateQuestionsRequest{
		TopicID:            data.TopicID.ValueInt64(),
		NumQuestions:       int(data.NumQuestions.ValueInt64()),
		Difficulty:         difficulty,
		CustomInstructions: data.CustomInstructions.ValueString(),
	})
	if err != nil {
		resp.Diagnostics.AddError(
			"Error Generating Questions",
			fmt.Sprintf("Could not generate questions for topic %d: %s", data.TopicID.ValueInt64(), err),
		)
		return
	}

	data.Questions = make([]ExamQuestionModel, 0, len(questions))
	for _, q := range questions {
		options := make([]types.String, 0, len(q.Options))
		for _, o := range q.Options {
			options = append(options, types.StringValue(o))
		}
		data.Questions = append(data.Questions, ExamQuestionModel{
			QuestionText: types.StringValue(q.QuestionText),
			Options:      options,
			CorrectIndex: types.Int64Value(int64(q.CorrectIndex)),
			Marks:        types.Int64Value(int64(q.Marks)),
		})
	}
	data.SuggestedDuration = types.Int64Value(int64(admin.SuggestedDuration(len(questions))))

	tflog.Trace(ctx, fmt.Sprintf("generated %d questions for topic %d", len(questions), data.TopicID.ValueInt64()))

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}
