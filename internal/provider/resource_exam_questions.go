package provider

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hashicorp/terraform-plugin-framework-validators/int64validator"
	"github.com/hashicorp/terraform-plugin-framework-validators/listvalidator"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/int64default"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/int64planmodifier"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/listplanmodifier"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/planmodifier"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/stringplanmodifier"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"

	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/admin"
	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/bitbybit"
	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/bitbybit/models"
)

// Ensure provider defined types fully satisfy framework interfaces.
var _ resource.Resource = &ExamQuestions{}

func ExamQuestionsResource() resource.Resource {
	return &ExamQuestions{}
}

// ExamQuestions publishes a reviewed batch of questions into an exam
type ExamQuestions struct {
	client *bitbybit.Client
}

// ExamQuestionsModel describes the resource data model.
type ExamQuestionsModel struct {
	ID              types.String        `tfsdk:"id"`
	ExamID          types.Int64         `tfsdk:"exam_id"`
	Duration        types.Int64         `tfsdk:"duration"`
	Questions       []ExamQuestionModel `tfsdk:"questions"`
	Added           types.Int64         `tfsdk:"added"`
	DurationUpdated types.Bool          `tfsdk:"duration_updated"`
}

// ExamQuestionModel describes a single question of the batch.
type ExamQuestionModel struct {
	QuestionText types.String   `tfsdk:"question_text"`
	Options      []types.String `tfsdk:"options"`
	CorrectIndex types.Int64    `tfsdk:"correct_index"`
	Marks        types.Int64    `tfsdk:"marks"`
}

func (r *ExamQuestions) Metadata(ctx context.Context, req resource.MetadataRequest, resp *resource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_exam_questions"
}

func (r *ExamQuestions) Schema(ctx context.Context, req resource.SchemaRequest, resp *resource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "This resource publishes a batch of questions into an exam in a single bulk call. " +
			"Published questions cannot be read back or removed through the API: destroying the resource only forgets it, " +
			"and changing it publishes a new batch.",
		Attributes: map[string]schema.Attribute{
			"id": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Identifier of the published batch",
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.UseStateForUnknown(),
				},
			},
			"exam_id": schema.Int64Attribute{
				MarkdownDescription: "ID of the exam the questions are added to",
				Required:            true,
				PlanModifiers: []planmodifier.Int64{
					int64planmodifier.RequiresReplace(),
				},
				Validators: []validator.Int64{
					int64validator.AtLeast(1),
				},
			},
			"duration": schema.Int64Attribute{
				MarkdownDescription: fmt.Sprintf("Exam duration in minutes written together with the batch. "+
					"Defaults to %.1f minutes per question, rounded up. `0` leaves the exam duration unchanged.", admin.MinutesPerQuestion),
				Optional: true,
				Computed: true,
				PlanModifiers: []planmodifier.Int64{
					int64planmodifier.RequiresReplaceIfConfigured(),
					int64planmodifier.UseStateForUnknown(),
				},
				Validators: []validator.Int64{
					int64validator.AtLeast(0),
				},
			},
			"questions": schema.ListNestedAttribute{
				MarkdownDescription: "Questions to publish, in order",
				Required:            true,
				PlanModifiers: []planmodifier.List{
					listplanmodifier.RequiresReplace(),
				},
				Validators: []validator.List{
					listvalidator.SizeAtLeast(1),
				},
				NestedObject: schema.NestedAttributeObject{
					Attributes: map[string]schema.Attribute{
						"question_text": schema.StringAttribute{
							MarkdownDescription: "The question stem",
							Required:            true,
						},
						"options": schema.ListAttribute{
							MarkdownDescription: "Answer options",
							ElementType:         types.StringType,
							Required:            true,
							Validators: []validator.List{
								listvalidator.SizeAtLeast(2),
							},
						},
						"correct_index": schema.Int64Attribute{
							MarkdownDescription: "Zero-based index of the correct option",
							Required:            true,
							Validators: []validator.Int64{
								int64validator.AtLeast(0),
							},
						},
						"marks": schema.Int64Attribute{
							MarkdownDescription: fmt.Sprintf("Marks awarded for a correct answer. Defaults to `%d`", models.DefaultMarks),
							Optional:            true,
							Computed:            true,
							Default:             int64default.StaticInt64(models.DefaultMarks),
							Validators: []validator.Int64{
								int64validator.AtLeast(0),
							},
						},
					},
				},
			},
			"added": schema.Int64Attribute{
				Computed:            true,
				MarkdownDescription: "Number of questions the API reported as added",
				PlanModifiers: []planmodifier.Int64{
					int64planmodifier.UseStateForUnknown(),
				},
			},
			"duration_updated": schema.BoolAttribute{
				Computed:            true,
				MarkdownDescription: "Whether the exam duration was changed by the publish",
			},
		},
	}
}

func (r *ExamQuestions) Configure(ctx context.Context, req resource.ConfigureRequest, resp *resource.ConfigureResponse) {
	// Prevent panic if the provider has not been configured.
	if req.ProviderData == nil {
		return
	}

	client, ok := req.ProviderData.(*bitbybit.Client)

	if !ok {
		resp.Diagnostics.AddError(
			"Unexpected Resource Configure Type",
			fmt.Sprintf("Expected *bitbybit.Client, got: %T. Please report this issue to the provider developers.", req.ProviderData),
		)

		return
	}

	r.client = client
}

func (r *ExamQuestions) Create(ctx context.Context, req resource.CreateRequest, resp *resource.CreateResponse) {
	var data ExamQuestionsModel

	// Read Terraform plan data into the model
	resp.Diagnostics.Append(req.Plan.Get(ctx, &data)...)

	if resp.Diagnostics.HasError() {
		return
	}

	questions := make([]models.Question, 0, len(data.Questions))
	for i, q := range data.Questions {
		options := make([]string, 0, len(q.Options))
		for _, o := range q.Options {
			options = append(options, o.ValueString())
		}

		correct := int(q.CorrectIndex.ValueInt64())
		if correct >= len(options) {
			resp.Diagnostics.AddAttributeError(
				path.Root("questions").AtListIndex(i).AtName("correct_index"),
				"Invalid correct option",
				fmt.Sprintf("correct_index %d is out of range for %d options", correct, len(options)),
			)
			continue
		}

		questions = append(questions, models.Question{
			QuestionText: q.QuestionText.ValueString(),
			Options:      options,
			CorrectIndex: correct,
			Marks:        int(q.Marks.ValueInt64()),
		})
	}

	if resp.Diagnostics.HasError() {
		return
	}

	duration := admin.SuggestedDuration(len(questions))
	if !data.Duration.IsNull() && !data.Duration.IsUnknown() {
		duration = int(data.Duration.ValueInt64())
	}

	saveResp, err := r.client.SaveQuestionsBulk(ctx, models.SaveBulkRequest{
		ExamID:    data.ExamID.ValueInt64(),
		Questions: questions,
		Duration:  duration,
	})
	if err != nil {
		resp.Diagnostics.AddError(
			"Error publishing BitByBit exam questions",
			fmt.Sprintf("Could not publish %d questions to exam %d, unexpected error: %s", len(questions), data.ExamID.ValueInt64(), err),
		)
		return
	}

	data.ID = types.StringValue(uuid.NewString())
	data.Duration = types.Int64Value(int64(duration))
	data.Added = types.Int64Value(int64(saveResp.Added))
	data.DurationUpdated = types.BoolValue(saveResp.DurationUpdated)

	tflog.Trace(ctx, fmt.Sprintf("published %d questions to exam %d", saveResp.Added, data.ExamID.ValueInt64()))

	// Save data into Terraform state
	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}

func (r *ExamQuestions) Read(ctx context.Context, req resource.ReadRequest, resp *resource.ReadResponse) {
	var data ExamQuestionsModel

	// Read Terraform prior state data into the model
	resp.Diagnostics.Append(req.State.Get(ctx, &data)...)

	if resp.Diagnostics.HasError() {
		return
	}

	// Published questions cannot be listed, so only the exam itself is checked
	exams, err := r.client.ListExams(ctx)
	if err != nil {
		resp.Diagnostics.AddError(
			"Error reading BitByBit exams",
			"Could not list exams: "+err.Error(),
		)
		return
	}

	for _, exam := range exams {
		if exam.ID == data.ExamID.ValueInt64() {
			resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
			return
		}
	}

	tflog.Warn(ctx, "exam no longer exists, removing published questions from state", map[string]interface{}{
		"exam_id": data.ExamID.ValueInt64(),
	})
	resp.State.RemoveResource(ctx)
}

// Update is never planned because every configurable attribute forces replacement.
func (r *ExamQuestions) Update(ctx context.Context, req resource.UpdateRequest, resp *resource.UpdateResponse) {
	resp.Diagnostics.AddError(
		"Error updating BitByBit exam questions",
		"Published questions cannot be updated in place. Please report this issue to the provider developers.",
	)
}

func (r *ExamQuestions) Delete(ctx context.Context, req resource.DeleteRequest, resp *resource.DeleteResponse) {
	var data ExamQuestionsModel

	// Read Terraform prior state data into the model
	resp.Diagnostics.Append(req.State.Get(ctx, &data)...)

	if resp.Diagnostics.HasError() {
		return
	}

	tflog.Warn(ctx, "published questions are kept by the exam, only removing them from state", map[string]interface{}{
		"exam_id": data.ExamID.ValueInt64(),
		"added":   data.Added.ValueInt64(),
	})
}
