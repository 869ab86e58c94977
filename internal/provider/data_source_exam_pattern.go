package provider

import (
	"context"
	"fmt"

	"github.com/hashicorp/terraform-plugin-framework-validators/int64validator"
	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"

	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/examinfo"
)

// Ensure provider defined types fully satisfy framework interfaces.
var _ datasource.DataSource = &ExamPatternDataSource{}

func NewExamPatternDataSource() datasource.DataSource {
	return &ExamPatternDataSource{}
}

// ExamPatternDataSource exposes the static exam pattern of a recruitment role.
// It does not call the API.
type ExamPatternDataSource struct{}

type ExamPatternDataSourceModel struct {
	Role           types.String   `tfsdk:"role"`
	Subject        types.String   `tfsdk:"subject"`
	Correct        types.Int64    `tfsdk:"correct"`
	Wrong          types.Int64    `tfsdk:"wrong"`
	Title          types.String   `tfsdk:"title"`
	TotalQuestions types.Int64    `tfsdk:"total_questions"`
	MaxMarks       types.Int64    `tfsdk:"max_marks"`
	PassMarks      types.String   `tfsdk:"pass_marks"`
	CorrectMark    types.Float64  `tfsdk:"correct_mark"`
	NegMark        types.Float64  `tfsdk:"neg_mark"`
	Subjects       []SubjectModel `tfsdk:"subjects"`
	Topics         []types.String `tfsdk:"topics"`
	Score          types.Float64  `tfsdk:"score"`
	ChartSVG       types.String   `tfsdk:"chart_svg"`
}

type SubjectModel struct {
	Name      types.String `tfsdk:"name"`
	Questions types.Int64  `tfsdk:"questions"`
	Marks     types.Int64  `tfsdk:"marks"`
	Color     types.String `tfsdk:"color"`
}

func (d *ExamPatternDataSource) Metadata(ctx context.Context, req datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_exam_pattern"
}

func (d *ExamPatternDataSource) Schema(ctx context.Context, req datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "This data source describes the written exam of a recruitment role: marking scheme, " +
			"subject distribution and syllabus. When `correct` and `wrong` are given it also projects a score.",

		Attributes: map[string]schema.Attribute{
			"role": schema.StringAttribute{
				MarkdownDescription: fmt.Sprintf("Role key. Defaults to `%s`", examinfo.DefaultRole),
				Optional:            true,
				Computed:            true,
				Validators: []validator.String{
					stringvalidator.OneOf(examinfo.Roles()...),
				},
			},
			"subject": schema.StringAttribute{
				MarkdownDescription: "Syllabus subject whose topics are returned. Defaults to the role's first subject",
				Optional:            true,
				Computed:            true,
			},
			"correct": schema.Int64Attribute{
				MarkdownDescription: "Number of correctly answered questions for the score projection",
				Optional:            true,
				Validators: []validator.Int64{
					int64validator.AtLeast(0),
					int64validator.AlsoRequires(path.MatchRoot("wrong")),
				},
			},
			"wrong": schema.Int64Attribute{
				MarkdownDescription: "Number of wrongly answered questions for the score projection",
				Optional:            true,
				Validators: []validator.Int64{
					int64validator.AtLeast(0),
					int64validator.AlsoRequires(path.MatchRoot("correct")),
				},
			},
			"title": schema.StringAttribute{
				MarkdownDescription: "Display name of the role",
				Computed:            true,
			},
			"total_questions": schema.Int64Attribute{
				MarkdownDescription: "Number of questions in the paper",
				Computed:            true,
			},
			"max_marks": schema.Int64Attribute{
				MarkdownDescription: "Maximum achievable marks",
				Computed:            true,
			},
			"pass_marks": schema.StringAttribute{
				MarkdownDescription: "Qualifying marks",
				Computed:            true,
			},
			"correct_mark": schema.Float64Attribute{
				MarkdownDescription: "Marks awarded per correct answer",
				Computed:            true,
			},
			"neg_mark": schema.Float64Attribute{
				MarkdownDescription: "Marks deducted per wrong answer",
				Computed:            true,
			},
			"subjects": schema.ListNestedAttribute{
				MarkdownDescription: "Subject distribution of the paper",
				Computed:            true,
				NestedObject: schema.NestedAttributeObject{
					Attributes: map[string]schema.Attribute{
						"name": schema.StringAttribute{
							Computed: true,
						},
						"questions": schema.Int64Attribute{
							Computed: true,
						},
						"marks": schema.Int64Attribute{
							Computed: true,
						},
						"color": schema.StringAttribute{
							Computed: true,
						},
					},
				},
			},
			"topics": schema.ListAttribute{
				MarkdownDescription: "Syllabus topics of the selected subject",
				ElementType:         types.StringType,
				Computed:            true,
			},
			"score": schema.Float64Attribute{
				MarkdownDescription: "Projected score, null unless `correct` and `wrong` are set",
				Computed:            true,
			},
			"chart_svg": schema.StringAttribute{
				MarkdownDescription: "SVG doughnut chart of the question distribution",
				Computed:            true,
			},
		},
	}
}

func (d *ExamPatternDataSource) Read(ctx context.Context, req datasource.ReadRequest, resp *datasource.ReadResponse) {
	var data ExamPatternDataSourceModel

	// Read Terraform configuration data into the model
	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)

	if resp.Diagnostics.HasError() {
		return
	}

	page := examinfo.NewPage()
	defer page.Close()

	if !data.Role.IsNull() && !data.Role.IsUnknown() {
		if err := page.SelectRole(data.Role.ValueString()); err != nil {
			resp.Diagnostics.AddAttributeError(path.Root("role"), "Unknown role", err.Error())
			return
		}
	}
	if !data.Subject.IsNull() && !data.Subject.IsUnknown() {
		if err := page.SelectSubject(data.Subject.ValueString()); err != nil {
			resp.Diagnostics.AddAttributeError(path.Root("subject"), "Unknown subject", err.Error())
			return
		}
	}

	data.Score = types.Float64Null()
	if !data.Correct.IsNull() && !data.Wrong.IsNull() {
		score, err := page.Calculate(int(data.Correct.ValueInt64()), int(data.Wrong.ValueInt64()))
		if err != nil {
			resp.Diagnostics.AddAttributeError(path.Root("wrong"), "Invalid attempt counts", err.Error())
			return
		}
		data.Score = types.Float64Value(score)
	}

	svg, err := page.Chart().SVG()
	if err != nil {
		resp.Diagnostics.AddError("Error Rendering Chart", err.Error())
		return
	}

	p := page.Pattern()
	data.Role = types.StringValue(p.Role)
	data.Subject = types.StringValue(page.ActiveSubject())
	data.Title = types.StringValue(p.Title)
	data.TotalQuestions = types.Int64Value(int64(p.TotalQuestions))
	data.MaxMarks = types.Int64Value(int64(p.MaxMarks))
	data.PassMarks = types.StringValue(p.PassMarks)
	data.CorrectMark = types.Float64Value(p.CorrectMark)
	data.NegMark = types.Float64Value(p.NegMark)
	data.ChartSVG = types.StringValue(svg)

	data.Subjects = make([]SubjectModel, 0, len(p.Subjects))
	for _, s := range p.Subjects {
		data.Subjects = append(data.Subjects, SubjectModel{
			Name:      types.StringValue(s.Name),
			Questions: types.Int64Value(int64(s.Questions)),
			Marks:     types.Int64Value(int64(s.Marks)),
			Color:     types.StringValue(s.Color),
		})
	}

	data.Topics = make([]types.String, 0)
	for _, topic := range page.ActiveTopics() {
		data.Topics = append(data.Topics, types.StringValue(topic))
	}

	tflog.Trace(ctx, "read exam pattern data source", map[string]interface{}{
		"role": p.Role,
	})

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}
