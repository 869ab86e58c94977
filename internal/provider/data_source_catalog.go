package provider

import (
	"context"
	"fmt"

	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"

	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/bitbybit"
)

// Ensure provider defined types fully satisfy framework interfaces.
var _ datasource.DataSource = &TopicsDataSource{}
var _ datasource.DataSourceWithConfigure = &TopicsDataSource{}
var _ datasource.DataSource = &ExamsDataSource{}
var _ datasource.DataSourceWithConfigure = &ExamsDataSource{}

func NewTopicsDataSource() datasource.DataSource {
	return &TopicsDataSource{}
}

func NewExamsDataSource() datasource.DataSource {
	return &ExamsDataSource{}
}

// TopicsDataSource lists the study topics questions can be generated from.
type TopicsDataSource struct {
	client *bitbybit.Client
}

type TopicsDataSourceModel struct {
	Topics []TopicModel `tfsdk:"topics"`
}

type TopicModel struct {
	ID    types.Int64  `tfsdk:"id"`
	Title types.String `tfsdk:"title"`
}

// ExamsDataSource lists the exams questions can be published to.
type ExamsDataSource struct {
	client *bitbybit.Client
}

type ExamsDataSourceModel struct {
	Exams []ExamModel `tfsdk:"exams"`
}

type ExamModel struct {
	ID       types.Int64  `tfsdk:"id"`
	Title    types.String `tfsdk:"title"`
	Duration types.Int64  `tfsdk:"duration"`
}

func (d *TopicsDataSource) Metadata(ctx context.Context, req datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_topics"
}

func (d *TopicsDataSource) Schema(ctx context.Context, req datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "This data source lists the study topics available to the question generator.",

		Attributes: map[string]schema.Attribute{
			"topics": schema.ListNestedAttribute{
				MarkdownDescription: "The topics",
				Computed:            true,
				NestedObject: schema.NestedAttributeObject{
					Attributes: map[string]schema.Attribute{
						"id": schema.Int64Attribute{
							MarkdownDescription: "ID of the topic",
							Computed:            true,
						},
						"title": schema.StringAttribute{
							MarkdownDescription: "Title of the topic",
							Computed:            true,
						},
					},
				},
			},
		},
	}
}

func (d *TopicsDataSource) Configure(ctx context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
	d.client = configureDataSourceClient(req, resp)
}

func (d *TopicsDataSource) Read(ctx context.Context, req datasource.ReadRequest, resp *datasource.ReadResponse) {
	var data TopicsDataSourceModel

	topics, err := d.client.ListTopics(ctx)
	if err != nil {
		resp.Diagnostics.AddError(
			"Error Reading Topics",
			fmt.Sprintf("Could not list topics: %s", err),
		)
		return
	}

	data.Topics = make([]TopicModel, 0, len(topics))
	for _, topic := range topics {
		data.Topics = append(data.Topics, TopicModel{
			ID:    types.Int64Value(topic.ID),
			Title: types.StringValue(topic.Title),
		})
	}

	tflog.Trace(ctx, "read topics data source")

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}

func (d *ExamsDataSource) Metadata(ctx context.Context, req datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_exams"
}

func (d *ExamsDataSource) Schema(ctx context.Context, req datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "This data source lists the exams questions can be published to.",

		Attributes: map[string]schema.Attribute{
			"exams": schema.ListNestedAttribute{
				MarkdownDescription: "The exams",
				Computed:            true,
				NestedObject: schema.NestedAttributeObject{
					Attributes: map[string]schema.Attribute{
						"id": schema.Int64Attribute{
							MarkdownDescription: "ID of the exam",
							Computed:            true,
						},
						"title": schema.StringAttribute{
							MarkdownDescription: "Title of the exam",
							Computed:            true,
						},
						"duration": schema.Int64Attribute{
							MarkdownDescription: "Duration of the exam in minutes",
							Computed:            true,
						},
					},
				},
			},
		},
	}
}

func (d *ExamsDataSource) Configure(ctx context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
	d.client = configureDataSourceClient(req, resp)
}

func (d *ExamsDataSource) Read(ctx context.Context, req datasource.ReadRequest, resp *datasource.ReadResponse) {
	var data ExamsDataSourceModel

	exams, err := d.client.ListExams(ctx)
	if err != nil {
		resp.Diagnostics.AddError(
			"Error Reading Exams",
			fmt.Sprintf("Could not list exams: %s", err),
		)
		return
	}

	data.Exams = make([]ExamModel, 0, len(exams))
	for _, exam := range exams {
		data.Exams = append(data.Exams, ExamModel{
			ID:       types.Int64Value(exam.ID),
			Title:    types.StringValue(exam.Title),
			Duration: types.Int64Value(int64(exam.DurationMinutes)),
		})
	}

	tflog.Trace(ctx, "read exams data source")

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}

// configureDataSourceClient extracts the API client handed over by the provider.
// It returns nil when the provider has not been configured yet.
func configureDataSourceClient(req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) *bitbybit.Client {
	// Prevent panic if the provider has not been configured.
	if req.ProviderData == nil {
		return nil
	}

	client, ok := req.ProviderData.(*bitbybit.Client)
	if !ok {
		resp.Diagnostics.AddError(
			"Unexpected Data Source Configure Type",
			fmt.Sprintf("Expected *bitbybit.Client, got: %T. Please report this issue to the provider developers.", req.ProviderData),
		)
		return nil
	}

	return client
}
