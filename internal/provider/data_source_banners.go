package provider

import (
	"context"
	"fmt"

	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-log/tflog"

	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/bitbybit"
)

// Ensure provider defined types fully satisfy framework interfaces.
var _ datasource.DataSource = &BannersDataSource{}
var _ datasource.DataSourceWithConfigure = &BannersDataSource{}

func NewBannersDataSource() datasource.DataSource {
	return &BannersDataSource{}
}

// BannersDataSource lists the banners of the landing page carousel.
type BannersDataSource struct {
	client *bitbybit.Client
}

// BannersDataSourceModel describes the data source data model.
type BannersDataSourceModel struct {
	Banners []BannerModel `tfsdk:"banners"`
}

func (d *BannersDataSource) Metadata(ctx context.Context, req datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_banners"
}

func (d *BannersDataSource) Schema(ctx context.Context, req datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = schema.Schema{
		// This description is used by the documentation generator and the language server.
		MarkdownDescription: "This data source lists the banners currently shown in the landing page carousel, in display order.",

		Attributes: map[string]schema.Attribute{
			"banners": schema.ListNestedAttribute{
				MarkdownDescription: "The banners",
				Computed:            true,
				NestedObject: schema.NestedAttributeObject{
					Attributes: map[string]schema.Attribute{
						"id": schema.StringAttribute{
							MarkdownDescription: "ID of the banner",
							Computed:            true,
						},
						"title": schema.StringAttribute{
							MarkdownDescription: "Headline of the banner",
							Computed:            true,
						},
						"description": schema.StringAttribute{
							MarkdownDescription: "Body text of the banner",
							Computed:            true,
						},
						"button_text": schema.StringAttribute{
							MarkdownDescription: "Label of the call to action button",
							Computed:            true,
						},
						"link": schema.StringAttribute{
							MarkdownDescription: "Target of the call to action button",
							Computed:            true,
						},
						"bg_gradient_from": schema.StringAttribute{
							MarkdownDescription: "Start color of the background gradient",
							Computed:            true,
						},
						"bg_gradient_to": schema.StringAttribute{
							MarkdownDescription: "End color of the background gradient",
							Computed:            true,
						},
					},
				},
			},
		},
	}
}

func (d *BannersDataSource) Configure(ctx context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
	// Prevent panic if the provider has not been configured.
	if req.ProviderData == nil {
		return
	}

	client, ok := req.ProviderData.(*bitbybit.Client)

	if !ok {
		resp.Diagnostics.AddError(
			"Unexpected Data Source Configure Type",
			fmt.Sprintf("Expected *bitbybit.Client, got: %T. Please report this issue to the provider developers.", req.ProviderData),
		)

		return
	}

	d.client = client
}

func (d *BannersDataSource) Read(ctx context.Context, req datasource.ReadRequest, resp *datasource.ReadResponse) {
	var data BannersDataSourceModel

	banners, err := d.client.ListBanners(ctx)
	if err != nil {
		resp.Diagnostics.AddError(
			"Error Reading Banners",
			fmt.Sprintf("Could not list banners: %s", err),
		)
		return
	}

	data.Banners = make([]BannerModel, 0, len(banners))
	for i := range banners {
		var banner BannerModel
		setBannerModel(&banner, &banners[i])
		data.Banners = append(data.Banners, banner)
	}

	tflog.Trace(ctx, "read banners data source", map[string]interface{}{
		"count": len(data.Banners),
	})

	// Save data into Terraform state
	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}
