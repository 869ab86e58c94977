package provider

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/planmodifier"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/stringdefault"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/stringplanmodifier"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"

	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/bitbybit"
	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/bitbybit/models"
)

// Ensure provider defined types fully satisfy framework interfaces.
var _ resource.Resource = &Banner{}
var _ resource.ResourceWithImportState = &Banner{}

func BannerResource() resource.Resource {
	return &Banner{}
}

// Banner defines the resource implementation.
type Banner struct {
	client *bitbybit.Client
}

// BannerModel describes the resource data model.
type BannerModel struct {
	ID             types.String `tfsdk:"id"`
	Title          types.String `tfsdk:"title"`
	Description    types.String `tfsdk:"description"`
	ButtonText     types.String `tfsdk:"button_text"`
	Link           types.String `tfsdk:"link"`
	BgGradientFrom types.String `tfsdk:"bg_gradient_from"`
	BgGradientTo   types.String `tfsdk:"bg_gradient_to"`
}

func (r *Banner) Metadata(ctx context.Context, req resource.MetadataRequest, resp *resource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_banner"
}

func (r *Banner) Schema(ctx context.Context, req resource.SchemaRequest, resp *resource.SchemaResponse) {
	replace := []planmodifier.String{
		stringplanmodifier.RequiresReplace(),
	}

	resp.Schema = schema.Schema{
		MarkdownDescription: "This resource manages a banner of the landing page carousel. " +
			"Banners cannot be edited in place, so any change recreates the banner.",
		Attributes: map[string]schema.Attribute{
			"id": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "ID of the banner",
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.UseStateForUnknown(),
				},
			},
			"title": schema.StringAttribute{
				MarkdownDescription: "Headline of the banner",
				Required:            true,
				PlanModifiers:       replace,
				Validators: []validator.String{
					stringvalidator.LengthAtLeast(1),
				},
			},
			"description": schema.StringAttribute{
				MarkdownDescription: "Body text of the banner",
				Optional:            true,
				Computed:            true,
				Default:             stringdefault.StaticString(""),
				PlanModifiers:       replace,
			},
			"button_text": schema.StringAttribute{
				MarkdownDescription: fmt.Sprintf("Label of the call to action button. Defaults to `%s`", models.DefaultBannerButtonText),
				Optional:            true,
				Computed:            true,
				Default:             stringdefault.StaticString(models.DefaultBannerButtonText),
				PlanModifiers:       replace,
			},
			"link": schema.StringAttribute{
				MarkdownDescription: fmt.Sprintf("Target of the call to action button. Defaults to `%s`", models.DefaultBannerLink),
				Optional:            true,
				Computed:            true,
				Default:             stringdefault.StaticString(models.DefaultBannerLink),
				PlanModifiers:       replace,
			},
			"bg_gradient_from": schema.StringAttribute{
				MarkdownDescription: fmt.Sprintf("Start color of the background gradient. Defaults to `%s`", models.DefaultBannerGradientFrom),
				Optional:            true,
				Computed:            true,
				Default:             stringdefault.StaticString(models.DefaultBannerGradientFrom),
				PlanModifiers:       replace,
				Validators: []validator.String{
					stringvalidator.OneOf(models.BannerPalette...),
				},
			},
			"bg_gradient_to": schema.StringAttribute{
				MarkdownDescription: fmt.Sprintf("End color of the background gradient. Defaults to `%s`", models.DefaultBannerGradientTo),
				Optional:            true,
				Computed:            true,
				Default:             stringdefault.StaticString(models.DefaultBannerGradientTo),
				PlanModifiers:       replace,
				Validators: []validator.String{
					stringvalidator.OneOf(models.BannerPalette...),
				},
			},
		},
	}
}

func (r *Banner) Configure(ctx context.Context, req resource.ConfigureRequest, resp *resource.ConfigureResponse) {
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

func (r *Banner) Create(ctx context.Context, req resource.CreateRequest, resp *resource.CreateResponse) {
	var data BannerModel

	// Read Terraform plan data into the model
	resp.Diagnostics.Append(req.Plan.Get(ctx, &data)...)

	if resp.Diagnostics.HasError() {
		return
	}

	banner := models.Banner{
		Title:          data.Title.ValueString(),
		Description:    data.Description.ValueString(),
		ButtonText:     data.ButtonText.ValueString(),
		Link:           data.Link.ValueString(),
		BgGradientFrom: data.BgGradientFrom.ValueString(),
		BgGradientTo:   data.BgGradientTo.ValueString(),
	}

	bannerResp, err := r.client.CreateBanner(ctx, banner)
	if err != nil {
		resp.Diagnostics.AddError(
			"Error creating BitByBit banner",
			"Could not create banner, unexpected error: "+err.Error(),
		)
		return
	}

	// Map response body to schema and populate Computed attribute values
	setBannerModel(&data, bannerResp)

	tflog.Trace(ctx, fmt.Sprintf("created a new banner with ID: %s", data.ID.ValueString()))

	// Save data into Terraform state
	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}

func (r *Banner) Read(ctx context.Context, req resource.ReadRequest, resp *resource.ReadResponse) {
	var data BannerModel

	// Read Terraform prior state data into the model
	resp.Diagnostics.Append(req.State.Get(ctx, &data)...)

	if resp.Diagnostics.HasError() {
		return
	}

	id, err := strconv.ParseInt(data.ID.ValueString(), 10, 64)
	if err != nil {
		resp.Diagnostics.AddAttributeError(
			path.Root("id"),
			"Invalid banner ID",
			fmt.Sprintf("Banner ID %q is not a number: %s", data.ID.ValueString(), err),
		)
		return
	}

	// Get refreshed data from the client
	bannerResp, err := r.client.GetBanner(ctx, id)
	if err != nil {
		if models.IsNotFound(err) {
			tflog.Warn(ctx, "banner no longer exists, removing from state", map[string]interface{}{
				"id": data.ID.ValueString(),
			})
			resp.State.RemoveResource(ctx)
			return
		}
		resp.Diagnostics.AddError(
			"Error reading BitByBit banner",
			"Could not read banner with ID "+data.ID.ValueString()+": "+err.Error(),
		)
		return
	}

	// Overwrite the model with the refreshed data
	setBannerModel(&data, bannerResp)

	// Save updated data into Terraform state
	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}

// Update is never planned because every attribute forces replacement.
func (r *Banner) Update(ctx context.Context, req resource.UpdateRequest, resp *resource.UpdateResponse) {
	resp.Diagnostics.AddError(
		"Error updating BitByBit banner",
		"Banners cannot be updated in place. Please report this issue to the provider developers.",
	)
}

func (r *Banner) Delete(ctx context.Context, req resource.DeleteRequest, resp *resource.DeleteResponse) {
	var data BannerModel

	// Read Terraform prior state data into the model
	resp.Diagnostics.Append(req.State.Get(ctx, &data)...)

	if resp.Diagnostics.HasError() {
		return
	}

	id, err := strconv.ParseInt(data.ID.ValueString(), 10, 64)
	if err != nil {
		resp.Diagnostics.AddAttributeError(
			path.Root("id"),
			"Invalid banner ID",
			fmt.Sprintf("Banner ID %q is not a number: %s", data.ID.ValueString(), err),
		)
		return
	}

	// Delete the banner
	if err := r.client.DeleteBanner(ctx, id); err != nil && !models.IsNotFound(err) {
		resp.Diagnostics.AddError(
			"Error deleting BitByBit banner",
			"Could not delete banner with ID "+data.ID.ValueString()+": "+err.Error(),
		)
		return
	}
}

func (r *Banner) ImportState(ctx context.Context, req resource.ImportStateRequest, resp *resource.ImportStateResponse) {
	resource.ImportStatePassthroughID(ctx, path.Root("id"), req, resp)
}

func setBannerModel(data *BannerModel, banner *models.Banner) {
	data.ID = types.StringValue(strconv.FormatInt(banner.ID, 10))
	data.Title = types.StringValue(banner.Title)
	data.Description = types.StringValue(banner.Description)
	data.ButtonText = types.StringValue(banner.ButtonText)
	data.Link = types.StringValue(banner.Link)
	data.BgGradientFrom = types.StringValue(banner.BgGradientFrom)
	data.BgGradientTo = types.StringValue(banner.BgGradientTo)
}
