package provider

import (
	"context"
	"os"

	"github.com/hashicorp/terraform-plugin-framework-validators/int64validator"
	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/function"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/provider"
	"github.com/hashicorp/terraform-plugin-framework/provider/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"

	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/bitbybit"
	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/bitbybit/credentials"
	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/config"
)

// Ensure BitByBitProvider satisfies various provider interfaces.
var _ provider.Provider = &BitByBitProvider{}
var _ provider.ProviderWithFunctions = &BitByBitProvider{}

// BitByBitProvider defines the provider implementation.
type BitByBitProvider struct {
	// version is set to the provider version on release, "dev" when the
	// provider is built and ran locally, and "test" when running acceptance
	// testing.
	version string
}

// BitByBitProviderModel describes the provider data model.
type BitByBitProviderModel struct {
	Endpoint types.String `tfsdk:"endpoint"`

	// Credential store
	AccessToken types.String `tfsdk:"access_token"`
	TokenFile   types.String `tfsdk:"token_file"`

	// Shared Redis credential store
	RedisAddr     types.String `tfsdk:"redis_addr"`
	RedisPassword types.String `tfsdk:"redis_password"`
	RedisDB       types.Int64  `tfsdk:"redis_db"`
}

func (p *BitByBitProvider) Metadata(_ context.Context, _ provider.MetadataRequest, resp *provider.MetadataResponse) {
	resp.TypeName = "bitbybit"
	resp.Version = p.version
}

func (p *BitByBitProvider) Schema(_ context.Context, _ provider.SchemaRequest, resp *provider.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "The BitByBit provider manages the exam-preparation platform's admin content: " +
			"landing page banners and AI generated question banks.",
		Attributes: map[string]schema.Attribute{
			"endpoint": schema.StringAttribute{
				MarkdownDescription: "Base address of the BitByBit API. Defaults to the hosted API, or the `BITBYBIT_API_URL` environment variable.",
				Optional:            true,
			},
			"access_token": schema.StringAttribute{
				MarkdownDescription: "Access token issued by the BitByBit login flow. Sent as `Authorization: JWT <token>`. " +
					"When omitted the token stored by `bitbybit-admin token set` is used.",
				Sensitive: true,
				Optional:  true,
			},
			"token_file": schema.StringAttribute{
				MarkdownDescription: "JSON file the access token is read from and written to.",
				Optional:            true,
				Validators: []validator.String{
					stringvalidator.ConflictsWith(path.MatchRoot("redis_addr")),
				},
			},
			"redis_addr": schema.StringAttribute{
				MarkdownDescription: "Address of a Redis server shared by several runners to hold the access token.",
				Optional:            true,
			},
			"redis_password": schema.StringAttribute{
				MarkdownDescription: "Password of the Redis credential store",
				Sensitive:           true,
				Optional:            true,
				Validators: []validator.String{
					stringvalidator.AlsoRequires(path.MatchRoot("redis_addr")),
				},
			},
			"redis_db": schema.Int64Attribute{
				MarkdownDescription: "Database number of the Redis credential store",
				Optional:            true,
				Validators: []validator.Int64{
					int64validator.AtLeast(0),
					int64validator.AlsoRequires(path.MatchRoot("redis_addr")),
				},
			},
		},
	}
}

func (p *BitByBitProvider) Configure(ctx context.Context, req provider.ConfigureRequest, resp *provider.ConfigureResponse) {
	// Retrieve the provider data from the configuration.
	var data BitByBitProviderModel

	diags := req.Config.Get(ctx, &data)
	resp.Diagnostics.Append(diags...)

	if resp.Diagnostics.HasError() {
		return
	}

	if data.Endpoint.IsUnknown() {
		resp.Diagnostics.AddAttributeError(
			path.Root("endpoint"),
			"Unknown BitByBit endpoint",
			"The provider cannot create the BitByBit API client as there is an unknown configuration value for the BitByBit endpoint. "+
				"Either target apply the source of the value first, set the value statically in the configuration, or use the BITBYBIT_API_URL environment variable.",
		)
	}

	if data.AccessToken.IsUnknown() {
		resp.Diagnostics.AddAttributeError(
			path.Root("access_token"),
			"Unknown BitByBit access token",
			"The provider cannot create the BitByBit API client as there is an unknown configuration value for the BitByBit access token. "+
				"Either target apply the source of the value first, set the value statically in the configuration, or use the BITBYBIT_ACCESS_TOKEN environment variable.",
		)
	}

	if resp.Diagnostics.HasError() {
		return
	}

	// Default values to environment variables, but override
	// with Terraform configuration value if set.
	cfg := config.LoadConfig()
	endpoint := cfg.API.URL
	creds := cfg.Credentials
	_, tokenFileSet := os.LookupEnv("BITBYBIT_TOKEN_FILE")

	if !data.Endpoint.IsNull() {
		endpoint = data.Endpoint.ValueString()
	}
	if !data.AccessToken.IsNull() {
		creds.AccessToken = data.AccessToken.ValueString()
	}
	if !data.TokenFile.IsNull() {
		creds.TokenFile = data.TokenFile.ValueString()
		tokenFileSet = true
	}
	if !data.RedisAddr.IsNull() {
		creds.Redis.Addr = data.RedisAddr.ValueString()
	}
	if !data.RedisPassword.IsNull() {
		creds.Redis.Password = data.RedisPassword.ValueString()
	}
	if !data.RedisDB.IsNull() {
		creds.Redis.DB = int(data.RedisDB.ValueInt64())
	}

	// An explicit token stays in memory unless a store was asked for, so a
	// plan never rewrites the operator's own credentials file.
	if creds.AccessToken != "" && !tokenFileSet && creds.Redis.Addr == "" {
		creds.TokenFile = ""
	}

	if endpoint == "" {
		resp.Diagnostics.AddAttributeError(
			path.Root("endpoint"),
			"Missing BitByBit endpoint",
			"The provider cannot create the BitByBit API client as there is a missing or empty value for the BitByBit endpoint. "+
				"Set the endpoint value in the configuration or use the BITBYBIT_API_URL environment variable. "+
				"If either is already set, ensure the value is not empty.",
		)
		return
	}

	store, err := credentials.Open(ctx, creds)
	if err != nil {
		resp.Diagnostics.AddError(
			"Unable to open BitByBit credential store",
			"An unexpected error occurred when opening the credential store.\n\n"+
				"Credential Store Error: "+err.Error(),
		)
		return
	}

	if token, err := store.Token(ctx); err == nil && token == "" {
		tflog.Warn(ctx, "no BitByBit access token configured, only public endpoints will succeed")
	}

	// Create a new BitByBit API client using the configuration values
	client, err := bitbybit.New(endpoint,
		bitbybit.WithCredentialStore(store),
		bitbybit.WithTimeout(cfg.API.Timeout),
	)
	if err != nil {
		resp.Diagnostics.AddError(
			"Unable to create BitByBit API client",
			"An unexpected error occurred when creating the BitByBit API client. "+
				"If the error is not clear, please contact the provider developers.\n\n"+
				"BitByBit Client Error: "+err.Error(),
		)
		return
	}

	tflog.Debug(ctx, "configured BitByBit client", map[string]interface{}{
		"endpoint": client.BaseURL(),
	})

	// Make the BitByBit client available during DataSource and Resource
	// type Configure methods.
	resp.DataSourceData = client
	resp.ResourceData = client
}

func (p *BitByBitProvider) Resources(ctx context.Context) []func() resource.Resource {
	return []func() resource.Resource{
		BannerResource,
		ExamQuestionsResource,
	}
}

func (p *BitByBitProvider) DataSources(ctx context.Context) []func() datasource.DataSource {
	return []func() datasource.DataSource{
		NewBannersDataSource,
		NewTopicsDataSource,
		NewExamsDataSource,
		NewGeneratedQuestionsDataSource,
		NewExamPatternDataSource,
	}
}

func (p *BitByBitProvider) Functions(ctx context.Context) []func() function.Function {
	return []func() function.Function{
		NewScoreFunction,
		NewSuggestedDurationFunction,
	}
}

func New(version string) func() provider.Provider {
	return func() provider.Provider {
		return &BitByBitProvider{
			version: version,
		}
	}
}
