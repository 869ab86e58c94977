package provider

import (
	"fmt"
	"regexp"
	"strconv"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/hashicorp/terraform-plugin-testing/helper/resource"
	"github.com/hashicorp/terraform-plugin-testing/terraform"

	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/bitbybit/models"
	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/bitbybit/test"
)

func TestAccBanner(t *testing.T) {
	backend := test.NewFakeBackend(t, test.TestToken)

	// Generate random data for the test
	title := gofakeit.Sentence(4)
	updatedTitle := gofakeit.Sentence(4)
	description := gofakeit.Sentence(12)

	resource.Test(t, resource.TestCase{
		PreCheck:                 func() { testAccPreCheck(t) },
		ProtoV6ProviderFactories: testAccProtoV6ProviderFactories,
		CheckDestroy:             testAccCheckBannersDestroyed(backend),
		Steps: []resource.TestStep{
			// Create and Read testing
			{
				Config: testAccBannerConfig(backend.URL(), title, description, "emerald-600"),
				Check: resource.ComposeAggregateTestCheckFunc(
					resource.TestCheckResourceAttr("bitbybit_banner.test", "title", title),
					resource.TestCheckResourceAttr("bitbybit_banner.test", "description", description),
					resource.TestCheckResourceAttr("bitbybit_banner.test", "button_text", models.DefaultBannerButtonText),
					resource.TestCheckResourceAttr("bitbybit_banner.test", "link", models.DefaultBannerLink),
					resource.TestCheckResourceAttr("bitbybit_banner.test", "bg_gradient_from", "emerald-600"),
					resource.TestCheckResourceAttr("bitbybit_banner.test", "bg_gradient_to", models.DefaultBannerGradientTo),
					resource.TestCheckResourceAttrSet("bitbybit_banner.test", "id"),
				),
			},
			// Changing any attribute replaces the banner
			{
				Config: testAccBannerConfig(backend.URL(), updatedTitle, description, "emerald-600"),
				Check: resource.ComposeAggregateTestCheckFunc(
					resource.TestCheckResourceAttr("bitbybit_banner.test", "title", updatedTitle),
					testAccCheckBannerCount(backend, 1),
				),
			},
			// ImportState testing
			{
				ResourceName:      "bitbybit_banner.test",
				ImportState:       true,
				ImportStateVerify: true,
			},
			// Delete testing automatically occurs in TestCase
		},
	})
}

func TestAccBannerRemovedOutsideTerraform(t *testing.T) {
	backend := test.NewFakeBackend(t, test.TestToken)
	title := gofakeit.Sentence(4)

	resource.Test(t, resource.TestCase{
		PreCheck:                 func() { testAccPreCheck(t) },
		ProtoV6ProviderFactories: testAccProtoV6ProviderFactories,
		Steps: []resource.TestStep{
			{
				Config: testAccBannerConfig(backend.URL(), title, "", models.DefaultBannerGradientFrom),
			},
			{
				PreConfig: func() {
					for _, banner := range backend.Banners() {
						backend.RemoveBanner(banner.ID)
					}
				},
				Config:             testAccBannerConfig(backend.URL(), title, "", models.DefaultBannerGradientFrom),
				PlanOnly:           true,
				ExpectNonEmptyPlan: true,
			},
		},
	})
}

func TestAccBannerInvalidGradient(t *testing.T) {
	backend := test.NewFakeBackend(t, test.TestToken)

	resource.Test(t, resource.TestCase{
		PreCheck:                 func() { testAccPreCheck(t) },
		ProtoV6ProviderFactories: testAccProtoV6ProviderFactories,
		Steps: []resource.TestStep{
			{
				Config:      testAccBannerConfig(backend.URL(), gofakeit.Sentence(3), "", "pink-300"),
				ExpectError: regexp.MustCompile(`value must be one of`),
			},
		},
	})
}

func testAccBannerConfig(endpoint, title, description, gradientFrom string) string {
	return testAccProviderConfig(endpoint, test.TestToken) + fmt.Sprintf(`
resource "bitbybit_banner" "test" {
  title            = %[1]q
  description      = %[2]q
  bg_gradient_from = %[3]q
}
`, title, description, gradientFrom)
}

func testAccCheckBannerCount(backend *test.FakeBackend, want int) resource.TestCheckFunc {
	return func(*terraform.State) error {
		if got := len(backend.Banners()); got != want {
			return fmt.Errorf("expected %d banners on the backend, got %d", want, got)
		}
		return nil
	}
}

func testAccCheckBannersDestroyed(backend *test.FakeBackend) resource.TestCheckFunc {
	return func(s *terraform.State) error {
		for _, rs := range s.RootModule().Resources {
			if rs.Type != "bitbybit_banner" {
				continue
			}
			for _, banner := range backend.Banners() {
				if strconv.FormatInt(banner.ID, 10) == rs.Primary.ID {
					return fmt.Errorf("banner %s still exists", rs.Primary.ID)
				}
			}
		}
		return nil
	}
}
