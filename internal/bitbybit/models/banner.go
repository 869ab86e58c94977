package models

// Banner represents a promotional banner shown in the landing page carousel
type Banner struct {
	ID             int64  `json:"id,omitempty"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	ButtonText     string `json:"button_text"`
	Link           string `json:"link"`
	BgGradientFrom string `json:"bg_gradient_from"`
	BgGradientTo   string `json:"bg_gradient_to"`
}

const (
	DefaultBannerButtonText   = "Explore"
	DefaultBannerLink         = "/register"
	DefaultBannerGradientFrom = "blue-600"
	DefaultBannerGradientTo   = "purple-600"
)

// BannerPalette lists the theme colors a banner gradient may use
var BannerPalette = []string{
	"blue-600",
	"purple-600",
	"emerald-600",
	"orange-500",
	"red-600",
	"slate-800",
}

// NewBannerForm returns a banner pre-filled with the form defaults
func NewBannerForm() Banner {
	return Banner{
		ButtonText:     DefaultBannerButtonText,
		Link:           DefaultBannerLink,
		BgGradientFrom: DefaultBannerGradientFrom,
		BgGradientTo:   DefaultBannerGradientTo,
	}
}
