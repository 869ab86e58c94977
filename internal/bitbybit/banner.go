package bitbybit

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/bitbybit/models"
)

// ListBanners retrieves every active banner
func (c *Client) ListBanners(ctx context.Context) ([]models.Banner, error) {
	var banners []models.Banner
	if _, err := c.doRequest(ctx, http.MethodGet, "banners/", nil, &banners); err != nil {
		return nil, fmt.Errorf("failed to list banners: %w", err)
	}

	return banners, nil
}

// CreateBanner creates a new banner
func (c *Client) CreateBanner(ctx context.Context, banner models.Banner) (*models.Banner, error) {
	if banner.Title == "" {
		return nil, fmt.Errorf("banner title is required")
	}

	var bannerResp models.Banner
	if _, err := c.doRequest(ctx, http.MethodPost, "banners/", banner, &bannerResp); err != nil {
		return nil, fmt.Errorf("failed to create banner: %w", err)
	}

	return &bannerResp, nil
}

// GetBanner retrieves a banner by its ID
func (c *Client) GetBanner(ctx context.Context, ID int64) (*models.Banner, error) {
	// First get all banners
	banners, err := c.ListBanners(ctx)
	if err != nil {
		return nil, err
	}

	// Find the banner by ID
	for _, banner := range banners {
		if banner.ID == ID {
			return &banner, nil
		}
	}

	return nil, &models.APIError{
		StatusCode: http.StatusNotFound,
		Path:       fmt.Sprintf("banners/%d/", ID),
		Message:    "banner not found",
	}
}

// DeleteBanner deletes a banner by its ID
func (c *Client) DeleteBanner(ctx context.Context, ID int64) error {
	if _, err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("banners/%d/", ID), nil, nil); err != nil {
		return fmt.Errorf("failed to delete banner: %w", err)
	}

	return nil
}
