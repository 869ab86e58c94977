package admin

import (
	"context"
	"fmt"

	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/bitbybit/models"
)

// BannerRepository is the banner surface of the API
type BannerRepository interface {
	ListBanners(ctx context.Context) ([]models.Banner, error)
	CreateBanner(ctx context.Context, banner models.Banner) (*models.Banner, error)
	DeleteBanner(ctx context.Context, ID int64) error
}

// BannerManager keeps the displayed banner list and the creation form in sync
// with the backend. Every successful mutation is followed by a re-fetch.
type BannerManager struct {
	repo    BannerRepository
	banners []models.Banner
	form    models.Banner
}

func NewBannerManager(repo BannerRepository) *BannerManager {
	return &BannerManager{
		repo: repo,
		form: models.NewBannerForm(),
	}
}

// Banners returns the currently displayed list
func (m *BannerManager) Banners() []models.Banner {
	return append([]models.Banner(nil), m.banners...)
}

// Form returns the current state of the creation form
func (m *BannerManager) Form() models.Banner {
	return m.form
}

// SetForm replaces the creation form
func (m *BannerManager) SetForm(form models.Banner) {
	m.form = form
}

// Load fetches the banner list. On failure the previous list is kept.
func (m *BannerManager) Load(ctx context.Context) ([]models.Banner, error) {
	banners, err := m.repo.ListBanners(ctx)
	if err != nil {
		return m.Banners(), err
	}
	m.banners = banners
	return m.Banners(), nil
}

// Create submits the form. The title and description are reset afterwards so
// the next banner can reuse the styling fields.
func (m *BannerManager) Create(ctx context.Context) (*models.Banner, error) {
	if m.form.Title == "" {
		return nil, ErrTitleRequired
	}

	created, err := m.repo.CreateBanner(ctx, m.form)
	if err != nil {
		return nil, err
	}

	m.form.Title = ""
	m.form.Description = ""

	if _, err := m.Load(ctx); err != nil {
		return created, fmt.Errorf("banner created but refresh failed: %w", err)
	}
	return created, nil
}

// Delete removes a banner and refreshes the list. A failed delete leaves the
// displayed list untouched.
func (m *BannerManager) Delete(ctx context.Context, ID int64) error {
	if err := m.repo.DeleteBanner(ctx, ID); err != nil {
		return err
	}

	if _, err := m.Load(ctx); err != nil {
		return fmt.Errorf("banner deleted but refresh failed: %w", err)
	}
	return nil
}
