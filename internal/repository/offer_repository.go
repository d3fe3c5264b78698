package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"dealhunt/internal/model"
)

// OfferFilter narrows an offer listing. Zero values mean "no filter".
type OfferFilter struct {
	Store    string
	Category string
	Search   string
	Limit    int
}

// OfferRepository defines offer persistence operations.
type OfferRepository interface {
	Create(ctx context.Context, offer *model.Offer) error
	CreateBatch(ctx context.Context, offers []model.Offer) error
	Update(ctx context.Context, offer *model.Offer) error
	FindByID(ctx context.Context, id string) (*model.Offer, error)
	FindByIDs(ctx context.Context, ids []string) ([]model.Offer, error)
	ListActive(ctx context.Context, filter OfferFilter) ([]model.Offer, error)
	Delete(ctx context.Context, id string) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountActive(ctx context.Context) (int64, error)
}

type offerRepository struct {
	db *gorm.DB
}

// NewOfferRepository builds a GORM-backed repository.
func NewOfferRepository(db *gorm.DB) OfferRepository {
	return &offerRepository{db: db}
}

func (r *offerRepository) Create(ctx context.Context, offer *model.Offer) error {
	return r.db.WithContext(ctx).Create(offer).Error
}

func (r *offerRepository) CreateBatch(ctx context.Context, offers []model.Offer) error {
	return r.db.WithContext(ctx).Create(&offers).Error
}

func (r *offerRepository) Update(ctx context.Context, offer *model.Offer) error {
	return r.db.WithContext(ctx).Save(offer).Error
}

func (r *offerRepository) FindByID(ctx context.Context, id string) (*model.Offer, error) {
	var offer model.Offer
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&offer).Error; err != nil {
		return nil, err
	}
	return &offer, nil
}

func (r *offerRepository) FindByIDs(ctx context.Context, ids []string) ([]model.Offer, error) {
	var offers []model.Offer
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&offers).Error; err != nil {
		return nil, err
	}
	return offers, nil
}

// ListActive returns active offers matching the filter. The search term matches
// title or description case-insensitively as a substring.
func (r *offerRepository) ListActive(ctx context.Context, filter OfferFilter) ([]model.Offer, error) {
	query := r.db.WithContext(ctx).Where("is_active = ?", true)
	if filter.Store != "" {
		query = query.Where("store = ?", filter.Store)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("(LOWER(title) LIKE ? OR LOWER(description) LIKE ?)", pattern, pattern)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var offers []model.Offer
	if err := query.Find(&offers).Error; err != nil {
		return nil, err
	}
	return offers, nil
}

func (r *offerRepository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Offer{})
	return res.RowsAffected, res.Error
}

func (r *offerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Offer{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *offerRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Offer{}).Where("is_active = ?", true).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
