package repository

import (
	"context"

	"gorm.io/gorm"

	"dealhunt/internal/model"
)

// SavedOfferRepository defines saved-offer relation persistence operations.
type SavedOfferRepository interface {
	Create(ctx context.Context, saved *model.SavedOffer) error
	FindByUserAndOffer(ctx context.Context, userID, offerID string) (*model.SavedOffer, error)
	DeleteByUserAndOffer(ctx context.Context, userID, offerID string) (int64, error)
	ListByUser(ctx context.Context, userID string) ([]model.SavedOffer, error)
	Count(ctx context.Context) (int64, error)
}

type savedOfferRepository struct {
	db *gorm.DB
}

// NewSavedOfferRepository builds a GORM-backed repository.
func NewSavedOfferRepository(db *gorm.DB) SavedOfferRepository {
	return &savedOfferRepository{db: db}
}

func (r *savedOfferRepository) Create(ctx context.Context, saved *model.SavedOffer) error {
	return r.db.WithContext(ctx).Create(saved).Error
}

func (r *savedOfferRepository) FindByUserAndOffer(ctx context.Context, userID, offerID string) (*model.SavedOffer, error) {
	var saved model.SavedOffer
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND offer_id = ?", userID, offerID).
		First(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *savedOfferRepository) DeleteByUserAndOffer(ctx context.Context, userID, offerID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND offer_id = ?", userID, offerID).
		Delete(&model.SavedOffer{})
	return res.RowsAffected, res.Error
}

func (r *savedOfferRepository) ListByUser(ctx context.Context, userID string) ([]model.SavedOffer, error) {
	var saved []model.SavedOffer
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&saved).Error; err != nil {
		return nil, err
	}
	return saved, nil
}

func (r *savedOfferRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.SavedOffer{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
