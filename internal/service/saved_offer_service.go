package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "dealhunt/internal/errors"
	"dealhunt/internal/model"
	"dealhunt/internal/repository"
)

// SavedOfferService handles the user/offer bookmark relation.
type SavedOfferService interface {
	Save(ctx context.Context, userID, offerID string) error
	Unsave(ctx context.Context, userID, offerID string) error
	ListSaved(ctx context.Context, userID string) ([]model.Offer, error)
}

type savedOfferService struct {
	savedRepo repository.SavedOfferRepository
	offerRepo repository.OfferRepository
}

// NewSavedOfferService creates a new saved-offer service.
func NewSavedOfferService(savedRepo repository.SavedOfferRepository, offerRepo repository.OfferRepository) SavedOfferService {
	return &savedOfferService{
		savedRepo: savedRepo,
		offerRepo: offerRepo,
	}
}

// Save bookmarks an offer for a user. Fails when the offer is missing or the
// pair is already saved.
func (s *savedOfferService) Save(ctx context.Context, userID, offerID string) error {
	if _, err := s.offerRepo.FindByID(ctx, offerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOfferNotFound
		}
		return fmt.Errorf("find offer: %w", err)
	}

	existing, err := s.savedRepo.FindByUserAndOffer(ctx, userID, offerID)
	if err == nil && existing != nil {
		return apperrors.ErrOfferAlreadySaved
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check saved offer: %w", err)
	}

	saved := &model.SavedOffer{
		UserID:  userID,
		OfferID: offerID,
	}
	if err := s.savedRepo.Create(ctx, saved); err != nil {
		// The composite unique index catches the race between the existence
		// check and the insert.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrOfferAlreadySaved
		}
		return fmt.Errorf("create saved offer: %w", err)
	}
	return nil
}

// Unsave removes a bookmark. Fails when the relation is absent.
func (s *savedOfferService) Unsave(ctx context.Context, userID, offerID string) error {
	deleted, err := s.savedRepo.DeleteByUserAndOffer(ctx, userID, offerID)
	if err != nil {
		return fmt.Errorf("delete saved offer: %w", err)
	}
	if deleted == 0 {
		return apperrors.ErrSavedOfferNotFound
	}
	return nil
}

// ListSaved resolves a user's bookmarks to full offer records. An empty
// relation short-circuits without hitting the offers table.
func (s *savedOfferService) ListSaved(ctx context.Context, userID string) ([]model.Offer, error) {
	saved, err := s.savedRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list saved offers: %w", err)
	}
	if len(saved) == 0 {
		return []model.Offer{}, nil
	}

	ids := make([]string, 0, len(saved))
	for _, rel := range saved {
		ids = append(ids, rel.OfferID)
	}

	offers, err := s.offerRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve saved offers: %w", err)
	}
	return offers, nil
}
