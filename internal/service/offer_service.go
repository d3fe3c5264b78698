package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"dealhunt/internal/cache"
	apperrors "dealhunt/internal/errors"
	"dealhunt/internal/model"
	"dealhunt/internal/repository"
)

const (
	offerCacheTTL = 5 * time.Minute

	// DefaultListLimit caps offer listings when no limit is given.
	DefaultListLimit = 50
)

// OfferService handles offer CRUD. Writes are admin-only; the router enforces that.
type OfferService interface {
	List(ctx context.Context, filter repository.OfferFilter) ([]model.Offer, error)
	Get(ctx context.Context, id string) (*model.Offer, error)
	Create(ctx context.Context, offer *model.Offer) error
	Update(ctx context.Context, id string, offer *model.Offer) error
	Delete(ctx context.Context, id string) error
}

type offerService struct {
	repo  repository.OfferRepository
	cache *cache.Client
}

// NewOfferService creates a new offer service.
func NewOfferService(repo repository.OfferRepository, cache *cache.Client) OfferService {
	return &offerService{
		repo:  repo,
		cache: cache,
	}
}

// List returns active offers matching the filter, capped at the default
// limit when none is set.
func (s *offerService) List(ctx context.Context, filter repository.OfferFilter) ([]model.Offer, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultListLimit
	}
	offers, err := s.repo.ListActive(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	return offers, nil
}

// Get retrieves an offer by ID with read-through caching.
func (s *offerService) Get(ctx context.Context, id string) (*model.Offer, error) {
	if data, _ := s.cache.Get(ctx, cache.OfferKey(id)); data != nil {
		var cached model.Offer
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	offer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOfferNotFound
		}
		return nil, fmt.Errorf("find offer: %w", err)
	}

	if payload, err := json.Marshal(offer); err == nil {
		_ = s.cache.Set(ctx, cache.OfferKey(id), payload, offerCacheTTL)
	}

	return offer, nil
}

// Create stores a new offer, defaulting it to active with a fresh timestamp.
func (s *offerService) Create(ctx context.Context, offer *model.Offer) error {
	offer.IsActive = true
	offer.CreatedAt = time.Now().UTC()
	if err := s.repo.Create(ctx, offer); err != nil {
		return fmt.Errorf("create offer: %w", err)
	}
	return nil
}

// Update fully replaces an offer's mutable fields. Matching the original
// contract, the replacement resets is_active to true and refreshes created_at.
func (s *offerService) Update(ctx context.Context, id string, offer *model.Offer) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOfferNotFound
		}
		return fmt.Errorf("find offer: %w", err)
	}

	offer.ID = id
	offer.IsActive = true
	offer.CreatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, offer); err != nil {
		return fmt.Errorf("update offer: %w", err)
	}

	_ = s.cache.Delete(ctx, cache.OfferKey(id))
	return nil
}

// Delete hard-deletes an offer. Saved-offer rows pointing at it are left
// orphaned; ListSaved resolves only offers that still exist.
func (s *offerService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete offer: %w", err)
	}
	if deleted == 0 {
		return apperrors.ErrOfferNotFound
	}

	_ = s.cache.Delete(ctx, cache.OfferKey(id))
	return nil
}
