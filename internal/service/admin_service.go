package service

import (
	"context"
	"fmt"
	"time"

	"dealhunt/internal/repository"
)

// Stats aggregates the counters exposed on the admin dashboard.
type Stats struct {
	TotalOffers  int64 `json:"total_offers"`
	ActiveOffers int64 `json:"active_offers"`
	TotalUsers   int64 `json:"total_users"`
	TotalSaved   int64 `json:"total_saved"`
}

// AdminService handles admin stats and sample-data seeding.
type AdminService interface {
	Stats(ctx context.Context) (*Stats, error)
	SeedOffers(ctx context.Context) (int, error)
}

type adminService struct {
	userRepo  repository.UserRepository
	offerRepo repository.OfferRepository
	savedRepo repository.SavedOfferRepository
}

// NewAdminService creates a new admin service.
func NewAdminService(userRepo repository.UserRepository, offerRepo repository.OfferRepository, savedRepo repository.SavedOfferRepository) AdminService {
	return &adminService{
		userRepo:  userRepo,
		offerRepo: offerRepo,
		savedRepo: savedRepo,
	}
}

// Stats counts offers, active offers, users, and saved relations.
func (s *adminService) Stats(ctx context.Context) (*Stats, error) {
	totalOffers, err := s.offerRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count offers: %w", err)
	}
	activeOffers, err := s.offerRepo.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("count active offers: %w", err)
	}
	totalUsers, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	totalSaved, err := s.savedRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count saved offers: %w", err)
	}

	return &Stats{
		TotalOffers:  totalOffers,
		ActiveOffers: activeOffers,
		TotalUsers:   totalUsers,
		TotalSaved:   totalSaved,
	}, nil
}

// SeedOffers inserts the sample catalog when the offers table is empty.
// Returns the number of offers inserted; zero means data already existed.
// The guard is a plain count check, not a transaction.
func (s *adminService) SeedOffers(ctx context.Context) (int, error) {
	count, err := s.offerRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count offers: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	offers := SampleOffers(time.Now().UTC())
	if err := s.offerRepo.CreateBatch(ctx, offers); err != nil {
		return 0, fmt.Errorf("seed offers: %w", err)
	}
	return len(offers), nil
}
