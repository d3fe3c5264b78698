package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"dealhunt/internal/model"
	"dealhunt/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockOfferRepository is a mock implementation of OfferRepository.
type MockOfferRepository struct {
	mock.Mock
}

func (m *MockOfferRepository) Create(ctx context.Context, offer *model.Offer) error {
	args := m.Called(ctx, offer)
	return args.Error(0)
}

func (m *MockOfferRepository) CreateBatch(ctx context.Context, offers []model.Offer) error {
	args := m.Called(ctx, offers)
	return args.Error(0)
}

func (m *MockOfferRepository) Update(ctx context.Context, offer *model.Offer) error {
	args := m.Called(ctx, offer)
	return args.Error(0)
}

func (m *MockOfferRepository) FindByID(ctx context.Context, id string) (*model.Offer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Offer), args.Error(1)
}

func (m *MockOfferRepository) FindByIDs(ctx context.Context, ids []string) ([]model.Offer, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Offer), args.Error(1)
}

func (m *MockOfferRepository) ListActive(ctx context.Context, filter repository.OfferFilter) ([]model.Offer, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Offer), args.Error(1)
}

func (m *MockOfferRepository) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOfferRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOfferRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockSavedOfferRepository is a mock implementation of SavedOfferRepository.
type MockSavedOfferRepository struct {
	mock.Mock
}

func (m *MockSavedOfferRepository) Create(ctx context.Context, saved *model.SavedOffer) error {
	args := m.Called(ctx, saved)
	return args.Error(0)
}

func (m *MockSavedOfferRepository) FindByUserAndOffer(ctx context.Context, userID, offerID string) (*model.SavedOffer, error) {
	args := m.Called(ctx, userID, offerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SavedOffer), args.Error(1)
}

func (m *MockSavedOfferRepository) DeleteByUserAndOffer(ctx context.Context, userID, offerID string) (int64, error) {
	args := m.Called(ctx, userID, offerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSavedOfferRepository) ListByUser(ctx context.Context, userID string) ([]model.SavedOffer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SavedOffer), args.Error(1)
}

func (m *MockSavedOfferRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
