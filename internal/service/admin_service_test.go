package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAdminService_Stats(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockOffers := new(MockOfferRepository)
	mockSaved := new(MockSavedOfferRepository)

	mockOffers.On("Count", mock.Anything).Return(int64(10), nil)
	mockOffers.On("CountActive", mock.Anything).Return(int64(7), nil)
	mockUsers.On("Count", mock.Anything).Return(int64(3), nil)
	mockSaved.On("Count", mock.Anything).Return(int64(5), nil)

	svc := NewAdminService(mockUsers, mockOffers, mockSaved)

	stats, err := svc.Stats(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(10), stats.TotalOffers)
	assert.Equal(t, int64(7), stats.ActiveOffers)
	assert.Equal(t, int64(3), stats.TotalUsers)
	assert.Equal(t, int64(5), stats.TotalSaved)
}

func TestAdminService_SeedOffers(t *testing.T) {
	t.Run("seeds when empty", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockOffers := new(MockOfferRepository)
		mockSaved := new(MockSavedOfferRepository)

		mockOffers.On("Count", mock.Anything).Return(int64(0), nil)
		mockOffers.On("CreateBatch", mock.Anything, mock.AnythingOfType("[]model.Offer")).Return(nil)

		svc := NewAdminService(mockUsers, mockOffers, mockSaved)

		seeded, err := svc.SeedOffers(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 6, seeded)

		mockOffers.AssertExpectations(t)
	})

	t.Run("no-op when offers exist", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockOffers := new(MockOfferRepository)
		mockSaved := new(MockSavedOfferRepository)

		mockOffers.On("Count", mock.Anything).Return(int64(4), nil)

		svc := NewAdminService(mockUsers, mockOffers, mockSaved)

		seeded, err := svc.SeedOffers(context.Background())
		assert.NoError(t, err)
		assert.Zero(t, seeded)
		mockOffers.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
	})
}

func TestSampleOffers_Catalog(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	offers := SampleOffers(now)

	assert.Len(t, offers, 6)
	for _, offer := range offers {
		assert.True(t, offer.IsActive)
		assert.NotEmpty(t, offer.Title)
		assert.NotEmpty(t, offer.Store)
		assert.NotEmpty(t, offer.Category)
		assert.NotNil(t, offer.ExpiryDate)
		assert.True(t, offer.ExpiryDate.After(now))
	}
}
