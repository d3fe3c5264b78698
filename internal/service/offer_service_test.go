package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"dealhunt/internal/cache"
	apperrors "dealhunt/internal/errors"
	"dealhunt/internal/model"
	"dealhunt/internal/repository"
)

// nilCache exercises the fail-safe path: a nil client behaves like a
// permanent cache miss.
var nilCache *cache.Client

func TestOfferService_List(t *testing.T) {
	mockRepo := new(MockOfferRepository)
	mockRepo.On("ListActive", mock.Anything, repository.OfferFilter{Store: "Amazon", Limit: DefaultListLimit}).
		Return([]model.Offer{{Title: "TV", Store: "Amazon"}}, nil)

	svc := NewOfferService(mockRepo, nilCache)

	offers, err := svc.List(context.Background(), repository.OfferFilter{Store: "Amazon"})
	assert.NoError(t, err)
	assert.Len(t, offers, 1)
	assert.Equal(t, "Amazon", offers[0].Store)

	mockRepo.AssertExpectations(t)
}

func TestOfferService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockRepo := new(MockOfferRepository)
		mockRepo.On("FindByID", mock.Anything, "offer-1").Return(&model.Offer{ID: "offer-1"}, nil)

		svc := NewOfferService(mockRepo, nilCache)

		offer, err := svc.Get(context.Background(), "offer-1")
		assert.NoError(t, err)
		assert.Equal(t, "offer-1", offer.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockOfferRepository)
		mockRepo.On("FindByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

		svc := NewOfferService(mockRepo, nilCache)

		_, err := svc.Get(context.Background(), "missing")
		assert.ErrorIs(t, err, apperrors.ErrOfferNotFound)
	})
}

func TestOfferService_Create(t *testing.T) {
	mockRepo := new(MockOfferRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Offer")).Return(nil)

	svc := NewOfferService(mockRepo, nilCache)

	offer := &model.Offer{Title: "New Deal", IsActive: false}
	err := svc.Create(context.Background(), offer)
	assert.NoError(t, err)
	assert.True(t, offer.IsActive)
	assert.False(t, offer.CreatedAt.IsZero())

	mockRepo.AssertExpectations(t)
}

func TestOfferService_Update(t *testing.T) {
	t.Run("replaces all fields under the existing id", func(t *testing.T) {
		mockRepo := new(MockOfferRepository)
		mockRepo.On("FindByID", mock.Anything, "offer-1").Return(&model.Offer{ID: "offer-1"}, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Offer")).Return(nil)

		svc := NewOfferService(mockRepo, nilCache)

		offer := &model.Offer{Title: "Replaced"}
		err := svc.Update(context.Background(), "offer-1", offer)
		assert.NoError(t, err)
		assert.Equal(t, "offer-1", offer.ID)
		assert.True(t, offer.IsActive)

		mockRepo.AssertExpectations(t)
	})

	t.Run("missing offer", func(t *testing.T) {
		mockRepo := new(MockOfferRepository)
		mockRepo.On("FindByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

		svc := NewOfferService(mockRepo, nilCache)

		err := svc.Update(context.Background(), "missing", &model.Offer{Title: "Replaced"})
		assert.ErrorIs(t, err, apperrors.ErrOfferNotFound)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestOfferService_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		mockRepo := new(MockOfferRepository)
		mockRepo.On("Delete", mock.Anything, "offer-1").Return(int64(1), nil)

		svc := NewOfferService(mockRepo, nilCache)

		assert.NoError(t, svc.Delete(context.Background(), "offer-1"))
	})

	t.Run("missing offer", func(t *testing.T) {
		mockRepo := new(MockOfferRepository)
		mockRepo.On("Delete", mock.Anything, "missing").Return(int64(0), nil)

		svc := NewOfferService(mockRepo, nilCache)

		err := svc.Delete(context.Background(), "missing")
		assert.ErrorIs(t, err, apperrors.ErrOfferNotFound)
	})
}
