package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SavedOffer links a user to an offer they bookmarked. The composite unique
// index closes the duplicate-save race at the storage layer.
type SavedOffer struct {
	ID      string    `json:"id" gorm:"type:char(36);primaryKey"`
	UserID  string    `json:"user_id" gorm:"type:char(36);not null;uniqueIndex:idx_user_offer_save"`
	OfferID string    `json:"offer_id" gorm:"type:char(36);not null;uniqueIndex:idx_user_offer_save"`
	SavedAt time.Time `json:"saved_at" gorm:"autoCreateTime"`
}

// BeforeCreate sets the UUID before creating the record.
func (s *SavedOffer) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
