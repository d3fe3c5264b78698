package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Offer represents a deal listed on a partner store.
type Offer struct {
	ID                 string     `json:"id" gorm:"type:char(36);primaryKey"`
	Title              string     `json:"title" gorm:"size:255;not null"`
	Description        string     `json:"description" gorm:"type:text;not null"`
	DiscountPercentage int        `json:"discount_percentage" gorm:"not null"`
	OriginalPrice      *float64   `json:"original_price"`
	DiscountedPrice    *float64   `json:"discounted_price"`
	Store              string     `json:"store" gorm:"size:100;not null;index"`
	Category           string     `json:"category" gorm:"size:100;not null;index"`
	ProductImage       string     `json:"product_image" gorm:"size:512;not null"`
	OfferLink          string     `json:"offer_link" gorm:"size:512;not null"`
	ExpiryDate         *time.Time `json:"expiry_date"`
	IsActive           bool       `json:"is_active" gorm:"default:true;index"`
	CreatedAt          time.Time  `json:"created_at"`
}

// BeforeCreate sets the UUID before creating the record.
func (o *Offer) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
