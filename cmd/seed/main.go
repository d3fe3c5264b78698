package main

import (
	"context"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"dealhunt/internal/config"
	"dealhunt/internal/db"
	"dealhunt/internal/model"
	"dealhunt/internal/repository"
	"dealhunt/internal/service"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Offer{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	offerRepo := repository.NewOfferRepository(gormDB)
	ctx := context.Background()

	count, err := offerRepo.Count(ctx)
	if err != nil {
		log.Fatalf("Failed to count offers: %v", err)
	}
	if count > 0 {
		log.Printf("Offers table already has %d rows, nothing to do", count)
		return
	}

	offers := service.SampleOffers(time.Now().UTC())
	if err := offerRepo.CreateBatch(ctx, offers); err != nil {
		log.Fatalf("Failed to seed offers: %v", err)
	}

	original, discounted := catalogTotals(offers)
	log.Printf("Seed completed successfully!")
	log.Printf("  - Offers created: %d", len(offers))
	log.Printf("  - Catalog value: %s original, %s discounted (%s saved)",
		original, discounted, original.Sub(discounted))
}

// catalogTotals sums the catalog prices with decimal arithmetic so the
// summary log is exact.
func catalogTotals(offers []model.Offer) (original, discounted decimal.Decimal) {
	for _, offer := range offers {
		if offer.OriginalPrice != nil {
			original = original.Add(decimal.NewFromFloat(*offer.OriginalPrice))
		}
		if offer.DiscountedPrice != nil {
			discounted = discounted.Add(decimal.NewFromFloat(*offer.DiscountedPrice))
		}
	}
	return original, discounted
}
