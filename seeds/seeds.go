package seeds

import (
	"context"
	"fmt"
	"math/rand"

	"myShopRecs/domain"
	"myShopRecs/pkg/logger"

	"gorm.io/gorm"
)

func price(p float64) *float64 { return &p }

// sample catalog used to bootstrap a local database
var sampleItems = []domain.Item{
	{ProductID: "P001", ProductName: "Trail Running Shoes", Brand: "Peakline", Category: "footwear", Description: "Lightweight trail running shoes with aggressive grip for muddy terrain", Price: price(89.99)},
	{ProductID: "P002", ProductName: "Road Running Shoes", Brand: "Peakline", Category: "footwear", Description: "Cushioned road running shoes built for daily training miles", Price: price(79.99)},
	{ProductID: "P003", ProductName: "Hiking Boots", Brand: "Northcrag", Category: "footwear", Description: "Waterproof leather hiking boots with ankle support", Price: price(129.99)},
	{ProductID: "P004", ProductName: "Running Jacket", Brand: "Peakline", Category: "apparel", Description: "Windproof running jacket with reflective trim for low light runs", Price: price(59.99)},
	{ProductID: "P005", ProductName: "Thermal Base Layer", Brand: "Northcrag", Category: "apparel", Description: "Merino thermal base layer for cold weather hiking and running", Price: price(44.99)},
	{ProductID: "P006", ProductName: "Insulated Water Bottle", Brand: "Hydraflow", Category: "accessories", Description: "Double wall insulated stainless steel water bottle keeps drinks cold", Price: price(24.99)},
	{ProductID: "P007", ProductName: "Running Cap", Brand: "Peakline", Category: "accessories", Description: "Breathable quick dry running cap with adjustable strap", Price: price(19.99)},
	{ProductID: "P008", ProductName: "Trekking Poles", Brand: "Northcrag", Category: "accessories", Description: "Collapsible aluminum trekking poles with cork grips", Price: price(54.99)},
	{ProductID: "P009", ProductName: "Trail Gaiters", Brand: "Northcrag", Category: "footwear", Description: "Debris gaiters that pair with trail running shoes and hiking boots", Price: price(17.99)},
	{ProductID: "P010", ProductName: "Hydration Vest", Brand: "Hydraflow", Category: "accessories", Description: "Lightweight hydration vest with soft flasks for long trail runs", Price: price(94.99)},
}

// Setup truncates and reseeds the catalog and interaction tables with a
// small deterministic sample set.
func Setup(ctx context.Context, db *gorm.DB) error {
	rng := rand.New(rand.NewSource(42))

	logger.Info("[seed] truncating existing data")
	if err := db.WithContext(ctx).Exec(
		"TRUNCATE interactions, catalog_items RESTART IDENTITY CASCADE",
	).Error; err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	logger.Info("[seed] inserting catalog items", "count", len(sampleItems))
	if err := db.WithContext(ctx).Create(&sampleItems).Error; err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	interactions := sampleInteractions(rng, 200)
	logger.Info("[seed] inserting interactions", "count", len(interactions))
	if err := db.WithContext(ctx).Create(&interactions).Error; err != nil {
		return fmt.Errorf("seed interactions: %w", err)
	}

	logger.Info("[seed] seeding complete")
	return nil
}

func sampleInteractions(rng *rand.Rand, n int) []domain.Interaction {
	out := make([]domain.Interaction, 0, n)
	for i := 0; i < n; i++ {
		item := sampleItems[rng.Intn(len(sampleItems))]
		event := domain.EventView
		if rng.Float64() < 0.25 {
			event = domain.EventPurchase
		}
		out = append(out, domain.Interaction{
			UserID:    fmt.Sprintf("U%03d", rng.Intn(40)+1),
			ProductID: item.ProductID,
			Event:     event,
		})
	}
	return out
}
