package postgres

import (
	"context"
	"errors"
	"fmt"

	"myShopRecs/domain"

	"gorm.io/gorm"
)

type ItemRepository struct {
	DB *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{
		DB: db,
	}
}

func (r *ItemRepository) Create(ctx context.Context, item *domain.Item) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create catalog item: %w", err)
	}

	return nil
}

func (r *ItemRepository) FindByProductID(ctx context.Context, productID string) (domain.Item, error) {
	if err := ctx.Err(); err != nil {
		return domain.Item{}, fmt.Errorf("context error: %w", err)
	}

	var item domain.Item

	err := r.DB.WithContext(ctx).Where("product_id = ?", productID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Item{}, errors.New("item not found")
		}
		return domain.Item{}, fmt.Errorf("failed to find catalog item: %w", err)
	}

	return item, nil
}

// FindAll returns the catalog in a stable order. The trainer depends on
// this: vectors are positionally aligned with the returned slice.
func (r *ItemRepository) FindAll(ctx context.Context) ([]domain.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var items []domain.Item
	err := r.DB.WithContext(ctx).Order("product_id asc").Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find catalog items: %w", err)
	}

	return items, nil
}

func (r *ItemRepository) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	var count int64
	if err := r.DB.WithContext(ctx).Model(&domain.Item{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count catalog items: %w", err)
	}

	return count, nil
}
