package domain

import (
	"time"
)

// CREATE TABLE public.catalog_items (
//     id              BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     product_id      TEXT UNIQUE NOT NULL,
//     product_name    TEXT,
//     brand           TEXT,
//     category        TEXT,
//     description     TEXT,
//     price           NUMERIC,
//     created_at      TIMESTAMPTZ DEFAULT NOW()
// );

type Item struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"-"`
	ProductID   string    `gorm:"column:product_id;uniqueIndex;not null" json:"product_id"`
	ProductName string    `gorm:"column:product_name;type:text" json:"product_name"`
	Brand       string    `gorm:"column:brand;type:text" json:"brand"`
	Category    string    `gorm:"column:category;type:text" json:"category"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Price       *float64  `gorm:"column:price;type:numeric" json:"price,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"-"`
}

func (Item) TableName() string {
	return "catalog_items"
}
