package domain

import (
	"time"

	"gorm.io/datatypes"
)

const (
	EventView     = "view"
	EventPurchase = "purchase"
)

// Interaction is a single behavioral log row. The trainer aggregates these
// into popularity scores; the serving path never reads this table.
type Interaction struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"column:user_id;not null" json:"user_id"`
	ProductID string    `gorm:"column:product_id;not null;index" json:"product_id"`
	Event     string    `gorm:"column:event;not null" json:"event"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Context datatypes.JSONMap `gorm:"column:context;type:jsonb" json:"context"`
}

func (Interaction) TableName() string {
	return "interactions"
}
