package models

import (
	"time"
)

type StoreItem struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatorID   string    `json:"creatorId" gorm:"column:creator_id;type:uuid;not null"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// StoreItemCreate model for adding an item to a creator's store
type StoreItemCreate struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"required"`
}

func (StoreItem) TableName() string {
	return "store_items"
}
