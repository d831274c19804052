package models

import (
	"time"
)

type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "ACTIVE"
	SubscriptionCanceled SubscriptionStatus = "CANCELED"
)

type Subscription struct {
	ID           string             `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	SubscriberID string             `json:"subscriberId" gorm:"column:subscriber_id;type:uuid;not null"`
	CreatorID    string             `json:"creatorId" gorm:"column:creator_id;type:uuid;not null"`
	Plan         string             `json:"plan" gorm:"default:monthly"`
	Status       SubscriptionStatus `json:"status" gorm:"type:varchar(20);default:'ACTIVE'"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

// SubscriptionCreate model for subscribing to a creator
type SubscriptionCreate struct {
	CreatorID string `json:"creatorId" binding:"required"`
	Plan      string `json:"plan"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
