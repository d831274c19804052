package models

import (
	"time"
)

type Tip struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	SenderID    string    `json:"senderId" gorm:"column:sender_id;type:uuid;not null"`
	RecipientID string    `json:"recipientId" gorm:"column:recipient_id;type:uuid;not null"`
	Amount      float64   `json:"amount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TipCreate model for sending a tip
type TipCreate struct {
	RecipientID string   `json:"recipientId" binding:"required"`
	Amount      *float64 `json:"amount" binding:"required"`
}

func (Tip) TableName() string {
	return "tips"
}
