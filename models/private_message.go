package models

import (
	"time"
)

// PrivateMessage represents a message sent between two users
type PrivateMessage struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	SenderID    string    `json:"senderId" gorm:"column:sender_id;type:uuid;not null"`
	RecipientID string    `json:"recipientId" gorm:"column:recipient_id;type:uuid;not null"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PrivateMessageCreate model for sending a private message
type PrivateMessageCreate struct {
	RecipientID string `json:"recipientId" binding:"required"`
	Content     string `json:"content" binding:"required"`
}

func (PrivateMessage) TableName() string {
	return "private_messages"
}
