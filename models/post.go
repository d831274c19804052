package models

import (
	"time"
)

type Post struct {
	ID             string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatorID      string    `json:"creatorId" gorm:"column:creator_id;type:uuid;not null"`
	Content        string    `json:"content"`
	Type           string    `json:"type"`
	Price          float64   `json:"price"`
	SubscriberOnly bool      `json:"subscriberOnly" gorm:"column:subscriber_only;default:false"`
	Tags           []string  `json:"tags" gorm:"serializer:json;type:jsonb"`
	Likes          int       `json:"likes" gorm:"default:0"`
	Views          int       `json:"views" gorm:"default:0"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// PostCreate model for publishing a post
type PostCreate struct {
	Content        string   `json:"content"`
	Type           string   `json:"type"`
	Price          float64  `json:"price"`
	SubscriberOnly bool     `json:"subscriberOnly"`
	Tags           []string `json:"tags"`
}

func (Post) TableName() string {
	return "posts"
}
