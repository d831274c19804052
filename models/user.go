package models

import (
	"time"
)

type Role string

const (
	CreatorRole    Role = "CREATOR"
	SubscriberRole Role = "SUBSCRIBER"
	AdminRole      Role = "ADMIN"
)

type User struct {
	ID                string            `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserName          string            `json:"username" gorm:"column:user_name;uniqueIndex;not null"`
	Email             string            `json:"email"`
	Password          string            `json:"-"`
	Role              Role              `json:"role" gorm:"type:varchar(20);default:'SUBSCRIBER'"`
	Bio               string            `json:"bio"`
	ProfilePicture    string            `json:"profilePicture" gorm:"column:profile_picture"`
	Banner            string            `json:"banner"`
	SocialLinks       map[string]string `json:"socialLinks" gorm:"column:social_links;serializer:json;type:jsonb"`
	SubscriptionPlans []string          `json:"subscriptionPlans" gorm:"column:subscription_plans;serializer:json;type:jsonb"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}

// UserCreate model for the register endpoint
type UserCreate struct {
	UserName string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     Role   `json:"role"`
}

// UserLogin model for the login endpoint
type UserLogin struct {
	UserName string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (User) TableName() string {
	return "users"
}
