package models

import (
	"time"
)

// Referral tracks an affiliate code for a creator: how many signups it
// brought in and the commission-adjusted earnings accumulated so far.
type Referral struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatorID   string    `json:"creatorId" gorm:"column:creator_id;type:uuid;not null"`
	AffiliateID string    `json:"affiliateId" gorm:"column:affiliate_id;type:uuid;not null"`
	Code        string    `json:"code" gorm:"uniqueIndex;not null"`
	Commission  float64   `json:"commission" gorm:"default:0.2"`
	Signups     int       `json:"signups" gorm:"default:0"`
	Earnings    float64   `json:"earnings" gorm:"default:0"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ReferralCreate model for creating a referral code
type ReferralCreate struct {
	CreatorID  string   `json:"creatorId" binding:"required"`
	Code       string   `json:"code"`
	Commission *float64 `json:"commission"`
}

// ReferralEarning model for recording an earning event against a code
type ReferralEarning struct {
	Amount *float64 `json:"amount" binding:"required"`
}

func (Referral) TableName() string {
	return "referrals"
}
