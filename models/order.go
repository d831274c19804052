package models

import (
	"time"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderFulfilled OrderStatus = "FULFILLED"
	OrderCanceled  OrderStatus = "CANCELED"
)

type Order struct {
	ID        string      `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ItemID    string      `json:"itemId" gorm:"column:item_id;type:uuid;not null"`
	BuyerID   string      `json:"buyerId" gorm:"column:buyer_id;type:uuid;not null"`
	Status    OrderStatus `json:"status" gorm:"type:varchar(20);default:'PENDING'"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// OrderCreate model for placing an order
type OrderCreate struct {
	ItemID string `json:"itemId" binding:"required"`
}

func (Order) TableName() string {
	return "orders"
}
