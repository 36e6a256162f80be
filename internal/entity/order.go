package entity

import (
	"time"
)

// OrderStatus 订单状态（仅供展示，核心计算不依赖）
const (
	OrderStatusPending    = "pending"
	OrderStatusInProgress = "in_progress"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// Order 客户订单，包含多个型号的订购行
type Order struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	OrderNumber  string    `json:"order_number" gorm:"size:50;not null;uniqueIndex"`
	CustomerName string    `json:"customer_name" gorm:"size:200;not null"`
	OrderDate    time.Time `json:"order_date" gorm:"not null"`
	Deadline     time.Time `json:"deadline" gorm:"not null"`
	Status       string    `json:"status" gorm:"size:50;not null;default:pending"`
	Notes        string    `json:"notes" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	LineItems []OrderLineItem `json:"line_items,omitempty" gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string {
	return "orders"
}

// TotalQuantity 订单总只数（所有订购行之和），不落库
func (o *Order) TotalQuantity() int {
	total := 0
	for _, item := range o.LineItems {
		total += item.Quantity
	}
	return total
}

// OrderLineItem 订购行：某个型号订购多少只
type OrderLineItem struct {
	ID         string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	OrderID    string `json:"order_id" gorm:"type:uuid;not null;index"`
	HornTypeID string `json:"horn_type_id" gorm:"type:uuid;not null"`
	Quantity   int    `json:"quantity" gorm:"not null"`

	HornType *HornType `json:"horn_type,omitempty" gorm:"foreignKey:HornTypeID"`
}

func (OrderLineItem) TableName() string {
	return "order_line_items"
}
