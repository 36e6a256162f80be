package entity

import (
	"time"
)

// MRPPlanStatus 采购计划状态，只允许向前流转
const (
	MRPStatusPlanned  = "planned"
	MRPStatusOrdered  = "ordered"
	MRPStatusReceived = "received"
)

// mrpTransitions 状态流转表：planned → ordered → received，received为终态
var mrpTransitions = map[string][]string{
	MRPStatusPlanned:  {MRPStatusOrdered, MRPStatusReceived},
	MRPStatusOrdered:  {MRPStatusReceived},
	MRPStatusReceived: {},
}

// CanTransition 判断MRP计划状态是否允许从from流转到to
func CanTransition(from, to string) bool {
	for _, next := range mrpTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// MRPPlan 某订单下某零部件的采购计划行。
// 每次生成会整体替换该订单的旧计划，一个订单只有一套当前计划。
type MRPPlan struct {
	ID               string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	OrderID          string    `json:"order_id" gorm:"type:uuid;not null;index"`
	ComponentID      string    `json:"component_id" gorm:"type:uuid;not null;index"`
	TotalRequired    float64   `json:"total_required" gorm:"type:decimal(12,4);not null"`
	CurrentInventory float64   `json:"current_inventory" gorm:"type:decimal(12,4);not null"` // 计划生成时的库存快照
	NetRequirement   float64   `json:"net_requirement" gorm:"type:decimal(12,4);not null"`
	OrderQuantity    float64   `json:"order_quantity" gorm:"type:decimal(12,4);not null"` // 按MOQ取整后的实际下单量
	OrderDate        time.Time `json:"order_date" gorm:"not null"`                        // 建议下单日期
	ExpectedDelivery time.Time `json:"expected_delivery" gorm:"not null"`
	EstimatedCost    float64   `json:"estimated_cost" gorm:"type:decimal(12,2);default:0"`
	Status           string    `json:"status" gorm:"size:50;not null;default:planned"`
	CreatedAt        time.Time `json:"created_at"`

	Component *Component `json:"component,omitempty" gorm:"foreignKey:ComponentID"`
}

func (MRPPlan) TableName() string {
	return "mrp_plans"
}
