package entity

import (
	"time"
)

// TransactionType 库存交易类型
const (
	TxTypeReceipt     = "receipt"     // 采购到货入库
	TxTypeConsumption = "consumption" // 生产消耗出库
	TxTypeAdjustment  = "adjustment"  // 人工盘点调整
)

// Component 喇叭零部件，库存数量只通过交易记录或人工调整变更
type Component struct {
	ID               string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Code             string    `json:"code" gorm:"size:50;not null;uniqueIndex"`
	Name             string    `json:"name" gorm:"size:200;not null"`
	Description      string    `json:"description" gorm:"type:text"`
	Unit             string    `json:"unit" gorm:"size:50;not null;default:pieces"` // pieces, kg, meters...
	CurrentInventory float64   `json:"current_inventory" gorm:"type:decimal(12,4);not null;default:0"`
	MinStockLevel    float64   `json:"min_stock_level" gorm:"type:decimal(12,4);default:0"`
	MaxStockLevel    float64   `json:"max_stock_level" gorm:"type:decimal(12,4);default:0"` // 0=不限
	LeadTimeDays     int       `json:"lead_time_days" gorm:"default:7"`
	SupplierName     string    `json:"supplier_name" gorm:"size:200"`
	SupplierContact  string    `json:"supplier_contact" gorm:"size:200"`
	UnitCost         float64   `json:"unit_cost" gorm:"type:decimal(12,4);default:0"`
	MinimumOrderQty  float64   `json:"minimum_order_quantity" gorm:"type:decimal(12,4);default:0"` // 供应商MOQ
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (Component) TableName() string {
	return "components"
}

// InventoryTransaction 库存流水，只增不改
type InventoryTransaction struct {
	ID              string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ComponentID     string    `json:"component_id" gorm:"type:uuid;not null;index"`
	TransactionType string    `json:"transaction_type" gorm:"size:50;not null"`
	Quantity        float64   `json:"quantity" gorm:"type:decimal(12,4);not null"` // 正=入，负=出
	BalanceAfter    float64   `json:"balance_after" gorm:"type:decimal(12,4);not null"`
	Reference       string    `json:"reference" gorm:"size:200"` // 订单号、MRP计划号等
	Notes           string    `json:"notes" gorm:"type:text"`
	CreatedAt       time.Time `json:"created_at" gorm:"index"`

	Component *Component `json:"component,omitempty" gorm:"foreignKey:ComponentID"`
}

func (InventoryTransaction) TableName() string {
	return "inventory_transactions"
}
