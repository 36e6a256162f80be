package entity

import (
	"time"
)

// ProductionConfig 生产配置，全局单行记录
type ProductionConfig struct {
	ID                 string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	DailyCapacity      int       `json:"daily_production_capacity" gorm:"not null"` // 每天产能（只）
	WorkingDaysPerWeek int       `json:"working_days_per_week" gorm:"not null;default:6"`
	MaxInventoryDays   int       `json:"max_inventory_days" gorm:"default:30"`
	SafetyStockDays    int       `json:"safety_stock_days" gorm:"default:3"` // 安全库存缓冲（天）
	UpdatedAt          time.Time `json:"updated_at"`
}

func (ProductionConfig) TableName() string {
	return "production_config"
}
