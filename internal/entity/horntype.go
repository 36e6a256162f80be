package entity

import (
	"time"
)

// HornType 喇叭型号（成品）
type HornType struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Code        string    `json:"code" gorm:"size:50;not null;uniqueIndex"`
	Name        string    `json:"name" gorm:"size:200;not null"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	BOMEntries []HornTypeComponent `json:"bom_entries,omitempty" gorm:"foreignKey:HornTypeID"`
}

func (HornType) TableName() string {
	return "horn_types"
}

// HornTypeComponent 型号BOM行：每只喇叭需要的零部件数量。
// 同一型号下零部件不允许重复。
type HornTypeComponent struct {
	ID              string  `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	HornTypeID      string  `json:"horn_type_id" gorm:"type:uuid;not null;index;uniqueIndex:uniq_horn_type_component"`
	ComponentID     string  `json:"component_id" gorm:"type:uuid;not null;uniqueIndex:uniq_horn_type_component"`
	QuantityPerHorn float64 `json:"quantity_per_horn" gorm:"type:decimal(12,4);not null"`

	Component *Component `json:"component,omitempty" gorm:"foreignKey:ComponentID"`
}

func (HornTypeComponent) TableName() string {
	return "horn_type_components"
}
