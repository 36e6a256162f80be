package entity

import "gorm.io/gorm"

// AutoMigrate 自动迁移所有表
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// 账号
		&User{},
		&AuditLog{},

		// 基础数据
		&Component{},
		&HornType{},
		&HornTypeComponent{},

		// 订单
		&Order{},
		&OrderLineItem{},

		// 生产配置
		&ProductionConfig{},

		// MRP
		&MRPPlan{},

		// 库存
		&InventoryTransaction{},
	)
}
