package repository

import (
	"github.com/Ayushchugh15/SPRA/internal/entity"
	"gorm.io/gorm"
)

type MRPRepository struct {
	db *gorm.DB
}

func NewMRPRepository(db *gorm.DB) *MRPRepository {
	return &MRPRepository{db: db}
}

// ReplaceForOrder 替换订单的整套采购计划：删旧插新在一个事务内，
// 读者不会看到新旧混合或半空的计划集。
func (r *MRPRepository) ReplaceForOrder(orderID string, plans []entity.MRPPlan) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&entity.MRPPlan{}).Error; err != nil {
			return err
		}
		if len(plans) == 0 {
			return nil
		}
		return tx.Create(&plans).Error
	})
}

func (r *MRPRepository) GetByID(id string) (*entity.MRPPlan, error) {
	var plan entity.MRPPlan
	err := r.db.Preload("Component").Where("id = ?", id).First(&plan).Error
	return &plan, err
}

func (r *MRPRepository) ListByOrder(orderID string) ([]entity.MRPPlan, error) {
	var plans []entity.MRPPlan
	err := r.db.Preload("Component").
		Joins("JOIN components ON components.id = mrp_plans.component_id").
		Where("mrp_plans.order_id = ?", orderID).
		Order("components.code").Find(&plans).Error
	return plans, err
}

// CountByComponent 统计引用某零部件的计划行数，删除零部件前校验用
func (r *MRPRepository) CountByComponent(componentID string) (int64, error) {
	var total int64
	err := r.db.Model(&entity.MRPPlan{}).
		Where("component_id = ?", componentID).Count(&total).Error
	return total, err
}

// DB 返回底层db用于事务
func (r *MRPRepository) DB() *gorm.DB {
	return r.db
}
