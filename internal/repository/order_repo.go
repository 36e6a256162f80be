package repository

import (
	"github.com/Ayushchugh15/SPRA/internal/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(o *entity.Order) error {
	return r.db.Create(o).Error
}

func (r *OrderRepository) GetByID(id string) (*entity.Order, error) {
	var o entity.Order
	err := r.db.Preload("LineItems.HornType").Where("id = ?", id).First(&o).Error
	return &o, err
}

// GetForPlanning 取订单及整条BOM图：订购行 → 型号 → BOM行，MRP展开用
func (r *OrderRepository) GetForPlanning(id string) (*entity.Order, error) {
	var o entity.Order
	err := r.db.Preload("LineItems.HornType.BOMEntries").Where("id = ?", id).First(&o).Error
	return &o, err
}

func (r *OrderRepository) Update(o *entity.Order) error {
	return r.db.Save(o).Error
}

func (r *OrderRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&entity.MRPPlan{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", id).Delete(&entity.OrderLineItem{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entity.Order{}).Error
	})
}

type OrderListParams struct {
	Status  string
	Keyword string
	Page    int
	Size    int
}

func (r *OrderRepository) List(params OrderListParams) ([]entity.Order, int64, error) {
	query := r.db.Model(&entity.Order{})
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.Keyword != "" {
		kw := "%" + params.Keyword + "%"
		query = query.Where("order_number ILIKE ? OR customer_name ILIKE ?", kw, kw)
	}
	var total int64
	query.Count(&total)
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Size <= 0 {
		params.Size = 20
	}
	var orders []entity.Order
	err := query.Preload("LineItems.HornType").Order("created_at DESC").
		Offset((params.Page-1)*params.Size).Limit(params.Size).Find(&orders).Error
	return orders, total, err
}

func (r *OrderRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&entity.Order{}).Count(&total).Error
	return total, err
}

func (r *OrderRepository) CountActive() (int64, error) {
	var total int64
	err := r.db.Model(&entity.Order{}).
		Where("status IN ?", []string{entity.OrderStatusPending, entity.OrderStatusInProgress}).
		Count(&total).Error
	return total, err
}

// ReplaceLineItems 整体替换订购行
func (r *OrderRepository) ReplaceLineItems(orderID string, items []entity.OrderLineItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&entity.OrderLineItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}
