package repository

import (
	"github.com/Ayushchugh15/SPRA/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ComponentRepository struct {
	db *gorm.DB
}

func NewComponentRepository(db *gorm.DB) *ComponentRepository {
	return &ComponentRepository{db: db}
}

func (r *ComponentRepository) Create(c *entity.Component) error {
	return r.db.Create(c).Error
}

func (r *ComponentRepository) GetByID(id string) (*entity.Component, error) {
	var c entity.Component
	err := r.db.Where("id = ?", id).First(&c).Error
	return &c, err
}

func (r *ComponentRepository) GetByCode(code string) (*entity.Component, error) {
	var c entity.Component
	err := r.db.Where("code = ?", code).First(&c).Error
	return &c, err
}

// GetByIDs 按ID批量获取，MRP展开后取零部件明细用
func (r *ComponentRepository) GetByIDs(ids []string) ([]entity.Component, error) {
	var components []entity.Component
	err := r.db.Where("id IN ?", ids).Order("code").Find(&components).Error
	return components, err
}

func (r *ComponentRepository) Update(c *entity.Component) error {
	return r.db.Save(c).Error
}

func (r *ComponentRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&entity.Component{}).Error
}

type ComponentListParams struct {
	Keyword  string
	LowStock bool
	Page     int
	Size     int
}

func (r *ComponentRepository) List(params ComponentListParams) ([]entity.Component, int64, error) {
	query := r.db.Model(&entity.Component{})
	if params.Keyword != "" {
		kw := "%" + params.Keyword + "%"
		query = query.Where("code ILIKE ? OR name ILIKE ?", kw, kw)
	}
	if params.LowStock {
		query = query.Where("current_inventory < min_stock_level")
	}
	var total int64
	query.Count(&total)
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Size <= 0 {
		params.Size = 20
	}
	var components []entity.Component
	err := query.Order("code").Offset((params.Page-1)*params.Size).Limit(params.Size).Find(&components).Error
	return components, total, err
}

func (r *ComponentRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&entity.Component{}).Count(&total).Error
	return total, err
}

func (r *ComponentRepository) CountLowStock() (int64, error) {
	var total int64
	err := r.db.Model(&entity.Component{}).
		Where("current_inventory < min_stock_level").Count(&total).Error
	return total, err
}

// TotalInventoryValue 全部零部件的库存货值
func (r *ComponentRepository) TotalInventoryValue() (float64, error) {
	var result struct{ Total float64 }
	err := r.db.Raw(`
		SELECT COALESCE(SUM(current_inventory * unit_cost), 0) as total
		FROM components
	`).Scan(&result).Error
	return result.Total, err
}

// AdjustInventory 库存变更：加锁读当前库存、累加、写回并追加流水，
// 整体在一个事务里完成，balance_after来自同一次一致读。
func (r *ComponentRepository) AdjustInventory(componentID string, delta float64, txType, reference, notes string) (*entity.Component, *entity.InventoryTransaction, error) {
	var c entity.Component
	var record *entity.InventoryTransaction

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", componentID).First(&c).Error; err != nil {
			return err
		}

		c.CurrentInventory += delta
		if err := tx.Save(&c).Error; err != nil {
			return err
		}

		record = &entity.InventoryTransaction{
			ID:              uuid.New().String(),
			ComponentID:     c.ID,
			TransactionType: txType,
			Quantity:        delta,
			BalanceAfter:    c.CurrentInventory,
			Reference:       reference,
			Notes:           notes,
		}
		return tx.Create(record).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return &c, record, nil
}

func (r *ComponentRepository) ListTransactions(componentID string, limit int) ([]entity.InventoryTransaction, error) {
	query := r.db.Model(&entity.InventoryTransaction{}).Preload("Component")
	if componentID != "" {
		query = query.Where("component_id = ?", componentID)
	}
	if limit <= 0 {
		limit = 100
	}
	var txs []entity.InventoryTransaction
	err := query.Order("created_at DESC").Limit(limit).Find(&txs).Error
	return txs, err
}

// DB 返回底层db用于事务
func (r *ComponentRepository) DB() *gorm.DB {
	return r.db
}
