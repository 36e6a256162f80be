package repository

import (
	"github.com/Ayushchugh15/SPRA/internal/entity"
	"gorm.io/gorm"
)

type HornTypeRepository struct {
	db *gorm.DB
}

func NewHornTypeRepository(db *gorm.DB) *HornTypeRepository {
	return &HornTypeRepository{db: db}
}

func (r *HornTypeRepository) Create(ht *entity.HornType) error {
	return r.db.Create(ht).Error
}

func (r *HornTypeRepository) GetByID(id string) (*entity.HornType, error) {
	var ht entity.HornType
	err := r.db.Preload("BOMEntries.Component").Where("id = ?", id).First(&ht).Error
	return &ht, err
}

func (r *HornTypeRepository) GetByIDs(ids []string) ([]entity.HornType, error) {
	var types []entity.HornType
	err := r.db.Where("id IN ?", ids).Find(&types).Error
	return types, err
}

func (r *HornTypeRepository) Update(ht *entity.HornType) error {
	return r.db.Save(ht).Error
}

func (r *HornTypeRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("horn_type_id = ?", id).Delete(&entity.HornTypeComponent{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entity.HornType{}).Error
	})
}

type HornTypeListParams struct {
	Keyword string
	Page    int
	Size    int
}

func (r *HornTypeRepository) List(params HornTypeListParams) ([]entity.HornType, int64, error) {
	query := r.db.Model(&entity.HornType{})
	if params.Keyword != "" {
		kw := "%" + params.Keyword + "%"
		query = query.Where("code ILIKE ? OR name ILIKE ?", kw, kw)
	}
	var total int64
	query.Count(&total)
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Size <= 0 {
		params.Size = 20
	}
	var types []entity.HornType
	err := query.Preload("BOMEntries.Component").Order("code").
		Offset((params.Page-1)*params.Size).Limit(params.Size).Find(&types).Error
	return types, total, err
}

func (r *HornTypeRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&entity.HornType{}).Count(&total).Error
	return total, err
}

// ReplaceBOM 整体替换型号的BOM行，删旧插新在一个事务内
func (r *HornTypeRepository) ReplaceBOM(hornTypeID string, entries []entity.HornTypeComponent) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("horn_type_id = ?", hornTypeID).Delete(&entity.HornTypeComponent{}).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		return tx.Create(&entries).Error
	})
}

// CountBOMRefs 统计引用某零部件的BOM行数，删除零部件前校验用
func (r *HornTypeRepository) CountBOMRefs(componentID string) (int64, error) {
	var total int64
	err := r.db.Model(&entity.HornTypeComponent{}).
		Where("component_id = ?", componentID).Count(&total).Error
	return total, err
}
