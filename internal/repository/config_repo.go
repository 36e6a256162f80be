package repository

import (
	"github.com/Ayushchugh15/SPRA/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConfigRepository struct {
	db *gorm.DB
}

func NewConfigRepository(db *gorm.DB) *ConfigRepository {
	return &ConfigRepository{db: db}
}

// Get 读取生产配置单行记录，不存在时返回gorm.ErrRecordNotFound
func (r *ConfigRepository) Get() (*entity.ProductionConfig, error) {
	var cfg entity.ProductionConfig
	err := r.db.First(&cfg).Error
	return &cfg, err
}

// GetOrCreateDefault 读取配置，不存在时落一行默认值。
// 配置始终保持单行，不放进程内全局变量，每次操作现读。
func (r *ConfigRepository) GetOrCreateDefault() (*entity.ProductionConfig, error) {
	var cfg entity.ProductionConfig
	err := r.db.First(&cfg).Error
	if err == gorm.ErrRecordNotFound {
		cfg = entity.ProductionConfig{
			ID:                 uuid.New().String(),
			DailyCapacity:      1000,
			WorkingDaysPerWeek: 6,
			MaxInventoryDays:   30,
			SafetyStockDays:    3,
		}
		if err := r.db.Create(&cfg).Error; err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	return &cfg, err
}

func (r *ConfigRepository) Update(cfg *entity.ProductionConfig) error {
	return r.db.Save(cfg).Error
}
