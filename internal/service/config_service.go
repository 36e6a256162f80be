package service

import (
	"fmt"

	"github.com/Ayushchugh15/SPRA/internal/entity"
	"github.com/Ayushchugh15/SPRA/internal/repository"
)

type ConfigService struct {
	repo *repository.ConfigRepository
}

func NewConfigService(repo *repository.ConfigRepository) *ConfigService {
	return &ConfigService{repo: repo}
}

// Get 读取生产配置，首次访问时创建默认值
func (s *ConfigService) Get() (*entity.ProductionConfig, error) {
	return s.repo.GetOrCreateDefault()
}

type UpdateConfigRequest struct {
	DailyCapacity      *int `json:"daily_production_capacity"`
	WorkingDaysPerWeek *int `json:"working_days_per_week"`
	MaxInventoryDays   *int `json:"max_inventory_days"`
	SafetyStockDays    *int `json:"safety_stock_days"`
}

func (s *ConfigService) Update(req UpdateConfigRequest) (*entity.ProductionConfig, error) {
	cfg, err := s.repo.GetOrCreateDefault()
	if err != nil {
		return nil, fmt.Errorf("读取生产配置失败: %w", err)
	}

	if req.DailyCapacity != nil {
		if *req.DailyCapacity <= 0 {
			return nil, fmt.Errorf("日产能必须大于0")
		}
		cfg.DailyCapacity = *req.DailyCapacity
	}
	if req.WorkingDaysPerWeek != nil {
		if *req.WorkingDaysPerWeek < 1 || *req.WorkingDaysPerWeek > 7 {
			return nil, fmt.Errorf("每周工作日必须在1到7之间")
		}
		cfg.WorkingDaysPerWeek = *req.WorkingDaysPerWeek
	}
	if req.MaxInventoryDays != nil {
		cfg.MaxInventoryDays = *req.MaxInventoryDays
	}
	if req.SafetyStockDays != nil {
		if *req.SafetyStockDays < 0 {
			return nil, fmt.Errorf("安全库存天数不能为负")
		}
		cfg.SafetyStockDays = *req.SafetyStockDays
	}

	if err := s.repo.Update(cfg); err != nil {
		return nil, fmt.Errorf("保存生产配置失败: %w", err)
	}
	return cfg, nil
}
