package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Ayushchugh15/SPRA/internal/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const dashboardCacheKey = "spra:dashboard:metrics"

// DashboardMetrics 仪表盘汇总数字
type DashboardMetrics struct {
	TotalComponents     int64   `json:"total_components"`
	TotalHornTypes      int64   `json:"total_horn_types"`
	TotalOrders         int64   `json:"total_orders"`
	ActiveOrders        int64   `json:"active_orders"`
	LowStockComponents  int64   `json:"low_stock_components"`
	TotalInventoryValue float64 `json:"total_inventory_value"`
}

type DashboardService struct {
	componentRepo *repository.ComponentRepository
	hornTypeRepo  *repository.HornTypeRepository
	orderRepo     *repository.OrderRepository
	rdb           *redis.Client
	cacheTTL      time.Duration
	logger        *zap.Logger
}

func NewDashboardService(
	componentRepo *repository.ComponentRepository,
	hornTypeRepo *repository.HornTypeRepository,
	orderRepo *repository.OrderRepository,
	rdb *redis.Client,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *DashboardService {
	if cacheTTL <= 0 {
		cacheTTL = 30 * time.Second
	}
	return &DashboardService{
		componentRepo: componentRepo,
		hornTypeRepo:  hornTypeRepo,
		orderRepo:     orderRepo,
		rdb:           rdb,
		cacheTTL:      cacheTTL,
		logger:        logger,
	}
}

// Metrics 返回仪表盘数字，短TTL的Redis缓存，未命中时现算。
// 缓存读写失败只记日志，不影响请求。
func (s *DashboardService) Metrics(ctx context.Context) (*DashboardMetrics, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, dashboardCacheKey).Bytes(); err == nil {
			var m DashboardMetrics
			if json.Unmarshal(cached, &m) == nil {
				return &m, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn("读取仪表盘缓存失败", zap.Error(err))
		}
	}

	m, err := s.compute()
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if data, err := json.Marshal(m); err == nil {
			if err := s.rdb.Set(ctx, dashboardCacheKey, data, s.cacheTTL).Err(); err != nil {
				s.logger.Warn("写入仪表盘缓存失败", zap.Error(err))
			}
		}
	}
	return m, nil
}

func (s *DashboardService) compute() (*DashboardMetrics, error) {
	m := &DashboardMetrics{}
	var err error

	if m.TotalComponents, err = s.componentRepo.Count(); err != nil {
		return nil, err
	}
	if m.TotalHornTypes, err = s.hornTypeRepo.Count(); err != nil {
		return nil, err
	}
	if m.TotalOrders, err = s.orderRepo.Count(); err != nil {
		return nil, err
	}
	if m.ActiveOrders, err = s.orderRepo.CountActive(); err != nil {
		return nil, err
	}
	if m.LowStockComponents, err = s.componentRepo.CountLowStock(); err != nil {
		return nil, err
	}
	if m.TotalInventoryValue, err = s.componentRepo.TotalInventoryValue(); err != nil {
		return nil, err
	}
	return m, nil
}
