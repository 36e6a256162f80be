package service

import (
	"github.com/Ayushchugh15/SPRA/internal/config"
	"github.com/Ayushchugh15/SPRA/internal/repository"
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Services 服务集合
type Services struct {
	Auth      *AuthService
	Audit     *AuditService
	Component *ComponentService
	HornType  *HornTypeService
	Order     *OrderService
	Config    *ConfigService
	MRP       *MRPService
	Dashboard *DashboardService
	Export    *ExportService
	Backup    *BackupService
}

// NewServices 组装所有服务。rdb和store允许为nil（本地开发可以不起缓存/对象存储）。
func NewServices(
	repos *repository.Repositories,
	db *gorm.DB,
	cfg *config.Config,
	logger *zap.Logger,
	rdb *redis.Client,
	store *minio.Client,
) *Services {
	s := &Services{
		Auth:      NewAuthService(repos.User, cfg.JWT),
		Audit:     NewAuditService(repos.Audit, logger),
		Component: NewComponentService(repos.Component, repos.HornType, repos.MRP),
		HornType:  NewHornTypeService(repos.HornType, repos.Component),
		Order:     NewOrderService(repos.Order, repos.HornType),
		Config:    NewConfigService(repos.Config),
		MRP:       NewMRPService(repos.MRP, repos.Order, repos.Component, repos.Config, db),
		Dashboard: NewDashboardService(repos.Component, repos.HornType, repos.Order, rdb, cfg.Redis.DashboardTTL, logger),
		Export:    NewExportService(repos.Component, repos.Order, repos.MRP),
	}
	if store != nil {
		s.Backup = NewBackupService(db, store, cfg.MinIO.Bucket, logger)
	}
	return s
}
