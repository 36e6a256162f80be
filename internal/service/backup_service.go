package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Ayushchugh15/SPRA/internal/entity"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BackupService 把全库数据做成JSON快照上传到对象存储
type BackupService struct {
	db     *gorm.DB
	store  *minio.Client
	bucket string
	logger *zap.Logger
}

func NewBackupService(db *gorm.DB, store *minio.Client, bucket string, logger *zap.Logger) *BackupService {
	return &BackupService{db: db, store: store, bucket: bucket, logger: logger}
}

type backupSnapshot struct {
	CreatedAt    time.Time                     `json:"created_at"`
	Components   []entity.Component            `json:"components"`
	HornTypes    []entity.HornType             `json:"horn_types"`
	BOMEntries   []entity.HornTypeComponent    `json:"bom_entries"`
	Orders       []entity.Order                `json:"orders"`
	LineItems    []entity.OrderLineItem        `json:"line_items"`
	Configs      []entity.ProductionConfig     `json:"production_config"`
	MRPPlans     []entity.MRPPlan              `json:"mrp_plans"`
	Transactions []entity.InventoryTransaction `json:"inventory_transactions"`
}

// Run 生成快照并上传，返回对象名
func (s *BackupService) Run(ctx context.Context) (string, error) {
	snap := backupSnapshot{CreatedAt: time.Now().UTC()}

	steps := []struct {
		name string
		dest interface{}
	}{
		{"components", &snap.Components},
		{"horn_types", &snap.HornTypes},
		{"bom_entries", &snap.BOMEntries},
		{"orders", &snap.Orders},
		{"line_items", &snap.LineItems},
		{"production_config", &snap.Configs},
		{"mrp_plans", &snap.MRPPlans},
		{"inventory_transactions", &snap.Transactions},
	}
	for _, step := range steps {
		if err := s.db.WithContext(ctx).Find(step.dest).Error; err != nil {
			return "", fmt.Errorf("导出%s失败: %w", step.name, err)
		}
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("序列化快照失败: %w", err)
	}

	objectName := fmt.Sprintf("spra-backup-%s.json", snap.CreatedAt.Format("20060102-150405"))
	_, err = s.store.PutObject(ctx, s.bucket, objectName, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return "", fmt.Errorf("上传备份失败: %w", err)
	}

	s.logger.Info("备份完成",
		zap.String("object", objectName),
		zap.Int("bytes", len(data)),
	)
	return objectName, nil
}

// BackupInfo 备份对象信息
type BackupInfo struct {
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// List 列出已有备份
func (s *BackupService) List(ctx context.Context) ([]BackupInfo, error) {
	var backups []BackupInfo
	for obj := range s.store.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: "spra-backup-"}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("列出备份失败: %w", obj.Err)
		}
		backups = append(backups, BackupInfo{
			Name:         obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
	}
	return backups, nil
}
