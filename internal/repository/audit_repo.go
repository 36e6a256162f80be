package repository

import (
	"github.com/Ayushchugh15/SPRA/internal/entity"
	"gorm.io/gorm"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Create(log *entity.AuditLog) error {
	return r.db.Create(log).Error
}

type AuditListParams struct {
	UserID     string
	Action     string
	EntityType string
	Page       int
	Size       int
}

func (r *AuditRepository) List(params AuditListParams) ([]entity.AuditLog, int64, error) {
	query := r.db.Model(&entity.AuditLog{})
	if params.UserID != "" {
		query = query.Where("user_id = ?", params.UserID)
	}
	if params.Action != "" {
		query = query.Where("action = ?", params.Action)
	}
	if params.EntityType != "" {
		query = query.Where("entity_type = ?", params.EntityType)
	}
	var total int64
	query.Count(&total)
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Size <= 0 {
		params.Size = 20
	}
	var logs []entity.AuditLog
	err := query.Order("created_at DESC").Offset((params.Page-1)*params.Size).Limit(params.Size).Find(&logs).Error
	return logs, total, err
}
