package service

import (
	"encoding/json"

	"github.com/Ayushchugh15/SPRA/internal/entity"
	"github.com/Ayushchugh15/SPRA/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuditService 操作审计。写入失败只记日志，从不影响业务请求。
type AuditService struct {
	repo   *repository.AuditRepository
	logger *zap.Logger
}

func NewAuditService(repo *repository.AuditRepository, logger *zap.Logger) *AuditService {
	return &AuditService{repo: repo, logger: logger}
}

// Record 追加一条审计记录
func (s *AuditService) Record(userID, action, entityType, entityID string, changes interface{}, ip, userAgent string) {
	var payload string
	if changes != nil {
		if data, err := json.Marshal(changes); err == nil {
			payload = string(data)
		}
	}

	log := &entity.AuditLog{
		ID:         uuid.New().String(),
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Changes:    payload,
		IPAddress:  ip,
		UserAgent:  userAgent,
	}
	if err := s.repo.Create(log); err != nil {
		s.logger.Warn("写入审计日志失败",
			zap.String("action", action),
			zap.Error(err),
		)
	}
}

func (s *AuditService) List(params repository.AuditListParams) ([]entity.AuditLog, int64, error) {
	return s.repo.List(params)
}
