package service

import (
	"fmt"

	"github.com/Ayushchugh15/SPRA/internal/entity"
	"github.com/Ayushchugh15/SPRA/internal/repository"
	"github.com/google/uuid"
)

type HornTypeService struct {
	repo          *repository.HornTypeRepository
	componentRepo *repository.ComponentRepository
}

func NewHornTypeService(repo *repository.HornTypeRepository, componentRepo *repository.ComponentRepository) *HornTypeService {
	return &HornTypeService{repo: repo, componentRepo: componentRepo}
}

type CreateHornTypeRequest struct {
	Code        string `json:"code" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (s *HornTypeService) Create(req CreateHornTypeRequest) (*entity.HornType, error) {
	ht := &entity.HornType{
		ID:          uuid.New().String(),
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Create(ht); err != nil {
		return nil, fmt.Errorf("创建型号失败: %w", err)
	}
	return ht, nil
}

type UpdateHornTypeRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (s *HornTypeService) Update(id string, req UpdateHornTypeRequest) (*entity.HornType, error) {
	ht, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("型号不存在: %w", err)
	}
	if req.Name != nil {
		ht.Name = *req.Name
	}
	if req.Description != nil {
		ht.Description = *req.Description
	}
	if err := s.repo.Update(ht); err != nil {
		return nil, fmt.Errorf("更新型号失败: %w", err)
	}
	return ht, nil
}

func (s *HornTypeService) Delete(id string) error {
	return s.repo.Delete(id)
}

func (s *HornTypeService) GetByID(id string) (*entity.HornType, error) {
	return s.repo.GetByID(id)
}

func (s *HornTypeService) List(params repository.HornTypeListParams) ([]entity.HornType, int64, error) {
	return s.repo.List(params)
}

type BOMEntryRequest struct {
	ComponentID     string  `json:"component_id" binding:"required"`
	QuantityPerHorn float64 `json:"quantity_per_horn" binding:"required,gt=0"`
}

// SetBOM 整体替换型号BOM。零部件必须存在且同一型号下不允许重复。
func (s *HornTypeService) SetBOM(hornTypeID string, entries []BOMEntryRequest) (*entity.HornType, error) {
	if _, err := s.repo.GetByID(hornTypeID); err != nil {
		return nil, fmt.Errorf("型号不存在: %w", err)
	}

	seen := make(map[string]bool, len(entries))
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if seen[e.ComponentID] {
			return nil, fmt.Errorf("BOM中零部件重复: %s", e.ComponentID)
		}
		seen[e.ComponentID] = true
		ids = append(ids, e.ComponentID)
	}

	if len(ids) > 0 {
		components, err := s.componentRepo.GetByIDs(ids)
		if err != nil {
			return nil, fmt.Errorf("读取零部件失败: %w", err)
		}
		if len(components) != len(ids) {
			return nil, fmt.Errorf("BOM引用了不存在的零部件")
		}
	}

	rows := make([]entity.HornTypeComponent, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, entity.HornTypeComponent{
			ID:              uuid.New().String(),
			HornTypeID:      hornTypeID,
			ComponentID:     e.ComponentID,
			QuantityPerHorn: e.QuantityPerHorn,
		})
	}
	if err := s.repo.ReplaceBOM(hornTypeID, rows); err != nil {
		return nil, fmt.Errorf("保存BOM失败: %w", err)
	}

	return s.repo.GetByID(hornTypeID)
}
