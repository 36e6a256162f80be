package service

import (
	"fmt"

	"github.com/Ayushchugh15/SPRA/internal/entity"
	"github.com/Ayushchugh15/SPRA/internal/repository"
	"github.com/google/uuid"
)

type ComponentService struct {
	repo         *repository.ComponentRepository
	hornTypeRepo *repository.HornTypeRepository
	mrpRepo      *repository.MRPRepository
}

func NewComponentService(
	repo *repository.ComponentRepository,
	hornTypeRepo *repository.HornTypeRepository,
	mrpRepo *repository.MRPRepository,
) *ComponentService {
	return &ComponentService{repo: repo, hornTypeRepo: hornTypeRepo, mrpRepo: mrpRepo}
}

type CreateComponentRequest struct {
	Code            string  `json:"code" binding:"required"`
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	Unit            string  `json:"unit"`
	CurrentInventory float64 `json:"current_inventory"`
	MinStockLevel   float64 `json:"min_stock_level"`
	MaxStockLevel   float64 `json:"max_stock_level"`
	LeadTimeDays    int     `json:"lead_time_days"`
	SupplierName    string  `json:"supplier_name"`
	SupplierContact string  `json:"supplier_contact"`
	UnitCost        float64 `json:"unit_cost"`
	MinimumOrderQty float64 `json:"minimum_order_quantity"`
}

func (s *ComponentService) Create(req CreateComponentRequest) (*entity.Component, error) {
	unit := req.Unit
	if unit == "" {
		unit = "pieces"
	}
	leadTime := req.LeadTimeDays
	if leadTime <= 0 {
		leadTime = 7
	}

	c := &entity.Component{
		ID:               uuid.New().String(),
		Code:             req.Code,
		Name:             req.Name,
		Description:      req.Description,
		Unit:             unit,
		CurrentInventory: req.CurrentInventory,
		MinStockLevel:    req.MinStockLevel,
		MaxStockLevel:    req.MaxStockLevel,
		LeadTimeDays:     leadTime,
		SupplierName:     req.SupplierName,
		SupplierContact:  req.SupplierContact,
		UnitCost:         req.UnitCost,
		MinimumOrderQty:  req.MinimumOrderQty,
	}
	if err := s.repo.Create(c); err != nil {
		return nil, fmt.Errorf("创建零部件失败: %w", err)
	}
	return c, nil
}

type UpdateComponentRequest struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Unit            *string  `json:"unit"`
	MinStockLevel   *float64 `json:"min_stock_level"`
	MaxStockLevel   *float64 `json:"max_stock_level"`
	LeadTimeDays    *int     `json:"lead_time_days"`
	SupplierName    *string  `json:"supplier_name"`
	SupplierContact *string  `json:"supplier_contact"`
	UnitCost        *float64 `json:"unit_cost"`
	MinimumOrderQty *float64 `json:"minimum_order_quantity"`
}

func (s *ComponentService) Update(id string, req UpdateComponentRequest) (*entity.Component, error) {
	c, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("零部件不存在: %w", err)
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Description != nil {
		c.Description = *req.Description
	}
	if req.Unit != nil {
		c.Unit = *req.Unit
	}
	if req.MinStockLevel != nil {
		c.MinStockLevel = *req.MinStockLevel
	}
	if req.MaxStockLevel != nil {
		c.MaxStockLevel = *req.MaxStockLevel
	}
	if req.LeadTimeDays != nil {
		c.LeadTimeDays = *req.LeadTimeDays
	}
	if req.SupplierName != nil {
		c.SupplierName = *req.SupplierName
	}
	if req.SupplierContact != nil {
		c.SupplierContact = *req.SupplierContact
	}
	if req.UnitCost != nil {
		c.UnitCost = *req.UnitCost
	}
	if req.MinimumOrderQty != nil {
		c.MinimumOrderQty = *req.MinimumOrderQty
	}

	if err := s.repo.Update(c); err != nil {
		return nil, fmt.Errorf("更新零部件失败: %w", err)
	}
	return c, nil
}

// Delete 删除零部件，被BOM行或采购计划引用时拒绝
func (s *ComponentService) Delete(id string) error {
	if refs, err := s.hornTypeRepo.CountBOMRefs(id); err != nil {
		return err
	} else if refs > 0 {
		return fmt.Errorf("零部件被%d条BOM引用，不能删除", refs)
	}
	if refs, err := s.mrpRepo.CountByComponent(id); err != nil {
		return err
	} else if refs > 0 {
		return fmt.Errorf("零部件被%d条采购计划引用，不能删除", refs)
	}
	return s.repo.Delete(id)
}

func (s *ComponentService) GetByID(id string) (*entity.Component, error) {
	return s.repo.GetByID(id)
}

func (s *ComponentService) List(params repository.ComponentListParams) ([]entity.Component, int64, error) {
	return s.repo.List(params)
}

type AdjustInventoryRequest struct {
	ComponentID string  `json:"component_id" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"required"` // 正数增加，负数减少
	Reference   string  `json:"reference"`
	Notes       string  `json:"notes"`
}

// AdjustInventory 人工库存调整，追加adjustment流水
func (s *ComponentService) AdjustInventory(req AdjustInventoryRequest) (*entity.Component, *entity.InventoryTransaction, error) {
	return s.repo.AdjustInventory(req.ComponentID, req.Quantity, entity.TxTypeAdjustment, req.Reference, req.Notes)
}

func (s *ComponentService) ListTransactions(componentID string, limit int) ([]entity.InventoryTransaction, error) {
	return s.repo.ListTransactions(componentID, limit)
}
