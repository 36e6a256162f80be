package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/Ayushchugh15/SPRA/internal/entity"
	"github.com/Ayushchugh15/SPRA/internal/planning"
	"github.com/Ayushchugh15/SPRA/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrConfigMissing 生产配置未设置，无法生成计划
var ErrConfigMissing = errors.New("生产配置未设置")

// ErrInvalidStatus 非法的计划状态值
var ErrInvalidStatus = errors.New("非法的计划状态")

// InvalidTransitionError 状态只允许 planned → ordered → received 向前流转
type InvalidTransitionError struct {
	From, To string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("计划状态不允许从%s流转到%s", e.From, e.To)
}

type MRPService struct {
	mrpRepo       *repository.MRPRepository
	orderRepo     *repository.OrderRepository
	componentRepo *repository.ComponentRepository
	configRepo    *repository.ConfigRepository
	db            *gorm.DB
}

func NewMRPService(
	mrpRepo *repository.MRPRepository,
	orderRepo *repository.OrderRepository,
	componentRepo *repository.ComponentRepository,
	configRepo *repository.ConfigRepository,
	db *gorm.DB,
) *MRPService {
	return &MRPService{
		mrpRepo:       mrpRepo,
		orderRepo:     orderRepo,
		componentRepo: componentRepo,
		configRepo:    configRepo,
		db:            db,
	}
}

// PlanSummary 一次计划生成的汇总数字
type PlanSummary struct {
	OrderQuantity      int       `json:"order_quantity"`
	WorkingDays        int       `json:"working_days"`
	DailyProduction    int       `json:"daily_production"`
	ProductionStart    time.Time `json:"production_start"`
	TotalComponents    int       `json:"total_components"`
	ComponentsToOrder  int       `json:"components_to_order"`
	TotalEstimatedCost float64   `json:"total_estimated_cost"`
}

// GeneratePlan 为订单生成整套采购计划。
//
// 流程：BOM展开 → 工作日/产能校验 → 逐零部件净需求、批量、倒排 →
// 事务内整体替换旧计划。任何一步失败都不落库。
// now是计算中唯一的非确定输入（过期下单日钳制用），由调用方注入。
func (s *MRPService) GeneratePlan(orderID string, now time.Time) (*PlanSummary, []entity.MRPPlan, error) {
	order, err := s.orderRepo.GetForPlanning(orderID)
	if err != nil {
		return nil, nil, fmt.Errorf("订单不存在: %w", err)
	}

	cfg, err := s.configRepo.Get()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrConfigMissing
		}
		return nil, nil, fmt.Errorf("读取生产配置失败: %w", err)
	}

	// BOM展开
	lines := make([]planning.LineDemand, 0, len(order.LineItems))
	for _, item := range order.LineItems {
		if item.HornType == nil {
			continue
		}
		bom := make([]planning.BOMLine, 0, len(item.HornType.BOMEntries))
		for _, e := range item.HornType.BOMEntries {
			bom = append(bom, planning.BOMLine{
				ComponentID:     e.ComponentID,
				QuantityPerHorn: e.QuantityPerHorn,
			})
		}
		lines = append(lines, planning.LineDemand{Quantity: item.Quantity, BOM: bom})
	}

	requirements := planning.Explode(lines)
	if len(requirements) == 0 {
		return nil, nil, planning.ErrEmptyDemand
	}

	// 产能可行性，先于任何落库
	totalQty := order.TotalQuantity()
	workingDays := planning.WorkingDays(order.OrderDate, order.Deadline, cfg.WorkingDaysPerWeek)
	dailyProduction, err := planning.CheckCapacity(totalQty, workingDays, cfg.DailyCapacity)
	if err != nil {
		return nil, nil, err
	}

	componentIDs := make([]string, 0, len(requirements))
	for id := range requirements {
		componentIDs = append(componentIDs, id)
	}
	components, err := s.componentRepo.GetByIDs(componentIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("读取零部件失败: %w", err)
	}

	productionStart := planning.ProductionStart(order.OrderDate, cfg.SafetyStockDays)

	plans := make([]entity.MRPPlan, 0, len(components))
	componentsToOrder := 0
	totalCost := 0.0
	for i := range components {
		comp := &components[i]
		required := requirements[comp.ID]

		lot := planning.LotSize(required, comp.CurrentInventory, comp.MinimumOrderQty, comp.MaxStockLevel, comp.UnitCost)
		sched := planning.ScheduleOrder(productionStart, cfg.SafetyStockDays, comp.LeadTimeDays, now)

		if lot.OrderQuantity > 0 {
			componentsToOrder++
		}
		totalCost += lot.EstimatedCost

		plans = append(plans, entity.MRPPlan{
			ID:               uuid.New().String(),
			OrderID:          order.ID,
			ComponentID:      comp.ID,
			TotalRequired:    required,
			CurrentInventory: comp.CurrentInventory,
			NetRequirement:   lot.NetRequirement,
			OrderQuantity:    lot.OrderQuantity,
			OrderDate:        sched.OrderDate,
			ExpectedDelivery: sched.ExpectedDelivery,
			EstimatedCost:    lot.EstimatedCost,
			Status:           entity.MRPStatusPlanned,
		})
	}

	if err := s.mrpRepo.ReplaceForOrder(order.ID, plans); err != nil {
		return nil, nil, fmt.Errorf("保存采购计划失败: %w", err)
	}

	summary := &PlanSummary{
		OrderQuantity:      totalQty,
		WorkingDays:        workingDays,
		DailyProduction:    dailyProduction,
		ProductionStart:    productionStart,
		TotalComponents:    len(components),
		ComponentsToOrder:  componentsToOrder,
		TotalEstimatedCost: totalCost,
	}
	return summary, plans, nil
}

// ListByOrder 查询订单的当前计划集
func (s *MRPService) ListByOrder(orderID string) ([]entity.MRPPlan, error) {
	return s.mrpRepo.ListByOrder(orderID)
}

// UpdateStatus 流转计划状态。流转到received时在同一事务内
// 加锁读零部件库存、累加到货数量并追加receipt流水，
// 避免两次并发到货丢失更新。
func (s *MRPService) UpdateStatus(planID, newStatus string) (*entity.MRPPlan, error) {
	switch newStatus {
	case entity.MRPStatusPlanned, entity.MRPStatusOrdered, entity.MRPStatusReceived:
	default:
		return nil, ErrInvalidStatus
	}

	plan, err := s.mrpRepo.GetByID(planID)
	if err != nil {
		return nil, fmt.Errorf("计划不存在: %w", err)
	}

	if !entity.CanTransition(plan.Status, newStatus) {
		return nil, &InvalidTransitionError{From: plan.Status, To: newStatus}
	}

	if newStatus != entity.MRPStatusReceived {
		plan.Status = newStatus
		if err := s.db.Model(&entity.MRPPlan{}).Where("id = ?", plan.ID).
			Update("status", newStatus).Error; err != nil {
			return nil, fmt.Errorf("更新计划状态失败: %w", err)
		}
		return plan, nil
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var comp entity.Component
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", plan.ComponentID).First(&comp).Error; err != nil {
			return err
		}

		comp.CurrentInventory += plan.OrderQuantity
		if err := tx.Save(&comp).Error; err != nil {
			return err
		}

		record := &entity.InventoryTransaction{
			ID:              uuid.New().String(),
			ComponentID:     comp.ID,
			TransactionType: entity.TxTypeReceipt,
			Quantity:        plan.OrderQuantity,
			BalanceAfter:    comp.CurrentInventory,
			Reference:       fmt.Sprintf("MRP-%s", plan.ID),
			Notes:           fmt.Sprintf("订单%s采购到货", plan.OrderID),
		}
		if err := tx.Create(record).Error; err != nil {
			return err
		}

		return tx.Model(&entity.MRPPlan{}).Where("id = ?", plan.ID).
			Update("status", entity.MRPStatusReceived).Error
	})
	if err != nil {
		return nil, fmt.Errorf("到货入库失败: %w", err)
	}

	plan.Status = entity.MRPStatusReceived
	return plan, nil
}
