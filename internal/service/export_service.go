package service

import (
	"fmt"

	"github.com/Ayushchugh15/SPRA/internal/repository"
	"github.com/xuri/excelize/v2"
)

type ExportService struct {
	componentRepo *repository.ComponentRepository
	orderRepo     *repository.OrderRepository
	mrpRepo       *repository.MRPRepository
}

func NewExportService(
	componentRepo *repository.ComponentRepository,
	orderRepo *repository.OrderRepository,
	mrpRepo *repository.MRPRepository,
) *ExportService {
	return &ExportService{componentRepo: componentRepo, orderRepo: orderRepo, mrpRepo: mrpRepo}
}

// ComponentsWorkbook 导出零部件库存表
func (s *ExportService) ComponentsWorkbook() (*excelize.File, error) {
	components, _, err := s.componentRepo.List(repository.ComponentListParams{Page: 1, Size: 10000})
	if err != nil {
		return nil, fmt.Errorf("读取零部件失败: %w", err)
	}

	f := excelize.NewFile()
	sheet := "Components"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"编码", "名称", "单位", "当前库存", "最低库存", "最高库存", "交货周期(天)", "供应商", "单价", "MOQ"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, c := range components {
		values := []interface{}{
			c.Code, c.Name, c.Unit, c.CurrentInventory, c.MinStockLevel,
			c.MaxStockLevel, c.LeadTimeDays, c.SupplierName, c.UnitCost, c.MinimumOrderQty,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}
	return f, nil
}

// MRPWorkbook 导出某订单的采购计划表
func (s *ExportService) MRPWorkbook(orderID string) (*excelize.File, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, fmt.Errorf("订单不存在: %w", err)
	}
	plans, err := s.mrpRepo.ListByOrder(orderID)
	if err != nil {
		return nil, fmt.Errorf("读取采购计划失败: %w", err)
	}

	f := excelize.NewFile()
	sheet := "MRP"
	f.SetSheetName("Sheet1", sheet)

	f.SetCellValue(sheet, "A1", fmt.Sprintf("订单 %s / %s", order.OrderNumber, order.CustomerName))

	headers := []string{"零部件编码", "零部件名称", "总需求", "库存快照", "净需求", "下单量", "下单日期", "预计到货", "预估成本", "状态", "供应商"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		f.SetCellValue(sheet, cell, h)
	}

	for row, p := range plans {
		code, name, supplier := "", "", ""
		if p.Component != nil {
			code = p.Component.Code
			name = p.Component.Name
			supplier = p.Component.SupplierName
		}
		values := []interface{}{
			code, name, p.TotalRequired, p.CurrentInventory, p.NetRequirement,
			p.OrderQuantity, p.OrderDate.Format("2006-01-02"),
			p.ExpectedDelivery.Format("2006-01-02"), p.EstimatedCost, p.Status, supplier,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+3)
			f.SetCellValue(sheet, cell, v)
		}
	}
	return f, nil
}
