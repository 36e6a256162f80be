package handler

import "github.com/Ayushchugh15/SPRA/internal/service"

// Handlers HTTP处理器集合
type Handlers struct {
	Auth      *AuthHandler
	Component *ComponentHandler
	Inventory *InventoryHandler
	HornType  *HornTypeHandler
	Order     *OrderHandler
	Config    *ConfigHandler
	MRP       *MRPHandler
	Dashboard *DashboardHandler
	Export    *ExportHandler
	Backup    *BackupHandler
	Audit     *AuditHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:      NewAuthHandler(services.Auth, services.Audit),
		Component: NewComponentHandler(services.Component, services.Audit),
		Inventory: NewInventoryHandler(services.Component, services.Audit),
		HornType:  NewHornTypeHandler(services.HornType, services.Audit),
		Order:     NewOrderHandler(services.Order, services.Audit),
		Config:    NewConfigHandler(services.Config, services.Audit),
		MRP:       NewMRPHandler(services.MRP, services.Audit),
		Dashboard: NewDashboardHandler(services.Dashboard),
		Export:    NewExportHandler(services.Export),
		Backup:    NewBackupHandler(services.Backup),
		Audit:     NewAuditHandler(services.Audit),
	}
}
