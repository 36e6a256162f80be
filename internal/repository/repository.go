package repository

import "gorm.io/gorm"

// Repositories 仓库集合
type Repositories struct {
	User      *UserRepository
	Audit     *AuditRepository
	Component *ComponentRepository
	HornType  *HornTypeRepository
	Order     *OrderRepository
	Config    *ConfigRepository
	MRP       *MRPRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:      NewUserRepository(db),
		Audit:     NewAuditRepository(db),
		Component: NewComponentRepository(db),
		HornType:  NewHornTypeRepository(db),
		Order:     NewOrderRepository(db),
		Config:    NewConfigRepository(db),
		MRP:       NewMRPRepository(db),
	}
}
