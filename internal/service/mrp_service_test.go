package service

import (
	"errors"
	"testing"
	"time"

	"github.com/Ayushchugh15/SPRA/internal/entity"
	"github.com/Ayushchugh15/SPRA/internal/planning"
	"github.com/Ayushchugh15/SPRA/internal/repository"
	"github.com/Ayushchugh15/SPRA/internal/testutil"
	"gorm.io/gorm"
)

func setupMRP(t *testing.T) (*MRPService, *repository.Repositories, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	svc := NewMRPService(repos.MRP, repos.Order, repos.Component, repos.Config, db)
	return svc, repos, db
}

func TestGeneratePlan(t *testing.T) {
	svc, _, db := setupMRP(t)

	testutil.SeedConfig(t, db, 1000, 6, 30, 3)
	compA := testutil.SeedComponent(t, db, "COMP-A", 100, 150, 0, 2.5, 10)
	compB := testutil.SeedComponent(t, db, "COMP-B", 200, 0, 0, 1.0, 5)
	horn := testutil.SeedHornType(t, db, "HORN-1", map[string]float64{
		compA.ID: 2,
		compB.ID: 0.5,
	})

	orderDate := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	deadline := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	order := testutil.SeedOrder(t, db, "ORD-001", orderDate, deadline, map[string]int{horn.ID: 250})

	now := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	summary, plans, err := svc.GeneratePlan(order.ID, now)
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}

	if summary.OrderQuantity != 250 {
		t.Errorf("OrderQuantity = %d, want 250", summary.OrderQuantity)
	}
	if summary.WorkingDays != 12 {
		t.Errorf("WorkingDays = %d, want 12", summary.WorkingDays)
	}
	if summary.DailyProduction != 21 {
		t.Errorf("DailyProduction = %d, want 21", summary.DailyProduction)
	}
	if summary.TotalComponents != 2 || summary.ComponentsToOrder != 1 {
		t.Errorf("components = %d/%d, want 2/1", summary.TotalComponents, summary.ComponentsToOrder)
	}
	if summary.TotalEstimatedCost != 1125 {
		t.Errorf("TotalEstimatedCost = %v, want 1125", summary.TotalEstimatedCost)
	}

	if len(plans) != 2 {
		t.Fatalf("got %d plans, want 2", len(plans))
	}

	// 零部件按编码排序，COMP-A在前
	planA, planB := plans[0], plans[1]
	if planA.ComponentID != compA.ID {
		t.Fatalf("plans not ordered by component code")
	}

	if planA.TotalRequired != 500 || planA.NetRequirement != 400 {
		t.Errorf("COMP-A requirement = %v/%v, want 500/400", planA.TotalRequired, planA.NetRequirement)
	}
	// MOQ 150：400向上取整到450
	if planA.OrderQuantity != 450 {
		t.Errorf("COMP-A OrderQuantity = %v, want 450", planA.OrderQuantity)
	}
	if planA.EstimatedCost != 1125 {
		t.Errorf("COMP-A EstimatedCost = %v, want 1125", planA.EstimatedCost)
	}

	// 生产起始 = 3-02 + 3天安全缓冲，下单日再往前推 10+3 天
	wantOrderDate := time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)
	if !planA.OrderDate.Equal(wantOrderDate) {
		t.Errorf("COMP-A OrderDate = %v, want %v", planA.OrderDate, wantOrderDate)
	}
	wantDelivery := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	if !planA.ExpectedDelivery.Equal(wantDelivery) {
		t.Errorf("COMP-A ExpectedDelivery = %v, want %v", planA.ExpectedDelivery, wantDelivery)
	}

	// 库存足够的零部件也保留计划行，下单量为0
	if planB.TotalRequired != 125 || planB.NetRequirement != 0 || planB.OrderQuantity != 0 {
		t.Errorf("COMP-B = %v/%v/%v, want 125/0/0", planB.TotalRequired, planB.NetRequirement, planB.OrderQuantity)
	}

	if planA.Status != entity.MRPStatusPlanned || planB.Status != entity.MRPStatusPlanned {
		t.Errorf("new plans must start as planned")
	}
}

func TestGeneratePlanClampsPastOrderDate(t *testing.T) {
	svc, _, db := setupMRP(t)

	testutil.SeedConfig(t, db, 1000, 6, 30, 3)
	comp := testutil.SeedComponent(t, db, "COMP-A", 0, 0, 0, 1, 60)
	horn := testutil.SeedHornType(t, db, "HORN-1", map[string]float64{comp.ID: 1})

	orderDate := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	deadline := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	order := testutil.SeedOrder(t, db, "ORD-001", orderDate, deadline, map[string]int{horn.ID: 10})

	// 60天交货周期把下单日推到过去，钳制到now
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	_, plans, err := svc.GeneratePlan(order.ID, now)
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}
	if !plans[0].OrderDate.Equal(now) {
		t.Errorf("OrderDate = %v, want clamped to %v", plans[0].OrderDate, now)
	}
	wantDelivery := now.AddDate(0, 0, 60)
	if !plans[0].ExpectedDelivery.Equal(wantDelivery) {
		t.Errorf("ExpectedDelivery = %v, want %v", plans[0].ExpectedDelivery, wantDelivery)
	}
}

func TestGeneratePlanReplacesPrevious(t *testing.T) {
	svc, repos, db := setupMRP(t)

	testutil.SeedConfig(t, db, 1000, 6, 30, 3)
	comp := testutil.SeedComponent(t, db, "COMP-A", 0, 0, 0, 1, 7)
	horn := testutil.SeedHornType(t, db, "HORN-1", map[string]float64{comp.ID: 1})

	orderDate := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	deadline := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	order := testutil.SeedOrder(t, db, "ORD-001", orderDate, deadline, map[string]int{horn.ID: 100})

	now := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	_, first, err := svc.GeneratePlan(order.ID, now)
	if err != nil {
		t.Fatalf("first GeneratePlan: %v", err)
	}

	// 人为把状态推进，重新生成后必须回到planned的全新计划
	if _, err := svc.UpdateStatus(first[0].ID, entity.MRPStatusOrdered); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	_, second, err := svc.GeneratePlan(order.ID, now)
	if err != nil {
		t.Fatalf("second GeneratePlan: %v", err)
	}
	if len(second) != 1 {
		t.Fatalf("got %d plans after regeneration, want 1", len(second))
	}
	if second[0].ID == first[0].ID {
		t.Errorf("regeneration must produce fresh plan rows")
	}
	if second[0].Status != entity.MRPStatusPlanned {
		t.Errorf("regenerated plan status = %s, want planned", second[0].Status)
	}

	stored, err := repos.MRP.ListByOrder(order.ID)
	if err != nil {
		t.Fatalf("ListByOrder: %v", err)
	}
	if len(stored) != 1 {
		t.Errorf("stored plans = %d, want 1 (old set replaced)", len(stored))
	}
}

func TestGeneratePlanEmptyBOM(t *testing.T) {
	svc, _, db := setupMRP(t)

	testutil.SeedConfig(t, db, 1000, 6, 30, 3)
	horn := testutil.SeedHornType(t, db, "HORN-1", nil)

	orderDate := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	deadline := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	order := testutil.SeedOrder(t, db, "ORD-001", orderDate, deadline, map[string]int{horn.ID: 100})

	_, _, err := svc.GeneratePlan(order.ID, time.Now().UTC())
	if !errors.Is(err, planning.ErrEmptyDemand) {
		t.Fatalf("err = %v, want ErrEmptyDemand", err)
	}
}

func TestGeneratePlanConfigMissing(t *testing.T) {
	svc, _, db := setupMRP(t)

	comp := testutil.SeedComponent(t, db, "COMP-A", 0, 0, 0, 1, 7)
	horn := testutil.SeedHornType(t, db, "HORN-1", map[string]float64{comp.ID: 1})

	orderDate := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	deadline := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	order := testutil.SeedOrder(t, db, "ORD-001", orderDate, deadline, map[string]int{horn.ID: 100})

	_, _, err := svc.GeneratePlan(order.ID, time.Now().UTC())
	if !errors.Is(err, ErrConfigMissing) {
		t.Fatalf("err = %v, want ErrConfigMissing", err)
	}
}

func TestGeneratePlanCapacityExceeded(t *testing.T) {
	svc, repos, db := setupMRP(t)

	testutil.SeedConfig(t, db, 3000, 6, 30, 3)
	comp := testutil.SeedComponent(t, db, "COMP-A", 0, 0, 0, 1, 7)
	horn := testutil.SeedHornType(t, db, "HORN-1", map[string]float64{comp.ID: 1})

	orderDate := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	deadline := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	order := testutil.SeedOrder(t, db, "ORD-001", orderDate, deadline, map[string]int{horn.ID: 200000})

	_, _, err := svc.GeneratePlan(order.ID, time.Now().UTC())
	var capErr *planning.CapacityError
	if !errors.As(err, &capErr) {
		t.Fatalf("err = %v, want CapacityError", err)
	}
	if capErr.RequiredDays != 67 || capErr.AvailableDays != 12 {
		t.Errorf("remediation = %d/%d days, want 67/12", capErr.RequiredDays, capErr.AvailableDays)
	}

	// 不可行时不留任何计划
	plans, err := repos.MRP.ListByOrder(order.ID)
	if err != nil {
		t.Fatalf("ListByOrder: %v", err)
	}
	if len(plans) != 0 {
		t.Errorf("infeasible order must not persist plans, got %d", len(plans))
	}
}

func TestUpdateStatusReceipt(t *testing.T) {
	svc, repos, db := setupMRP(t)

	testutil.SeedConfig(t, db, 1000, 6, 30, 3)
	comp := testutil.SeedComponent(t, db, "COMP-A", 100, 150, 0, 2.5, 10)
	horn := testutil.SeedHornType(t, db, "HORN-1", map[string]float64{comp.ID: 2})

	orderDate := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	deadline := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	order := testutil.SeedOrder(t, db, "ORD-001", orderDate, deadline, map[string]int{horn.ID: 250})

	now := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	_, plans, err := svc.GeneratePlan(order.ID, now)
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}
	plan := plans[0]

	if _, err := svc.UpdateStatus(plan.ID, entity.MRPStatusOrdered); err != nil {
		t.Fatalf("planned → ordered: %v", err)
	}
	updated, err := svc.UpdateStatus(plan.ID, entity.MRPStatusReceived)
	if err != nil {
		t.Fatalf("ordered → received: %v", err)
	}
	if updated.Status != entity.MRPStatusReceived {
		t.Errorf("status = %s, want received", updated.Status)
	}

	// 到货量累加到库存：100 + 450
	got, err := repos.Component.GetByID(comp.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.CurrentInventory != 550 {
		t.Errorf("CurrentInventory = %v, want 550", got.CurrentInventory)
	}

	records, err := repos.Component.ListTransactions(comp.ID, 10)
	if err != nil {
		t.Fatalf("ListTransactions: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d transactions, want 1", len(records))
	}
	rec := records[0]
	if rec.TransactionType != entity.TxTypeReceipt || rec.Quantity != 450 || rec.BalanceAfter != 550 {
		t.Errorf("receipt = %s/%v/%v, want receipt/450/550", rec.TransactionType, rec.Quantity, rec.BalanceAfter)
	}
	if rec.Reference != "MRP-"+plan.ID {
		t.Errorf("Reference = %s, want MRP-%s", rec.Reference, plan.ID)
	}
}

func TestUpdateStatusRejectsBackward(t *testing.T) {
	svc, _, db := setupMRP(t)

	testutil.SeedConfig(t, db, 1000, 6, 30, 3)
	comp := testutil.SeedComponent(t, db, "COMP-A", 0, 0, 0, 1, 7)
	horn := testutil.SeedHornType(t, db, "HORN-1", map[string]float64{comp.ID: 1})

	orderDate := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	deadline := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	order := testutil.SeedOrder(t, db, "ORD-001", orderDate, deadline, map[string]int{horn.ID: 100})

	_, plans, err := svc.GeneratePlan(order.ID, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}
	plan := plans[0]

	if _, err := svc.UpdateStatus(plan.ID, "shipped"); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("unknown status: err = %v, want ErrInvalidStatus", err)
	}

	if _, err := svc.UpdateStatus(plan.ID, entity.MRPStatusReceived); err != nil {
		t.Fatalf("planned → received: %v", err)
	}

	// received是终态：回退和重复到货都要拒绝
	var transErr *InvalidTransitionError
	if _, err := svc.UpdateStatus(plan.ID, entity.MRPStatusOrdered); !errors.As(err, &transErr) {
		t.Errorf("received → ordered: err = %v, want InvalidTransitionError", err)
	}
	if _, err := svc.UpdateStatus(plan.ID, entity.MRPStatusReceived); !errors.As(err, &transErr) {
		t.Errorf("received → received: err = %v, want InvalidTransitionError", err)
	}

	// 重复到货被拒绝后库存只累加一次
	var got float64
	if err := db.Model(&entity.Component{}).Where("id = ?", comp.ID).
		Pluck("current_inventory", &got).Error; err != nil {
		t.Fatalf("read inventory: %v", err)
	}
	if got != 100 {
		t.Errorf("CurrentInventory = %v, want 100", got)
	}
}
