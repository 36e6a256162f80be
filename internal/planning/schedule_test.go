package planning

import (
	"testing"
	"time"
)

func TestScheduleOrderBackdates(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	orderDate := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	start := ProductionStart(orderDate, 3) // 2026-02-04

	sched := ScheduleOrder(start, 3, 10, now)

	wantOrder := time.Date(2026, 1, 22, 0, 0, 0, 0, time.UTC) // start - (10+3)
	if !sched.OrderDate.Equal(wantOrder) {
		t.Errorf("order date = %v, want %v", sched.OrderDate, wantOrder)
	}
	wantDelivery := wantOrder.AddDate(0, 0, 10)
	if !sched.ExpectedDelivery.Equal(wantDelivery) {
		t.Errorf("delivery = %v, want %v", sched.ExpectedDelivery, wantDelivery)
	}
}

func TestScheduleOrderClampsPastDateToNow(t *testing.T) {
	now := time.Date(2026, 1, 30, 12, 0, 0, 0, time.UTC)
	orderDate := time.Date(2026, 1, 28, 0, 0, 0, 0, time.UTC)
	start := ProductionStart(orderDate, 2)

	// 交货周期很长，倒推出的下单日早于now，应钳制
	sched := ScheduleOrder(start, 2, 30, now)

	if !sched.OrderDate.Equal(now) {
		t.Errorf("order date = %v, want clamped to %v", sched.OrderDate, now)
	}
	wantDelivery := now.AddDate(0, 0, 30)
	if !sched.ExpectedDelivery.Equal(wantDelivery) {
		t.Errorf("delivery = %v, want %v", sched.ExpectedDelivery, wantDelivery)
	}
}

func TestScheduleOrderPerComponentLeadTimes(t *testing.T) {
	// 不同交货周期的零部件共用生产起始日，各自得到不同下单日
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	start := ProductionStart(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), 3)

	short := ScheduleOrder(start, 3, 5, now)
	long := ScheduleOrder(start, 3, 20, now)

	if !long.OrderDate.Before(short.OrderDate) {
		t.Errorf("longer lead time should order earlier: long=%v short=%v", long.OrderDate, short.OrderDate)
	}
}
