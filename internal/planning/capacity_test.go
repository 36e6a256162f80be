package planning

import (
	"errors"
	"testing"
)

func TestCheckCapacityWithinLimit(t *testing.T) {
	daily, err := CheckCapacity(1000, 10, 150)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if daily != 100 {
		t.Errorf("required daily = %d, want 100", daily)
	}
}

func TestCheckCapacityRoundsUp(t *testing.T) {
	daily, err := CheckCapacity(1001, 10, 150)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if daily != 101 {
		t.Errorf("required daily = %d, want 101", daily)
	}
}

func TestCheckCapacityExceeded(t *testing.T) {
	// 20万只、50个工作日、日产能3000：日需求4000，超产能，需67天
	_, err := CheckCapacity(200000, 50, 3000)

	var capErr *CapacityError
	if !errors.As(err, &capErr) {
		t.Fatalf("expected *CapacityError, got %v", err)
	}
	if capErr.RequiredDaily != 4000 {
		t.Errorf("required daily = %d, want 4000", capErr.RequiredDaily)
	}
	if capErr.RequiredDays != 67 {
		t.Errorf("required days = %d, want 67", capErr.RequiredDays)
	}
	if capErr.AvailableDays != 50 {
		t.Errorf("available days = %d, want 50", capErr.AvailableDays)
	}
}

func TestCheckCapacityInfeasibleSchedule(t *testing.T) {
	for _, days := range []int{0, -3} {
		_, err := CheckCapacity(100, days, 3000)
		var schedErr *ScheduleError
		if !errors.As(err, &schedErr) {
			t.Fatalf("workingDays=%d: expected *ScheduleError, got %v", days, err)
		}
		if schedErr.WorkingDays != days {
			t.Errorf("WorkingDays = %d, want %d", schedErr.WorkingDays, days)
		}
	}
}
