package planning

import (
	"testing"
	"time"
)

func TestWorkingDays(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		days    int
		perWeek int
		want    int
	}{
		{"one full week at six per week", 7, 6, 6},
		{"partial week below limit", 3, 6, 3},
		{"week and a half at five per week", 10, 5, 8}, // 1*5 + min(3,5)
		{"two full weeks", 14, 5, 10},
		{"remainder capped at per-week", 13, 5, 10}, // 1*5 + min(6,5)
		{"seven day week counts every day", 10, 7, 10},
		{"single working day per week", 21, 1, 3},
		{"zero interval", 0, 6, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			end := start.AddDate(0, 0, tt.days)
			got := WorkingDays(start, end, tt.perWeek)
			if got != tt.want {
				t.Errorf("WorkingDays(+%dd, W=%d) = %d, want %d", tt.days, tt.perWeek, got, tt.want)
			}
		})
	}
}

func TestWorkingDaysNegativeInterval(t *testing.T) {
	start := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -5)

	if got := WorkingDays(start, end, 6); got > 0 {
		t.Errorf("WorkingDays over negative interval = %d, want <= 0", got)
	}
}

func TestWorkingDaysTruncatesPartialDay(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	// 6天23小时只算6个整天
	end := start.AddDate(0, 0, 7).Add(-time.Hour)

	if got := WorkingDays(start, end, 6); got != 6 {
		t.Errorf("WorkingDays(6d23h, W=6) = %d, want 6", got)
	}
}
