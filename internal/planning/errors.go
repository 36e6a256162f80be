package planning

import (
	"errors"
	"fmt"
)

// ErrEmptyDemand 订单内所有型号都没有BOM行，无法展开需求
var ErrEmptyDemand = errors.New("订单中没有配置了BOM的型号")

// ScheduleError 从下单日到交期之间没有可用工作日
type ScheduleError struct {
	WorkingDays int
}

func (e *ScheduleError) Error() string {
	return fmt.Sprintf("交期不可行: 可用工作日 %d <= 0", e.WorkingDays)
}

// CapacityError 需求日产量超过配置产能。
// 携带重新协商交期所需的数字：按产能生产需要的天数和当前可用天数。
type CapacityError struct {
	RequiredDaily int // 需求日产量
	Capacity      int // 配置日产能
	RequiredDays  int // 按产能需要的工作日数
	AvailableDays int // 当前可用工作日数
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("需求日产量(%d)超过产能(%d): 需要%d个工作日, 可用%d个",
		e.RequiredDaily, e.Capacity, e.RequiredDays, e.AvailableDays)
}
