package planning

// ceilDiv 正整数向上取整除法
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// CheckCapacity 产能可行性检查：返回需求日产量。
// 工作日不足返回 *ScheduleError；日产量超过产能返回 *CapacityError，
// 两者都发生在任何计划落库之前。
func CheckCapacity(totalQty, workingDays, dailyCapacity int) (int, error) {
	if workingDays <= 0 {
		return 0, &ScheduleError{WorkingDays: workingDays}
	}

	requiredDaily := ceilDiv(totalQty, workingDays)
	if requiredDaily > dailyCapacity {
		return requiredDaily, &CapacityError{
			RequiredDaily: requiredDaily,
			Capacity:      dailyCapacity,
			RequiredDays:  ceilDiv(totalQty, dailyCapacity),
			AvailableDays: workingDays,
		}
	}
	return requiredDaily, nil
}
