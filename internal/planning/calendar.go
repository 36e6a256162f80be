package planning

import (
	"time"
)

// WorkingDays 计算 [start, end) 区间内的工作日数。
//
// 按整周折算：整周数 × 每周工作日 + min(余数天, 每周工作日)。
// 这是一个近似算法，不关心区间从星期几开始，余数天全部按可工作处理。
// 结果 <= 0 表示排程不可行，由调用方判定。
func WorkingDays(start, end time.Time, perWeek int) int {
	totalDays := int(end.Sub(start).Hours() / 24) // 截断取整天
	weeks := totalDays / 7
	remainder := totalDays % 7
	working := weeks * perWeek
	if remainder < perWeek {
		working += remainder
	} else {
		working += perWeek
	}
	return working
}
