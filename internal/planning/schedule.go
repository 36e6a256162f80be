package planning

import (
	"time"
)

// Schedule 单个零部件的下单排期
type Schedule struct {
	OrderDate        time.Time
	ExpectedDelivery time.Time
}

// ProductionStart 生产起始日 = 订单创建日 + 安全库存缓冲天数。
// 同一订单的所有零部件共用同一个生产起始日。
func ProductionStart(orderDate time.Time, safetyStockDays int) time.Time {
	return orderDate.AddDate(0, 0, safetyStockDays)
}

// ScheduleOrder 倒排下单日期：从生产起始日往前推 交货周期+安全缓冲 天。
// 推算出的日期已经过去时钳制到now，这是本计算中唯一的非确定输入，由调用方注入。
func ScheduleOrder(productionStart time.Time, safetyStockDays, leadTimeDays int, now time.Time) Schedule {
	orderDate := productionStart.AddDate(0, 0, -(leadTimeDays + safetyStockDays))
	if orderDate.Before(now) {
		orderDate = now
	}
	return Schedule{
		OrderDate:        orderDate,
		ExpectedDelivery: orderDate.AddDate(0, 0, leadTimeDays),
	}
}
