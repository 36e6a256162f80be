package planning

import (
	"math"
)

// LotDecision 单个零部件的净需求和下单决策
type LotDecision struct {
	NetRequirement float64
	OrderQuantity  float64
	EstimatedCost  float64
}

// LotSize 净需求与批量计算：
// 净需求 = max(0, 总需求 - 现有库存)；
// 有MOQ时下单量向上取整到MOQ的整数倍；
// 设置了最大库存时下单量不超过剩余库容（库存已超上限时下单量为0，不会下负单）。
func LotSize(required, onHand, moq, maxStock, unitCost float64) LotDecision {
	net := required - onHand
	if net < 0 {
		net = 0
	}

	var qty float64
	switch {
	case net == 0:
		qty = 0
	case moq > 0:
		qty = math.Ceil(net/moq) * moq
	default:
		qty = net
	}

	if maxStock > 0 {
		headroom := maxStock - onHand
		if qty > headroom {
			qty = headroom
		}
		if qty < 0 {
			qty = 0
		}
	}

	return LotDecision{
		NetRequirement: net,
		OrderQuantity:  qty,
		EstimatedCost:  qty * unitCost,
	}
}
