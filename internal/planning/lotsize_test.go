package planning

import (
	"math"
	"testing"
)

func TestLotSize(t *testing.T) {
	tests := []struct {
		name     string
		required float64
		onHand   float64
		moq      float64
		maxStock float64
		unitCost float64
		wantNet  float64
		wantQty  float64
		wantCost float64
	}{
		{"inventory covers demand", 100, 150, 50, 0, 2, 0, 0, 0},
		{"exact inventory", 100, 100, 50, 0, 2, 0, 0, 0},
		{"no moq orders net exactly", 100, 30, 0, 0, 2, 70, 70, 140},
		{"rounds up to moq multiple", 100, 30, 50, 0, 2, 70, 100, 200},
		{"net already a moq multiple", 100, 0, 50, 0, 1, 100, 100, 100},
		{"fractional net with moq", 10.5, 0, 4, 0, 1, 10.5, 12, 12},
		{"max stock caps order", 500, 100, 0, 400, 1, 400, 300, 300},
		{"negative headroom clamps to zero", 100, 600, 50, 500, 2, 0, 0, 0},
		{"negative headroom with net demand", 700, 600, 50, 500, 2, 100, 0, 0},
		{"zero max stock means unlimited", 1000, 0, 0, 0, 0.5, 1000, 1000, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LotSize(tt.required, tt.onHand, tt.moq, tt.maxStock, tt.unitCost)
			if got.NetRequirement != tt.wantNet {
				t.Errorf("net = %v, want %v", got.NetRequirement, tt.wantNet)
			}
			if got.OrderQuantity != tt.wantQty {
				t.Errorf("qty = %v, want %v", got.OrderQuantity, tt.wantQty)
			}
			if got.EstimatedCost != tt.wantCost {
				t.Errorf("cost = %v, want %v", got.EstimatedCost, tt.wantCost)
			}
		})
	}
}

func TestLotSizeMOQMultipleProperty(t *testing.T) {
	// MOQ>0且有净需求时，下单量必须是MOQ的非负整数倍
	moq := 25.0
	for required := 1.0; required <= 200; required += 13 {
		got := LotSize(required, 0, moq, 0, 1)
		if got.OrderQuantity < got.NetRequirement {
			t.Errorf("required=%v: qty %v below net %v", required, got.OrderQuantity, got.NetRequirement)
		}
		multiple := got.OrderQuantity / moq
		if multiple != math.Trunc(multiple) {
			t.Errorf("required=%v: qty %v not a multiple of MOQ %v", required, got.OrderQuantity, moq)
		}
	}
}

func TestLotSizeNeverExceedsHeadroom(t *testing.T) {
	maxStock := 300.0
	for onHand := 0.0; onHand <= 400; onHand += 50 {
		got := LotSize(1000, onHand, 40, maxStock, 1)
		headroom := maxStock - onHand
		if headroom < 0 {
			headroom = 0
		}
		if got.OrderQuantity > headroom {
			t.Errorf("onHand=%v: qty %v exceeds headroom %v", onHand, got.OrderQuantity, headroom)
		}
		if got.OrderQuantity < 0 {
			t.Errorf("onHand=%v: negative order quantity %v", onHand, got.OrderQuantity)
		}
	}
}
