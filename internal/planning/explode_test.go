package planning

import (
	"testing"
)

func TestExplodeAccumulatesAcrossHornTypes(t *testing.T) {
	// 型号A每只用2个X，型号B每只用1个X：100只A + 50只B => X需求250
	lines := []LineDemand{
		{Quantity: 100, BOM: []BOMLine{{ComponentID: "comp-x", QuantityPerHorn: 2}}},
		{Quantity: 50, BOM: []BOMLine{{ComponentID: "comp-x", QuantityPerHorn: 1}}},
	}

	reqs := Explode(lines)
	if got := reqs["comp-x"]; got != 250 {
		t.Errorf("requirement for comp-x = %v, want 250", got)
	}
	if len(reqs) != 1 {
		t.Errorf("expected 1 component, got %d", len(reqs))
	}
}

func TestExplodeMultipleComponents(t *testing.T) {
	lines := []LineDemand{
		{Quantity: 10, BOM: []BOMLine{
			{ComponentID: "diaphragm", QuantityPerHorn: 1},
			{ComponentID: "screw", QuantityPerHorn: 4.5},
		}},
		{Quantity: 3, BOM: []BOMLine{
			{ComponentID: "screw", QuantityPerHorn: 2},
		}},
	}

	reqs := Explode(lines)
	if got := reqs["diaphragm"]; got != 10 {
		t.Errorf("diaphragm = %v, want 10", got)
	}
	if got := reqs["screw"]; got != 51 {
		t.Errorf("screw = %v, want 51", got)
	}
}

func TestExplodeSkipsEmptyBOM(t *testing.T) {
	// 没有BOM的型号贡献为零，不报错；整体为空由上层判定
	lines := []LineDemand{
		{Quantity: 100, BOM: nil},
	}

	reqs := Explode(lines)
	if len(reqs) != 0 {
		t.Errorf("expected empty requirements, got %v", reqs)
	}
}
