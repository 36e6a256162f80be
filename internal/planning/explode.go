package planning

// BOMLine 型号BOM中的一行：单只用量
type BOMLine struct {
	ComponentID     string
	QuantityPerHorn float64
}

// LineDemand 一条订购行：订购数量和所订型号的BOM
type LineDemand struct {
	Quantity int
	BOM      []BOMLine
}

// Explode BOM展开：把订购行需求汇总为每个零部件的总需求量。
// 同一零部件被多个型号引用时需求累加；没有BOM的型号贡献为零，直接跳过。
func Explode(lines []LineDemand) map[string]float64 {
	requirements := make(map[string]float64)
	for _, line := range lines {
		for _, bom := range line.BOM {
			requirements[bom.ComponentID] += float64(line.Quantity) * bom.QuantityPerHorn
		}
	}
	return requirements
}
