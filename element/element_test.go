package element

import (
	"testing"

	"circuitlab/mna"
	"circuitlab/types"
)

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func TestRegistryComplete(t *testing.T) {
	for _, tt := range []types.ComponentType{
		types.TypeResistor, types.TypeVoltageSource, types.TypeCurrentSource,
		types.TypeCapacitor, types.TypeInductor, types.TypeDiode,
		types.TypeLed, types.TypeGround,
	} {
		config, ok := Lookup(tt)
		if !ok {
			t.Errorf("类型未注册: %s", tt)
			continue
		}
		if config.Current == nil {
			t.Errorf("类型缺少电流关系: %s", tt)
		}
	}
	if _, ok := Lookup(types.TypeUnknown); ok {
		t.Error("未知类型不应命中注册表")
	}
}

func TestOpenAndGroundNoStamp(t *testing.T) {
	// 电容与接地在DC下不产生加盖
	for _, tt := range []types.ComponentType{types.TypeCapacitor, types.TypeGround} {
		config, _ := Lookup(tt)
		if config.Stamp != nil {
			t.Errorf("类型不应有加盖贡献: %s", tt)
		}
	}
}

func TestResistorStampAndCurrent(t *testing.T) {
	s := mna.NewSystem(1, 0)
	c := types.NewComponent("R1", types.TypeResistor, "r1", "r2").SetProperty("resistance", 100)
	c.Nodes = []types.NodeID{1, types.Gnd}
	config, _ := Lookup(types.TypeResistor)
	config.Stamp(s, c, -1)
	if abs(s.A.At(0, 0)-0.01) > 1e-12 {
		t.Errorf("电阻加盖不正确: %v", s.A.At(0, 0))
	}
	s.StampRightSide(1, 0.05) // 等效注入得到 v=5
	if err := s.Solve(); err != nil {
		t.Fatalf("求解失败: %v", err)
	}
	if i := config.Current(s, c, -1); abs(i-0.05) > 1e-9 {
		t.Errorf("电阻电流不正确: 期望 0.05, 实际 %v", i)
	}
}

func TestDiodeLinearModel(t *testing.T) {
	// 二极管按固定正向电阻线性化
	config, _ := Lookup(types.TypeDiode)
	s := mna.NewSystem(1, 0)
	c := types.NewComponent("D1", types.TypeDiode, "d1", "d2")
	c.Nodes = []types.NodeID{1, types.Gnd}
	config.Stamp(s, c, -1)
	if abs(s.A.At(0, 0)-1.0/types.DiodeForwardResistance) > 1e-12 {
		t.Errorf("二极管加盖不正确: %v", s.A.At(0, 0))
	}
}

func TestDefaultFallback(t *testing.T) {
	// 缺失属性回退到类型缺省值
	s := mna.NewSystem(1, 0)
	c := types.NewComponent("R1", types.TypeResistor, "r1", "r2")
	c.Nodes = []types.NodeID{1, types.Gnd}
	config, _ := Lookup(types.TypeResistor)
	config.Stamp(s, c, -1)
	if abs(s.A.At(0, 0)-1.0/types.DefaultResistance) > 1e-12 {
		t.Errorf("缺省电阻未生效: %v", s.A.At(0, 0))
	}
}
