package mna

import (
	"testing"

	"circuitlab/types"
)

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func TestStampConductance(t *testing.T) {
	s := NewSystem(2, 0)
	s.StampConductance(1, 2, 0.5)
	// 双向元件的对称四元素加盖
	if s.A.At(0, 0) != 0.5 || s.A.At(1, 1) != 0.5 {
		t.Errorf("对角项不正确: %v %v", s.A.At(0, 0), s.A.At(1, 1))
	}
	if s.A.At(0, 1) != -0.5 || s.A.At(1, 0) != -0.5 {
		t.Errorf("交叉项不正确: %v %v", s.A.At(0, 1), s.A.At(1, 0))
	}
}

func TestStampGroundDropped(t *testing.T) {
	// 接地节点的贡献被整体丢弃，只剩非地端的对角项
	s := NewSystem(1, 0)
	s.StampConductance(1, types.Gnd, 0.1)
	if s.A.At(0, 0) != 0.1 {
		t.Errorf("对角项不正确: %v", s.A.At(0, 0))
	}
	s.StampRightSide(types.Gnd, 3)
	if s.Z.AtVec(0) != 0 {
		t.Errorf("地节点的右端贡献应被忽略: %v", s.Z.AtVec(0))
	}
}

func TestStampResistorZeroGuard(t *testing.T) {
	s := NewSystem(2, 0)
	s.StampResistor(1, 2, 0)
	if s.A.At(0, 0) != 0 {
		t.Errorf("非正电阻不应产生贡献: %v", s.A.At(0, 0))
	}
}

func TestStampVoltageSource(t *testing.T) {
	s := NewSystem(2, 1)
	s.StampVoltageSource(1, 2, 0, 9)
	// KCL列与约束行
	if s.A.At(0, 2) != 1 || s.A.At(1, 2) != -1 {
		t.Errorf("电流未知量列不正确: %v %v", s.A.At(0, 2), s.A.At(1, 2))
	}
	if s.A.At(2, 0) != 1 || s.A.At(2, 1) != -1 {
		t.Errorf("约束行不正确: %v %v", s.A.At(2, 0), s.A.At(2, 1))
	}
	if s.Z.AtVec(2) != 9 {
		t.Errorf("约束右端不正确: %v", s.Z.AtVec(2))
	}
	// 越界索引被忽略
	s.StampVoltageSource(1, 2, 5, 9)
	s.StampVoltageSource(1, 2, -1, 9)
}

func TestSystemSolve(t *testing.T) {
	// 5V源接节点1，节点1经10Ω对地
	s := NewSystem(1, 1)
	s.StampResistor(1, types.Gnd, 10)
	s.StampVoltageSource(1, types.Gnd, 0, 5)
	if err := s.Solve(); err != nil {
		t.Fatalf("求解失败: %v", err)
	}
	if abs(s.GetNodeVoltage(1)-5) > 1e-9 {
		t.Errorf("节点电压不正确: %v", s.GetNodeVoltage(1))
	}
	if abs(s.GetVoltageSourceCurrent(0)+0.5) > 1e-9 {
		t.Errorf("电压源电流不正确: %v", s.GetVoltageSourceCurrent(0))
	}
	// 地节点与越界查询返回0
	if s.GetNodeVoltage(types.Gnd) != 0 || s.GetNodeVoltage(9) != 0 {
		t.Error("无效节点电压应为0")
	}
}

func TestEmptySystem(t *testing.T) {
	// 零维系统：电路只含地节点时无未知量，求解为空操作
	s := NewSystem(0, 0)
	s.StampResistor(types.Gnd, types.Gnd, 100)
	s.StampCurrentSource(types.Gnd, types.Gnd, 0.1)
	if err := s.Solve(); err != nil {
		t.Fatalf("零维系统求解不应失败: %v", err)
	}
	if s.GetNodeVoltage(types.Gnd) != 0 || s.GetNodeVoltage(1) != 0 {
		t.Error("零维系统所有节点电压应为0")
	}
	if s.GetVoltageSourceCurrent(0) != 0 {
		t.Error("零维系统电压源电流应为0")
	}
	if s.String() == "" {
		t.Error("零维系统应有字符串表示")
	}
}

func TestStampCurrentSource(t *testing.T) {
	// 0.1A电流源从节点1抽出、注入节点2
	s := NewSystem(2, 0)
	s.StampCurrentSource(1, 2, 0.1)
	if s.Z.AtVec(0) != -0.1 || s.Z.AtVec(1) != 0.1 {
		t.Errorf("电流源右端不正确: %v %v", s.Z.AtVec(0), s.Z.AtVec(1))
	}
}
