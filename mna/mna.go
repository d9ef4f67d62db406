// Package mna 实现改进节点分析（Modified Nodal Analysis）的方程构建。
// 通过一系列加盖(Stamp)操作构建线性系统 A·x = z，
// 前 NumNodes 个未知量为节点电压，其余为电压源支路电流。
package mna

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"circuitlab/maths"
	"circuitlab/types"
)

// System MNA线性系统，矩阵行列按 节点数+电压源数 分配
type System struct {
	A                 *mat.Dense    // 求解矩阵A
	Z                 *mat.VecDense // 已知向量z
	X                 *mat.VecDense // 未知向量x (解)
	NumNodes          int           // 电路节点数量（不含地节点）
	NumVoltageSources int           // 独立电压源数量
}

// NewSystem 创建零初始化的MNA系统。
// 零维系统（电路中只有地节点）不分配矩阵，求解为空操作。
//
//	nodes: 电路节点数量（不含地节点）。
//	sources: 独立电压源数量。
func NewSystem(nodes, sources int) *System {
	s := &System{
		NumNodes:          nodes,
		NumVoltageSources: sources,
	}
	if n := s.Dim(); n > 0 {
		s.A = mat.NewDense(n, n, nil)
		s.Z = mat.NewVecDense(n, nil)
	}
	return s
}

// Dim 方程总数
func (s *System) Dim() int { return s.NumNodes + s.NumVoltageSources }

// sourceRow 第k个电压源的附加方程在节点编号空间中的位置
func (s *System) sourceRow(k int) types.NodeID {
	return types.NodeID(s.NumNodes + k + 1)
}

// ------------------------------ MNA矩阵操作 ------------------------------

// StampMatrix 将一个值加到矩阵A的(i,j)元素上。地节点索引将被忽略。
func (s *System) StampMatrix(i, j types.NodeID, value float64) {
	if s.A != nil && i > types.Gnd && j > types.Gnd {
		s.A.Set(i-1, j-1, s.A.At(i-1, j-1)+value)
	}
}

// StampRightSide 将一个值加到向量z的第i个元素上。地节点索引将被忽略。
func (s *System) StampRightSide(i types.NodeID, value float64) {
	if s.Z != nil && i > types.Gnd {
		s.Z.SetVec(i-1, s.Z.AtVec(i-1)+value)
	}
}

// StampRightSideSet 直接设置向量z的第i个元素的值。地节点索引将被忽略。
func (s *System) StampRightSideSet(i types.NodeID, value float64) {
	if s.Z != nil && i > types.Gnd {
		s.Z.SetVec(i-1, value)
	}
}

// ------------------------------ 无源元件加盖 ------------------------------

// StampConductance 为导纳元件添加MNA加盖，修改矩阵A的四个相关元素。
// 双向元件的结构对称体现在此：两个对角项加g，两个交叉项减g。
func (s *System) StampConductance(n1, n2 types.NodeID, g float64) {
	s.StampMatrix(n1, n1, g)
	s.StampMatrix(n2, n2, g)
	s.StampMatrix(n1, n2, -g)
	s.StampMatrix(n2, n1, -g)
}

// StampResistor 以电阻值添加加盖，非正电阻不产生贡献
func (s *System) StampResistor(n1, n2 types.NodeID, r float64) {
	if r > 0 {
		s.StampConductance(n1, n2, 1.0/r)
	}
}

// ------------------------------ 独立源加盖 ------------------------------

// StampCurrentSource 为独立电流源添加MNA加盖。
// 电流自n1流出、流入n2，只修改右端向量。
func (s *System) StampCurrentSource(n1, n2 types.NodeID, i float64) {
	s.StampRightSide(n1, -i)
	s.StampRightSide(n2, i)
}

// StampVoltageSource 为第k个独立电压源添加MNA加盖。
// 引入一个新的电流未知量，并修改矩阵A与向量z建立电压约束方程。
func (s *System) StampVoltageSource(n1, n2 types.NodeID, k int, v float64) {
	if k < 0 || k >= s.NumVoltageSources {
		return
	}
	vsRow := s.sourceRow(k)
	// KCL方程: I(vs) 对 n1/n2 节点的贡献
	s.StampMatrix(n1, vsRow, 1)
	s.StampMatrix(n2, vsRow, -1)
	// 电压源约束方程: V(n1) - V(n2) = v
	s.StampMatrix(vsRow, n1, 1)
	s.StampMatrix(vsRow, n2, -1)
	s.StampRightSideSet(vsRow, v)
}

// ------------------------------ 求解与读取 ------------------------------

// Solve 求解线性系统并保存解向量。
// 矩阵奇异时返回 maths.ErrSingular，解向量保持为空。
// 零维系统无未知量，直接视为已解。
func (s *System) Solve() error {
	if s.Dim() == 0 {
		return nil
	}
	x, err := maths.SolveGauss(s.A, s.Z, types.PivotTolerance)
	if err != nil {
		return err
	}
	s.X = x
	return nil
}

// GetNodeVoltage 从解向量中获取指定节点的电压，地节点恒为0
func (s *System) GetNodeVoltage(n types.NodeID) float64 {
	if s.X == nil || n <= types.Gnd || n > s.NumNodes {
		return 0
	}
	return s.X.AtVec(n - 1)
}

// GetVoltageSourceCurrent 从解向量中获取流经第k个电压源的电流
func (s *System) GetVoltageSourceCurrent(k int) float64 {
	if s.X == nil || k < 0 || k >= s.NumVoltageSources {
		return 0
	}
	return s.X.AtVec(s.NumNodes + k)
}

// String 返回MNA系统内部状态的字符串表示
func (s *System) String() string {
	if s.Dim() == 0 {
		return "MNA Matrix (0): empty"
	}
	return fmt.Sprintf("MNA Matrix (%d):\n%v\nZ vector:\n%v",
		s.Dim(), mat.Formatted(s.A), mat.Formatted(s.Z))
}
