// Package circuitlab 是原理图编辑器的电路内核：
// 把编辑器给出的元件列表与导线列表解析为节点网络，
// 构建并求解MNA线性系统，推导各元件的电流、功率与工程诊断。
// 画布渲染、拖拽撤销、文档持久化等UI管线均在本模块之外。
package circuitlab

import (
	"errors"
	"fmt"
	"math"

	"circuitlab/element"
	"circuitlab/graph"
	"circuitlab/maths"
	"circuitlab/mna"
	"circuitlab/types"
)

// 分析模式常量定义
const (
	AnalysisDC        = "dc"        // 直流工作点分析
	AnalysisAC        = "ac"        // 交流小信号分析（未实现）
	AnalysisTransient = "transient" // 瞬态时域分析（未实现）
)

// Result 求解结果。
// 求解失败时 Success=false 且映射为空；
// 校验诊断只追加到 Warnings/Errors，不影响 Success。
type Result struct {
	Success  bool                          `json:"success"`
	Error    string                        `json:"error,omitempty"`
	Voltages map[types.NodeID]float64      `json:"voltages"` // 节点电压，地节点隐含为0
	Currents map[types.ComponentID]float64 `json:"currents"` // 元件电流
	Powers   map[types.ComponentID]float64 `json:"powers"`   // 元件功率
	Warnings []types.Diagnostic            `json:"warnings"`
	Errors   []types.Diagnostic            `json:"errors"`
}

// failure 构造失败结果
func failure(msg string) *Result {
	return &Result{
		Success:  false,
		Error:    msg,
		Voltages: map[types.NodeID]float64{},
		Currents: map[types.ComponentID]float64{},
		Powers:   map[types.ComponentID]float64{},
	}
}

// Simulate 电路求解入口。
// 拓扑与线性系统每次调用重新构建，相同输入必然得到相同结果，
// 互不相关的电路可以并发求解。
// 所有失败都以结果对象返回，不跨越边界抛出。
func Simulate(components []*types.Component, wires []types.Wire, analysis string) *Result {
	switch analysis {
	case AnalysisDC:
		return simulateDC(components, wires)
	case AnalysisAC, AnalysisTransient:
		return failure(fmt.Sprintf("%s analysis not yet implemented", analysis))
	default:
		return failure("Unknown analysis type")
	}
}

// simulateDC 直流工作点分析：拓扑解析、矩阵组装、求解、结果推导、校验
func simulateDC(components []*types.Component, wires []types.Wire) *Result {
	net, err := graph.Build(components, wires)
	if err != nil {
		return failure(err.Error())
	}
	sys := assemble(net)
	if err := sys.Solve(); err != nil {
		if errors.Is(err, maths.ErrSingular) {
			return failure("Singular matrix - cannot solve circuit")
		}
		return failure(err.Error())
	}
	res := extract(net, sys)
	validate(net, sys, res)
	return res
}

// assemble 把每个元件的线性贡献加盖到MNA系统中。
// 未解析满两个节点的元件被静默跳过，与拓扑阶段的宽容策略一致。
func assemble(net *graph.Network) *mna.System {
	sys := mna.NewSystem(net.NumNodes, net.NumVoltageSources)
	for _, c := range net.Components {
		config, ok := element.Lookup(c.Type)
		if !ok || config.Stamp == nil {
			continue
		}
		if !c.Resolved(2) {
			continue // 接线不完整
		}
		config.Stamp(sys, c, sourceIndex(net, c))
	}
	return sys
}

// sourceIndex 元件的电压源索引，非电压源为-1
func sourceIndex(net *graph.Network, c *types.Component) int {
	if k, ok := net.SourceIndex[c.ID]; ok {
		return k
	}
	return -1
}

// extract 把解向量映射回节点电压，并按类型关系推导元件电流与功率
func extract(net *graph.Network, sys *mna.System) *Result {
	res := &Result{
		Success:  true,
		Voltages: make(map[types.NodeID]float64, net.NumNodes),
		Currents: map[types.ComponentID]float64{},
		Powers:   map[types.ComponentID]float64{},
	}
	for n := 1; n <= net.NumNodes; n++ {
		v := sys.GetNodeVoltage(n)
		if math.Abs(v) < types.VoltageTolerance {
			v = 0 // 消去接近短路的节点上的数值噪声
		}
		res.Voltages[n] = v
	}
	for _, c := range net.Components {
		config, ok := element.Lookup(c.Type)
		if !ok || c.Type == types.TypeGround {
			continue
		}
		i := config.Current(sys, c, sourceIndex(net, c))
		v := sys.GetNodeVoltage(c.Node(0)) - sys.GetNodeVoltage(c.Node(1))
		res.Currents[c.ID] = i
		res.Powers[c.ID] = v * i
	}
	return res
}
