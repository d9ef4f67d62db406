package circuitlab

import (
	"math"

	"circuitlab/types"
)

// 元件显示状态常量定义
const (
	StatusNormal   = "normal"   // 正常
	StatusWarning  = "warning"  // 接近额定值
	StatusOverload = "overload" // 超过额定值
	StatusOn       = "on"       // LED点亮
	StatusOff      = "off"      // LED熄灭
)

// ComponentState 元件的可视化状态，编辑器据此渲染过载高亮与LED亮度
type ComponentState struct {
	Voltage    float64 `json:"voltage"`              // 两端电压
	Current    float64 `json:"current"`              // 支路电流
	Power      float64 `json:"power"`                // 功率
	Status     string  `json:"status"`               // 状态标记
	Brightness float64 `json:"brightness,omitempty"` // LED亮度百分比
}

// WireState 导线的可视化状态
type WireState struct {
	Current   float64 `json:"current"`   // 导线电流，取自起点元件
	Thickness float64 `json:"thickness"` // 显示线宽
	Color     string  `json:"color"`     // 颜色分级
}

// ComponentStates 由求解结果推导每个元件的可视化状态
func ComponentStates(components []*types.Component, res *Result) map[types.ComponentID]ComponentState {
	states := make(map[types.ComponentID]ComponentState, len(components))
	for _, c := range components {
		v := componentVoltage(c, res)
		i := res.Currents[c.ID]
		state := ComponentState{
			Voltage: v,
			Current: i,
			Power:   res.Powers[c.ID],
			Status:  StatusNormal,
		}
		switch c.Type {
		case types.TypeResistor:
			rating := c.Properties.Get("power", types.DefaultPowerRating)
			switch {
			case state.Power > rating:
				state.Status = StatusOverload
			case state.Power > rating*0.8:
				state.Status = StatusWarning
			}
		case types.TypeLed:
			if i > 0.001 {
				state.Brightness = math.Min(100, i/types.LedNominalCurrent*100)
				state.Status = StatusOn
			} else {
				state.Status = StatusOff
			}
		}
		states[c.ID] = state
	}
	return states
}

// WireStates 由求解结果推导每条导线的可视化状态，顺序与输入导线一致
func WireStates(wires []types.Wire, res *Result) []WireState {
	states := make([]WireState, len(wires))
	for idx, w := range wires {
		i := res.Currents[w.From.Component]
		state := WireState{
			Current:   i,
			Thickness: 2 + math.Min(4, math.Abs(i)*10),
			Color:     StatusNormal,
		}
		if math.Abs(i) >= 0.5 {
			state.Color = "high"
		}
		states[idx] = state
	}
	return states
}

// componentVoltage 元件两端电压，由结果中的节点电压推导，地节点为0
func componentVoltage(c *types.Component, res *Result) float64 {
	if len(c.Nodes) < 2 {
		return 0
	}
	return res.Voltages[c.Nodes[0]] - res.Voltages[c.Nodes[1]]
}
