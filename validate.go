package circuitlab

import (
	"fmt"
	"math"

	"circuitlab/graph"
	"circuitlab/mna"
	"circuitlab/types"
)

// validate 对已求解的结果执行工程合理性检查。
// 校验只追加诊断记录，从不中断求解，也不改变 Success 标记；
// Errors 中的记录表示结果可疑，但结果本身仍然完整返回。
func validate(net *graph.Network, sys *mna.System, res *Result) {
	for _, c := range net.Components {
		switch c.Type {
		case types.TypeResistor:
			checkPowerRating(c, res)
		case types.TypeLed:
			checkForwardVoltage(c, sys, res)
		}
		checkCurrent(c, res)
	}
}

// checkPowerRating 电阻耗散功率超过额定功率时告警
func checkPowerRating(c *types.Component, res *Result) {
	rating := c.Properties.Get("power", types.DefaultPowerRating)
	power, ok := res.Powers[c.ID]
	if !ok || rating <= 0 {
		return
	}
	if power > rating {
		res.Warnings = append(res.Warnings, types.Diagnostic{
			Component: c.ID,
			Kind:      types.DiagPowerRating,
			Message:   fmt.Sprintf("dissipates %.3fW, exceeds %.3fW rating", power, rating),
		})
	}
}

// checkForwardVoltage LED两端电压低于导通电压时告警
func checkForwardVoltage(c *types.Component, sys *mna.System, res *Result) {
	if !c.Resolved(2) {
		return
	}
	v := sys.GetNodeVoltage(c.Node(0)) - sys.GetNodeVoltage(c.Node(1))
	if math.Abs(v) < types.LedForwardVoltage {
		res.Warnings = append(res.Warnings, types.Diagnostic{
			Component: c.ID,
			Kind:      types.DiagUnderVoltage,
			Message:   fmt.Sprintf("forward voltage %.2fV below %.2fV threshold", v, types.LedForwardVoltage),
		})
	}
}

// checkCurrent 电流量级启发式：超过告警阈值记告警，超过短路阈值记错误
func checkCurrent(c *types.Component, res *Result) {
	i, ok := res.Currents[c.ID]
	if !ok {
		return
	}
	switch {
	case math.Abs(i) > types.ShortCircuitThreshold:
		res.Errors = append(res.Errors, types.Diagnostic{
			Component: c.ID,
			Kind:      types.DiagShortCircuit,
			Message:   fmt.Sprintf("current %.1fA suggests a short circuit", i),
		})
	case math.Abs(i) > types.HighCurrentThreshold:
		res.Warnings = append(res.Warnings, types.Diagnostic{
			Component: c.ID,
			Kind:      types.DiagHighCurrent,
			Message:   fmt.Sprintf("current %.1fA is unusually high", i),
		})
	}
}
