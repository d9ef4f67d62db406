package element

import (
	"circuitlab/mna"
	"circuitlab/types"
)

// 直流电压源（battery / voltage_dc）
func init() {
	register(types.TypeVoltageSource, Config{
		Pins: []string{"v+", "v-"},
		Stamp: func(s *mna.System, c *types.Component, vs int) {
			s.StampVoltageSource(c.Node(0), c.Node(1), vs, c.Properties.Get("voltage", types.DefaultVoltage))
		},
		// 电压源电流直接从解向量的附加方程行中读取
		Current: func(s *mna.System, c *types.Component, vs int) float64 {
			return s.GetVoltageSourceCurrent(vs)
		},
	})
}
