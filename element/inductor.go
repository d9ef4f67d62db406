package element

import (
	"circuitlab/mna"
	"circuitlab/types"
)

// 电感，DC分析下近似为短路，用大电导加盖
func init() {
	register(types.TypeInductor, Config{
		Pins: []string{"l1", "l2"},
		Stamp: func(s *mna.System, c *types.Component, vs int) {
			s.StampConductance(c.Node(0), c.Node(1), types.ShortConductance)
		},
		Current: func(s *mna.System, c *types.Component, vs int) float64 {
			return drop(s, c) * types.ShortConductance
		},
	})
}
