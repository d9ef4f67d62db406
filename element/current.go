package element

import (
	"circuitlab/mna"
	"circuitlab/types"
)

// 直流电流源
func init() {
	register(types.TypeCurrentSource, Config{
		Pins: []string{"i+", "i-"},
		Stamp: func(s *mna.System, c *types.Component, vs int) {
			s.StampCurrentSource(c.Node(0), c.Node(1), c.Properties.Get("current", types.DefaultCurrent))
		},
		Current: func(s *mna.System, c *types.Component, vs int) float64 {
			return c.Properties.Get("current", types.DefaultCurrent)
		},
	})
}
