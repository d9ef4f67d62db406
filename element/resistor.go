package element

import (
	"circuitlab/mna"
	"circuitlab/types"
)

// 电阻
func init() {
	register(types.TypeResistor, Config{
		Pins: []string{"r1", "r2"},
		Stamp: func(s *mna.System, c *types.Component, vs int) {
			s.StampResistor(c.Node(0), c.Node(1), c.Properties.Get("resistance", types.DefaultResistance))
		},
		Current: func(s *mna.System, c *types.Component, vs int) float64 {
			r := c.Properties.Get("resistance", types.DefaultResistance)
			if r <= 0 {
				return 0
			}
			return drop(s, c) / r
		},
	})
}
