package element

import (
	"circuitlab/mna"
	"circuitlab/types"
)

// 二极管与LED，采用固定线性化正向电阻近似。
// 不对真实I-V曲线做Newton迭代，结果与编辑器的既有行为保持一致。
func init() {
	register(types.TypeDiode, Config{
		Pins: []string{"d1", "d2"},
		Stamp: func(s *mna.System, c *types.Component, vs int) {
			s.StampResistor(c.Node(0), c.Node(1), types.DiodeForwardResistance)
		},
		Current: func(s *mna.System, c *types.Component, vs int) float64 {
			return drop(s, c) / types.DiodeForwardResistance
		},
	})
	register(types.TypeLed, Config{
		Pins: []string{"d1", "d2"},
		Stamp: func(s *mna.System, c *types.Component, vs int) {
			s.StampResistor(c.Node(0), c.Node(1), types.LedForwardResistance)
		},
		Current: func(s *mna.System, c *types.Component, vs int) float64 {
			return drop(s, c) / types.LedForwardResistance
		},
	})
}
