package element

import (
	"circuitlab/mna"
	"circuitlab/types"
)

// 电容，DC分析下为开路，不产生任何加盖
func init() {
	register(types.TypeCapacitor, Config{
		Pins:  []string{"c1", "c2"},
		Stamp: nil,
		Current: func(s *mna.System, c *types.Component, vs int) float64 {
			return 0
		},
	})
}
