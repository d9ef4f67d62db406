package element

import (
	"circuitlab/mna"
	"circuitlab/types"
)

// 接地，单引脚，定义节点0，不参与加盖
func init() {
	register(types.TypeGround, Config{
		Pins:  []string{"gnd"},
		Stamp: nil,
		Current: func(s *mna.System, c *types.Component, vs int) float64 {
			return 0
		},
	})
}
