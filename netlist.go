package circuitlab

import (
	"bufio"
	"fmt"
	"io"

	"circuitlab/graph"
	"circuitlab/types"
)

// netlistPrefix SPICE元件前缀映射
var netlistPrefix = map[types.ComponentType]string{
	types.TypeResistor:      "R",
	types.TypeVoltageSource: "V",
	types.TypeCurrentSource: "I",
	types.TypeCapacitor:     "C",
	types.TypeInductor:      "L",
	types.TypeDiode:         "D",
	types.TypeLed:           "D",
}

// netlistValue 各类型写入网表的主属性
func netlistValue(c *types.Component) float64 {
	switch c.Type {
	case types.TypeResistor:
		return c.Properties.Get("resistance", types.DefaultResistance)
	case types.TypeVoltageSource:
		return c.Properties.Get("voltage", types.DefaultVoltage)
	case types.TypeCurrentSource:
		return c.Properties.Get("current", types.DefaultCurrent)
	case types.TypeCapacitor:
		return c.Properties.Get("capacitance", types.DefaultCapacitance)
	case types.TypeInductor:
		return c.Properties.Get("inductance", types.DefaultInductance)
	}
	return 0
}

// ExportNetlist 导出 SPICE 网表格式数据。
// 节点编号取自已解析的网络，接地元件不写入。
func ExportNetlist(w io.Writer, net *graph.Network) error {
	writer := bufio.NewWriter(w)
	fmt.Fprintln(writer, "* circuitlab netlist")
	for _, c := range net.Components {
		prefix, ok := netlistPrefix[c.Type]
		if !ok {
			continue
		}
		fmt.Fprintf(writer, "%s%s", prefix, c.ID)
		for _, n := range c.Nodes {
			fmt.Fprintf(writer, " %d", n)
		}
		switch c.Type {
		case types.TypeDiode, types.TypeLed:
			fmt.Fprint(writer, " DMOD")
		default:
			fmt.Fprintf(writer, " %g", netlistValue(c))
		}
		fmt.Fprintln(writer)
	}
	fmt.Fprintln(writer, ".end")
	return writer.Flush()
}
