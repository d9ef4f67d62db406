// Package element 定义各元件类型对MNA系统的加盖贡献与电流关系。
// 每种类型注册一个纯函数式的Config，DC之外的分析模式
// 可以通过追加新的贡献函数扩展，不需要改动已有类型。
package element

import (
	"fmt"

	"circuitlab/mna"
	"circuitlab/types"
)

// StampFunc 元件的线性贡献，vs为其电压源索引（无则为-1）
type StampFunc func(s *mna.System, c *types.Component, vs int)

// CurrentFunc 由已求解的节点电压推导支路电流
type CurrentFunc func(s *mna.System, c *types.Component, vs int) float64

// Config 元件类型配置
type Config struct {
	Pins    []string    // 引脚名称，长度即引脚数量
	Stamp   StampFunc   // 线性贡献，nil表示不加盖（开路或接地）
	Current CurrentFunc // 电流关系
}

// registry 元件类型映射
var registry = map[types.ComponentType]Config{}

// register 注册元件类型
func register(t types.ComponentType, config Config) {
	if _, ok := registry[t]; ok {
		panic(fmt.Errorf("指定元件类型已经注册: %s", t))
	}
	registry[t] = config
}

// Lookup 获取元件类型配置
func Lookup(t types.ComponentType) (Config, bool) {
	config, ok := registry[t]
	return config, ok
}

// drop 返回元件两端电压差 V(n1)-V(n2)
func drop(s *mna.System, c *types.Component) float64 {
	return s.GetNodeVoltage(c.Node(0)) - s.GetNodeVoltage(c.Node(1))
}
