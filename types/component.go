package types

import "math"

// ComponentID 元件唯一标识
type ComponentID = string

// PortID 引脚标识，同一元件内唯一
type PortID = string

// Port 元件引脚
type Port struct {
	ID PortID // 引脚标识
}

// Properties 元件属性表
// 缺失或非法的属性值在读取时统一回退到缺省值，
// 组装矩阵时不再做任何补全判断。
type Properties map[string]float64

// Get 读取属性值，缺失或非有限值时返回缺省值
func (p Properties) Get(name string, def float64) float64 {
	v, ok := p[name]
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}

// Component 电路元件
type Component struct {
	ID         ComponentID // 元件ID
	Type       ComponentType
	Properties Properties // 属性表
	Ports      []Port     // 引脚列表
	Nodes      []NodeID   // 拓扑解析后的引脚节点列表，与Ports对齐
}

// NewComponent 创建元件
func NewComponent(id ComponentID, t ComponentType, ports ...PortID) *Component {
	c := &Component{
		ID:         id,
		Type:       t,
		Properties: Properties{},
		Ports:      make([]Port, len(ports)),
		Nodes:      make([]NodeID, len(ports)),
	}
	for i, pid := range ports {
		c.Ports[i] = Port{ID: pid}
		c.Nodes[i] = UnresolvedNode
	}
	return c
}

// SetProperty 设置属性值
func (c *Component) SetProperty(name string, value float64) *Component {
	c.Properties[name] = value
	return c
}

// Node 返回第i个引脚解析后的节点，越界视为未解析
func (c *Component) Node(i int) NodeID {
	if i < 0 || i >= len(c.Nodes) {
		return UnresolvedNode
	}
	return c.Nodes[i]
}

// Resolved 判断前n个引脚是否全部解析完成
func (c *Component) Resolved(n int) bool {
	if len(c.Nodes) < n {
		return false
	}
	for i := 0; i < n; i++ {
		if c.Nodes[i] == UnresolvedNode {
			return false
		}
	}
	return true
}

// WireEnd 导线端点，指向某个元件的某个引脚
type WireEnd struct {
	Component ComponentID // 元件ID
	Port      PortID      // 引脚ID
}

// Wire 导线，无方向无电阻，是引脚等电位合并的唯一途径
type Wire struct {
	From WireEnd
	To   WireEnd
}
