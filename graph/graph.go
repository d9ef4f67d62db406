// Package graph 把元件引脚与导线合并为编号节点集。
// 导线是零电阻连接，由并查集完成等电位合并；接地元件的引脚固定属于节点0。
package graph

import (
	"errors"

	"circuitlab/types"
)

// ErrNoGround 电路缺少接地元件。
// 错误文本是编辑器前端消费的契约字符串。
var ErrNoGround = errors.New("No ground node found")

// Network 拓扑解析结果，每次求解重新构建，不做增量维护
type Network struct {
	NumNodes          int                              // 节点数量（不含地节点）
	NumVoltageSources int                              // 电压源数量
	Components        []*types.Component               // 元件列表，Nodes已解析
	Members           map[types.NodeID][]types.WireEnd // 节点包含的引脚
	SourceIndex       map[types.ComponentID]int        // 电压源声明顺序索引
}

// Build 由元件列表和导线列表构建节点网络。
// 未接地的电路返回 ErrNoGround，不返回部分结果。
// 指向未知元件或引脚的导线被静默跳过，编辑器允许编辑过程中的瞬态非法连接。
func Build(components []*types.Component, wires []types.Wire) (*Network, error) {
	// 分配原始槽位：槽位0保留给接地等价类
	portSlot := map[types.WireEnd]int{}
	hasGround := false
	next := 1
	for _, c := range components {
		c.Nodes = make([]types.NodeID, len(c.Ports))
		for _, p := range c.Ports {
			end := types.WireEnd{Component: c.ID, Port: p.ID}
			if c.Type == types.TypeGround {
				portSlot[end] = 0
				hasGround = true
				continue
			}
			portSlot[end] = next
			next++
		}
	}
	if !hasGround {
		return nil, ErrNoGround
	}
	// 导线合并，较小槽位存活，合并进接地类即成为地
	uf := newUnionFind(next)
	for _, w := range wires {
		a, ok1 := portSlot[w.From]
		b, ok2 := portSlot[w.To]
		if !ok1 || !ok2 {
			continue // 悬空连接
		}
		uf.union(a, b)
	}
	// 按发现顺序压缩节点编号，接地类固定为0
	nodeOf := map[int]types.NodeID{uf.find(0): types.Gnd}
	members := map[types.NodeID][]types.WireEnd{}
	count := 0
	net := &Network{
		Components:  components,
		SourceIndex: map[types.ComponentID]int{},
	}
	for _, c := range components {
		for i, p := range c.Ports {
			end := types.WireEnd{Component: c.ID, Port: p.ID}
			root := uf.find(portSlot[end])
			id, ok := nodeOf[root]
			if !ok {
				count++
				id = types.NodeID(count)
				nodeOf[root] = id
			}
			c.Nodes[i] = id
			members[id] = append(members[id], end)
		}
		if c.Type.IsSource() {
			net.SourceIndex[c.ID] = net.NumVoltageSources
			net.NumVoltageSources++
		}
	}
	net.NumNodes = count
	net.Members = members
	return net, nil
}
