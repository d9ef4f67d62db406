// Package load 解析编辑器保存的电路JSON文档。
// 属性值的缺省回退策略在此边界一次性应用，
// 内核各层不再出现可选字段判断。
package load

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"circuitlab/element"
	"circuitlab/types"
)

// Document 电路文档
type Document struct {
	Name       string         `json:"name"`
	Components []docComponent `json:"components"`
	Wires      []docWire      `json:"wires"`
}

// docComponent 文档中的元件记录
type docComponent struct {
	ID         types.ComponentID      `json:"id"`
	Type       string                 `json:"type"`
	Properties map[string]docProperty `json:"properties"`
	Ports      []docPort              `json:"ports"`
}

// docProperty 属性值包装，编辑器侧属性还携带单位与显示信息
type docProperty struct {
	Value float64 `json:"value"`
}

// docPort 引脚记录
type docPort struct {
	ID types.PortID `json:"id"`
}

// docWire 导线记录
type docWire struct {
	From docEnd `json:"from"`
	To   docEnd `json:"to"`
}

// docEnd 导线端点
type docEnd struct {
	Comp struct {
		ID types.ComponentID `json:"id"`
	} `json:"comp"`
	Port struct {
		ID types.PortID `json:"id"`
	} `json:"port"`
}

// Decode 解码电路文档为内核数据模型
func Decode(r io.Reader) ([]*types.Component, []types.Wire, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("电路文档解析失败: %w", err)
	}
	components := make([]*types.Component, 0, len(doc.Components))
	for _, dc := range doc.Components {
		t := types.ParseType(dc.Type)
		ports := make([]types.PortID, len(dc.Ports))
		for i, p := range dc.Ports {
			ports[i] = p.ID
		}
		if len(ports) == 0 {
			ports = defaultPorts(t)
		}
		c := types.NewComponent(dc.ID, t, ports...)
		for name, prop := range dc.Properties {
			c.SetProperty(name, prop.Value)
		}
		components = append(components, c)
	}
	wires := make([]types.Wire, len(doc.Wires))
	for i, dw := range doc.Wires {
		wires[i] = types.Wire{
			From: types.WireEnd{Component: dw.From.Comp.ID, Port: dw.From.Port.ID},
			To:   types.WireEnd{Component: dw.To.Comp.ID, Port: dw.To.Port.ID},
		}
	}
	return components, wires, nil
}

// defaultPorts 文档未给出引脚时，按元件注册表的引脚定义补全
func defaultPorts(t types.ComponentType) []types.PortID {
	config, ok := element.Lookup(t)
	if !ok {
		return nil
	}
	ports := make([]types.PortID, len(config.Pins))
	for i, pin := range config.Pins {
		ports[i] = types.PortID(pin)
	}
	return ports
}

// Load 加载电路文档文件
func Load(filename string) ([]*types.Component, []types.Wire, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()
	return Decode(file)
}
