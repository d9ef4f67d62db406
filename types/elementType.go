package types

// ComponentType 电路元件类型
type ComponentType int

// 电路元件类型常量定义
const (
	TypeUnknown       ComponentType = iota // 未知类型
	TypeResistor                           // 电阻
	TypeVoltageSource                      // 直流电压源
	TypeCurrentSource                      // 直流电流源
	TypeCapacitor                          // 电容
	TypeInductor                           // 电感
	TypeDiode                              // 二极管
	TypeLed                                // 发光二极管
	TypeGround                             // 接地
)

// componentTypeName 元件类型名称映射
var componentTypeName = map[ComponentType]string{
	TypeUnknown:       "unknown",
	TypeResistor:      "resistor",
	TypeVoltageSource: "voltage_dc",
	TypeCurrentSource: "current_source",
	TypeCapacitor:     "capacitor",
	TypeInductor:      "inductor",
	TypeDiode:         "diode",
	TypeLed:           "led",
	TypeGround:        "ground",
}

// nameType 名称映射，包含编辑器文档中出现的历史别名
var nameType = map[string]ComponentType{
	"resistor":            TypeResistor,
	"voltage_dc":          TypeVoltageSource,
	"battery":             TypeVoltageSource,
	"current_source":      TypeCurrentSource,
	"capacitor":           TypeCapacitor,
	"capacitor_polarized": TypeCapacitor,
	"inductor":            TypeInductor,
	"diode":               TypeDiode,
	"led":                 TypeLed,
	"ground":              TypeGround,
}

// String 返回元件类型的字符串表示
func (t ComponentType) String() string {
	if name, ok := componentTypeName[t]; ok {
		return name
	}
	return "unknown"
}

// ParseType 通过名称获取类型
func ParseType(name string) ComponentType {
	return nameType[name]
}

// IsSource 电压源判断，电压源在MNA系统中占用一行附加方程
func (t ComponentType) IsSource() bool {
	return t == TypeVoltageSource
}
