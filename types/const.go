package types

// NodeID 电路节点编号，0为接地节点
type NodeID = int

// 节点连接常量定义
const (
	Gnd            NodeID = 0  // 接地节点固定为0
	UnresolvedNode NodeID = -1 // 引脚未解析标记
)

// 求解与校验阈值定义
var (
	PivotTolerance         = 1e-10 // 主元奇异容差
	VoltageTolerance       = 1e-6  // 电压比较容差
	ShortConductance       = 1e9   // 理想电感的近似短路电导 (S)
	DiodeForwardResistance = 10.0  // 二极管线性化正向电阻 (Ω)
	LedForwardResistance   = 20.0  // LED线性化正向电阻 (Ω)
	DiodeForwardVoltage    = 0.7   // 二极管导通电压 (V)
	LedForwardVoltage      = 2.0   // LED导通电压 (V)
	LedNominalCurrent      = 0.02  // LED额定电流 (A)
	HighCurrentThreshold   = 10.0  // 大电流告警阈值 (A)
	ShortCircuitThreshold  = 100.0 // 短路判定阈值 (A)
)

// 元件属性缺省值定义
var (
	DefaultResistance  = 1000.0 // 默认电阻 (Ω)
	DefaultVoltage     = 9.0    // 默认电压 (V)
	DefaultCurrent     = 0.01   // 默认电流 (A)
	DefaultCapacitance = 1e-6   // 默认电容 (F)
	DefaultInductance  = 1e-3   // 默认电感 (H)
	DefaultPowerRating = 0.25   // 默认额定功率 (W)
)
