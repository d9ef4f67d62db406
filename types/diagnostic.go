package types

// DiagnosticKind 诊断类别标记
type DiagnosticKind string

// 诊断类别常量定义
const (
	DiagPowerRating  DiagnosticKind = "power_rating"  // 超过额定功率
	DiagUnderVoltage DiagnosticKind = "under_voltage" // LED导通电压不足
	DiagHighCurrent  DiagnosticKind = "high_current"  // 大电流
	DiagShortCircuit DiagnosticKind = "short_circuit" // 疑似短路
)

// Diagnostic 诊断记录，校验阶段附加到结果上，不中断求解
type Diagnostic struct {
	Component ComponentID    `json:"component"` // 相关元件
	Kind      DiagnosticKind `json:"type"`      // 类别标记
	Message   string         `json:"message"`   // 可读描述
}
