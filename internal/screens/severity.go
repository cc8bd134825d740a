package screens

// Severity 库存告警等级（纯展示层分类，days 由服务端计算）
type Severity int

const (
	SeverityCritical Severity = iota // stock is gone
	SeverityDanger                   // 1-2 days left
	SeverityWarn                     // 3-5 days left
	SeverityOK                       // more than 5 days
)

// SeverityFor classifies the server-computed days-remaining value into the
// four display tiers.
func SeverityFor(daysRemaining int) Severity {
	switch {
	case daysRemaining <= 0:
		return SeverityCritical
	case daysRemaining <= 2:
		return SeverityDanger
	case daysRemaining <= 5:
		return SeverityWarn
	default:
		return SeverityOK
	}
}

func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "critical"
	case SeverityDanger:
		return "danger"
	case SeverityWarn:
		return "warn"
	default:
		return "ok"
	}
}
