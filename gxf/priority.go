package gxf

// PriorityBand groups the 0-255 priority space into four service classes.
type PriorityBand uint8

const (
	PriorityLow      PriorityBand = 0
	PriorityNormal   PriorityBand = 64
	PriorityHigh     PriorityBand = 128
	PriorityCritical PriorityBand = 192
)

// BandOf maps a raw priority value onto its band.
func BandOf(priority uint8) PriorityBand {
	switch {
	case priority >= 192:
		return PriorityCritical
	case priority >= 128:
		return PriorityHigh
	case priority >= 64:
		return PriorityNormal
	default:
		return PriorityLow
	}
}

func (b PriorityBand) String() string {
	switch b {
	case PriorityCritical:
		return "critical"
	case PriorityHigh:
		return "high"
	case PriorityNormal:
		return "normal"
	default:
		return "low"
	}
}
