package stress

// Zone is the step-function classification of a stress level.
type Zone int

// Defined zones, in ascending order of severity.
const (
	ZoneOk Zone = iota
	ZoneWarning
	ZoneDanger
	ZoneCritical
)

func (z Zone) String() string {
	switch z {
	case ZoneOk:
		return "ok"
	case ZoneWarning:
		return "warning"
	case ZoneDanger:
		return "danger"
	case ZoneCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// AssessZone is a pure function of a stress level: Ok if <3, Warning if
// <6, Danger if <9, else Critical.
func AssessZone(stressLevel float64) Zone {
	switch {
	case stressLevel < 3:
		return ZoneOk
	case stressLevel < 6:
		return ZoneWarning
	case stressLevel < 9:
		return ZoneDanger
	default:
		return ZoneCritical
	}
}

// Health is a per-component record of stress, zone, and heal history.
type Health struct {
	StressLevel       float64
	Zone              Zone
	HealAttempts      uint32
	LastHealTimestamp uint64
}

// Update records a new stress level, reassesses the zone, and returns it.
func (h *Health) Update(level float64) Zone {
	h.StressLevel = level
	h.Zone = AssessZone(level)
	return h.Zone
}

// CanSelfHeal reports whether the component is eligible for self-heal: its
// stress level is below the Critical threshold and it has not exhausted
// its heal-attempt budget.
func (h *Health) CanSelfHeal() bool {
	return h.StressLevel < 9 && h.HealAttempts < 3
}
