package combat

// Scale is the nominal total weight of a table; draws fall in [0, Scale).
const Scale = 100.0

// Colors
const (
	ColorBlue  = "blue"
	ColorGreen = "green"
	ColorRed   = "red"
)

// Sentinel outcomes. Callers match on these strings.
const (
	OutcomeUnknown = "unknown" // unrecognised color input
	OutcomeDefault = "default" // draw fell in an uncovered weight gap
)

// Attack outcome labels
const (
	OutcomeSuccessful = "successful"
	OutcomeGlazed     = "glazed"
	OutcomeMiss       = "miss"
	OutcomeCritical   = "critical"
	OutcomeHit        = "hit"
)

// Defense outcome labels
const (
	OutcomeBlock       = "block"
	OutcomeGlazedHit   = "glazed_hit"
	OutcomeCompleteHit = "complete_hit"
)

// Phase identifies which half of a combat turn is being resolved.
type Phase string

const (
	PhaseAttack  Phase = "attack"
	PhaseDefense Phase = "defense"
)
