package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Combat metric names
const (
	MetricNameCombatOutcomes = "combat_outcomes_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// Combat metric help text
const (
	HelpTextCombatOutcomes = "Total number of resolved combat outcomes, sentinels included"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelPhase   = "phase"
	LabelOutcome = "outcome"
)
