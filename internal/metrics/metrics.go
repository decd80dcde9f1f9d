package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/osse101/ColorDuel_Go/internal/combat"
)

// Combat Metrics
var (
	CombatOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCombatOutcomes,
			Help: HelpTextCombatOutcomes,
		},
		[]string{LabelPhase, LabelOutcome},
	)
)

// OutcomeRecorder counts resolved outcomes. It satisfies combat.Recorder.
type OutcomeRecorder struct {
	counter *prometheus.CounterVec
}

// NewOutcomeRecorder returns a recorder backed by CombatOutcomes.
func NewOutcomeRecorder() *OutcomeRecorder {
	return &OutcomeRecorder{counter: CombatOutcomes}
}

// RecordOutcome increments the counter for phase and outcome.
func (r *OutcomeRecorder) RecordOutcome(phase combat.Phase, outcome string) {
	r.counter.WithLabelValues(string(phase), outcome).Inc()
}

var _ combat.Recorder = (*OutcomeRecorder)(nil)

// WriteText writes every metric family from g in the Prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write metric family %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
