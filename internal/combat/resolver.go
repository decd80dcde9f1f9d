package combat

import (
	"log/slog"
)

// Recorder receives every resolved outcome, sentinels included.
type Recorder interface {
	RecordOutcome(phase Phase, outcome string)
}

// Resolver selects the outcome table for a color context and samples it.
type Resolver struct {
	sampler  *Sampler
	log      *slog.Logger
	recorder Recorder
	rng      func() float64
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithRandom sets the random source. It must return values in [0, 1).
func WithRandom(rng func() float64) Option {
	return func(r *Resolver) { r.rng = rng }
}

// WithLogger sets the logger used for draw diagnostics and outcomes.
func WithLogger(log *slog.Logger) Option {
	return func(r *Resolver) { r.log = log }
}

// WithRecorder attaches an outcome recorder, e.g. metrics.
func WithRecorder(rec Recorder) Option {
	return func(r *Resolver) { r.recorder = rec }
}

// NewResolver creates a resolver with the given options
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{}
	for _, opt := range opts {
		opt(r)
	}
	r.sampler = NewSampler(r.rng, r.log)
	return r
}

// ResolveAttack resolves the attack phase. Only enemyColor selects the table;
// playerColor is accepted for symmetry with ResolveDefense and otherwise unused.
func (r *Resolver) ResolveAttack(playerColor, enemyColor string) string {
	outcome := OutcomeUnknown
	if t, ok := attackTables[enemyColor]; ok {
		outcome = r.sampler.Sample(t)
	}

	r.logger().Debug("Attack resolved", "player_color", playerColor, "enemy_color", enemyColor, "outcome", outcome)
	r.record(PhaseAttack, outcome)
	return outcome
}

// ResolveDefense resolves the defense phase for the (playerColor, enemyColor) pair.
func (r *Resolver) ResolveDefense(playerColor, enemyColor string) string {
	outcome := OutcomeUnknown
	if t, ok := defenseTables[colorPair{playerColor, enemyColor}]; ok {
		outcome = r.sampler.Sample(t)
	}

	r.logger().Debug("Defense resolved", "player_color", playerColor, "enemy_color", enemyColor, "outcome", outcome)
	r.record(PhaseDefense, outcome)
	return outcome
}

// Resolve dispatches on phase. Unrecognised phases yield OutcomeUnknown and
// are recorded under the phase they were given.
func (r *Resolver) Resolve(phase Phase, playerColor, enemyColor string) string {
	switch phase {
	case PhaseAttack:
		return r.ResolveAttack(playerColor, enemyColor)
	case PhaseDefense:
		return r.ResolveDefense(playerColor, enemyColor)
	default:
		r.logger().Debug("Unrecognised phase", "phase", phase, "player_color", playerColor, "enemy_color", enemyColor)
		r.record(phase, OutcomeUnknown)
		return OutcomeUnknown
	}
}

func (r *Resolver) logger() *slog.Logger {
	if r.log == nil {
		return slog.Default()
	}
	return r.log
}

func (r *Resolver) record(phase Phase, outcome string) {
	if r.recorder != nil {
		r.recorder.RecordOutcome(phase, outcome)
	}
}

var defaultResolver = NewResolver()

// ResolveAttack resolves an attack with the default resolver.
func ResolveAttack(playerColor, enemyColor string) string {
	return defaultResolver.ResolveAttack(playerColor, enemyColor)
}

// ResolveDefense resolves a defense with the default resolver.
func ResolveDefense(playerColor, enemyColor string) string {
	return defaultResolver.ResolveDefense(playerColor, enemyColor)
}
