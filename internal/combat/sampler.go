package combat

import (
	"context"
	"log/slog"

	"github.com/osse101/ColorDuel_Go/internal/utils"
)

// Sampler draws outcomes from tables using an injectable random source.
type Sampler struct {
	rng func() float64 // returns [0, 1)
	log *slog.Logger
}

// NewSampler creates a sampler. A nil rng falls back to utils.RandomFloat,
// a nil logger to slog.Default() at draw time.
func NewSampler(rng func() float64, log *slog.Logger) *Sampler {
	if rng == nil {
		rng = utils.RandomFloat
	}
	return &Sampler{rng: rng, log: log}
}

func (s *Sampler) logger() *slog.Logger {
	if s.log == nil {
		return slog.Default()
	}
	return s.log
}

// Sample draws r in [0, Scale) and returns the first label whose cumulative
// weight reaches r. Returns OutcomeDefault if the weights never cover r.
func (s *Sampler) Sample(table Table) string {
	r := s.rng() * Scale
	log := s.logger()
	debug := log.Enabled(context.Background(), slog.LevelDebug)
	if debug {
		log.Debug("Outcome draw", "random", r)
	}

	cumulative := 0.0
	for _, e := range table {
		cumulative += e.Weight
		if debug {
			log.Debug("Cumulative weight", "label", e.Label, "cumulative", cumulative)
		}
		if r <= cumulative {
			return e.Label
		}
	}
	return OutcomeDefault
}

var defaultSampler = NewSampler(nil, nil)

// Sample draws from table with the default random source.
func Sample(table Table) string {
	return defaultSampler.Sample(table)
}
