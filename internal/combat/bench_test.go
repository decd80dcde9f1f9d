package combat

import (
	"io"
	"log/slog"
	"testing"

	"github.com/osse101/ColorDuel_Go/internal/utils"
)

func BenchmarkSample(b *testing.B) {
	table, _ := AttackTable(ColorGreen)
	s := NewSampler(utils.NewSeededFloat(1), slog.New(slog.NewTextHandler(io.Discard, nil)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Sample(table)
	}
}

func BenchmarkResolveDefense(b *testing.B) {
	r := NewResolver(
		WithRandom(utils.NewSeededFloat(1)),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.ResolveDefense(ColorRed, ColorBlue)
	}
}
