package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRandomFloat tests the random float generator
func TestRandomFloat(t *testing.T) {
	t.Run("returns value in [0, 1)", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			result := RandomFloat()
			assert.GreaterOrEqual(t, result, 0.0, "Should be >= 0")
			assert.Less(t, result, 1.0, "Should be < 1")
		}
	})

	t.Run("produces varied results", func(t *testing.T) {
		first := RandomFloat()
		allSame := true
		for i := 0; i < 100; i++ {
			if RandomFloat() != first {
				allSame = false
				break
			}
		}
		assert.False(t, allSame, "Should produce different values, not all identical")
	})
}

// TestNewSeededFloat verifies seeded sources are reproducible
func TestNewSeededFloat(t *testing.T) {
	t.Run("same seed yields same sequence", func(t *testing.T) {
		a := NewSeededFloat(42)
		b := NewSeededFloat(42)
		for i := 0; i < 50; i++ {
			assert.Equal(t, a(), b())
		}
	})

	t.Run("different seeds diverge", func(t *testing.T) {
		a := NewSeededFloat(1)
		b := NewSeededFloat(2)
		diverged := false
		for i := 0; i < 10; i++ {
			if a() != b() {
				diverged = true
			}
		}
		assert.True(t, diverged, "Different seeds should not produce identical sequences")
	})

	t.Run("values stay in range", func(t *testing.T) {
		src := NewSeededFloat(7)
		for i := 0; i < 1000; i++ {
			v := src()
			assert.GreaterOrEqual(t, v, 0.0)
			assert.Less(t, v, 1.0)
		}
	})
}

func TestFixedFloat(t *testing.T) {
	src := FixedFloat(0.25)
	assert.Equal(t, 0.25, src())
	assert.Equal(t, 0.25, src())
}
