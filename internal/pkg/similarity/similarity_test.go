//go:build unit

package similarity_test

import (
	"testing"

	"stayhub/internal/pkg/similarity"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "casa do mar 2", similarity.Normalize("  Casa do Mar, #2! "))
	assert.Equal(t, "", similarity.Normalize("--"))
}

func TestDice(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "identical after normalization", a: "Beach House", b: "beach   house!", want: 1},
		{name: "empty side", a: "", b: "beach", want: 0},
		{name: "no shared bigrams", a: "abc", b: "xyz", want: 0},
		{name: "night vs nacht", a: "night", b: "nacht", want: 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, similarity.Dice(tt.a, tt.b), 1e-9)
		})
	}

	t.Run("symmetric", func(t *testing.T) {
		assert.Equal(t, similarity.Dice("Loft Centro", "Centro Loft"), similarity.Dice("Centro Loft", "Loft Centro"))
	})

	t.Run("close titles score high", func(t *testing.T) {
		assert.Greater(t, similarity.Dice("Apartamento Vista Mar", "Apartamento Vista al Mar"), 0.85)
	})
}
