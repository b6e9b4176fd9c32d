package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStandardDeviation(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		in   []float64
		want float64
	}{
		{"empty", nil, 0},
		{"single", []float64{5}, 0},
		{"constant", []float64{3, 3, 3}, 0},
		{"population", []float64{2, 4, 4, 4, 5, 5, 7, 9}, 2},
		{"pair", []float64{1, 3}, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.InDelta(t, c.want, StandardDeviation(c.in), 1e-9)
		})
	}
}

func TestStandardDeviation_OrderIndependent(t *testing.T) {
	t.Parallel()
	a := StandardDeviation([]float64{9, 7, 5, 5, 4, 4, 4, 2})
	b := StandardDeviation([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	require.InDelta(t, a, b, 1e-12)
}
