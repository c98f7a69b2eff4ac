package algorithms

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/mihai-snyk/nsga2/pkg/multiobjective/framework"
)

func TestCrowdingDistance(t *testing.T) {
	inf := math.Inf(1)
	tests := []struct {
		name       string
		objectives [][]float64
		want       []float64
	}{
		{
			name:       "two individuals",
			objectives: [][]float64{{1, 2}, {2, 1}},
			want:       []float64{inf, inf},
		},
		{
			name:       "single individual",
			objectives: [][]float64{{1, 2}},
			want:       []float64{inf},
		},
		{
			name:       "evenly spaced front",
			objectives: [][]float64{{0, 4}, {1, 3}, {2, 2}, {3, 1}, {4, 0}},
			// Each interior gap is 2/4 per objective, summed over 2 objectives.
			want: []float64{inf, 1, 1, 1, inf},
		},
		{
			name:       "unevenly spaced front",
			objectives: [][]float64{{0, 10}, {1, 9}, {5, 5}, {10, 0}},
			want:       []float64{inf, 1, 1.8, inf},
		},
		{
			name:       "zero range objective is skipped",
			objectives: [][]float64{{0, 7}, {1, 7}, {3, 7}, {4, 7}},
			want:       []float64{inf, 0.75, 0.75, inf},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CrowdingDistance(denseFromRows(tt.objectives))
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				if math.IsInf(tt.want[i], 1) {
					assert.True(t, math.IsInf(got[i], 1), "index %d: want +Inf, got %v", i, got[i])
					continue
				}
				assert.InDelta(t, tt.want[i], got[i], 1e-12, "index %d", i)
			}
		})
	}
}

func TestCrowdingDistanceAllIdentical(t *testing.T) {
	got := CrowdingDistance(denseFromRows([][]float64{{1, 1}, {1, 1}, {1, 1}, {1, 1}}))
	for i, d := range got {
		assert.False(t, math.IsNaN(d), "index %d is NaN", i)
		assert.GreaterOrEqual(t, d, 0.0)
	}
	// The stable sort keeps index order, so the first and last rows are the extremes.
	assert.True(t, math.IsInf(got[0], 1))
	assert.True(t, math.IsInf(got[3], 1))
	assert.Equal(t, 0.0, got[1])
	assert.Equal(t, 0.0, got[2])
}

func TestCrowdingDistanceBoundariesAreInfinite(t *testing.T) {
	objectives := denseFromRows([][]float64{{3, 1, 9}, {1, 5, 2}, {2, 2, 2}, {5, 0, 4}, {4, 3, 1}})
	got := CrowdingDistance(objectives)

	n, m := objectives.Dims()
	for j := 0; j < m; j++ {
		col := mat.Col(nil, j, objectives)
		minIdx, maxIdx := 0, 0
		for i := 1; i < n; i++ {
			if col[i] < col[minIdx] {
				minIdx = i
			}
			if col[i] > col[maxIdx] {
				maxIdx = i
			}
		}
		assert.True(t, math.IsInf(got[minIdx], 1), "objective %d minimum %d", j, minIdx)
		assert.True(t, math.IsInf(got[maxIdx], 1), "objective %d maximum %d", j, maxIdx)
	}
}

func TestCrowdingDistanceByFront(t *testing.T) {
	inf := math.Inf(1)
	objectives := denseFromRows([][]float64{
		// front 1
		{0, 4}, {2, 2}, {4, 0},
		// front 2
		{1, 5}, {5, 1},
	})
	fronts, err := NonDominatedSort(objectives)
	require.NoError(t, err)
	require.Equal(t, []int{1, 1, 1, 2, 2}, fronts.Ranks)

	got, err := CrowdingDistanceByFront(objectives, fronts)
	require.NoError(t, err)
	assert.Equal(t, []float64{inf, 2, inf, inf, inf}, got)
}

func TestCrowdingDistanceByFrontValidation(t *testing.T) {
	objectives := denseFromRows([][]float64{{0, 1}, {1, 0}})

	tests := []struct {
		name   string
		fronts *Fronts
	}{
		{name: "nil fronts", fronts: nil},
		{name: "more ranked individuals than rows", fronts: newFrontsFromRanks([]int{1, 1, 2, 2})},
		{name: "fewer ranked individuals than rows", fronts: newFrontsFromRanks([]int{1})},
		{
			name:   "member index out of range",
			fronts: &Fronts{Ranks: []int{1, 1}, Members: [][]int{{0, 5}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CrowdingDistanceByFront(objectives, tt.fronts)
			assert.ErrorIs(t, err, framework.ErrInvalidInput)
			assert.Nil(t, got)
		})
	}
}

func TestCrowdingDistanceInfiniteRange(t *testing.T) {
	inf := math.Inf(1)
	got := CrowdingDistance(denseFromRows([][]float64{{0, 3}, {1, 2}, {inf, 1}, {2, 0}}))
	for i, d := range got {
		assert.False(t, math.IsNaN(d), "distance %d is NaN", i)
	}
	// The first objective has an infinite range and adds nothing inside.
	assert.Equal(t, []float64{inf, 2.0 / 3, inf, inf}, got)
}
