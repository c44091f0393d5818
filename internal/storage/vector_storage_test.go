// ABOUTME: Unit tests for cosine similarity and distance helpers
// ABOUTME: Covers identical, orthogonal, opposite, and degenerate vectors
package storage

import (
	"testing"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a        []float64
		b        []float64
		expected float64
		delta    float64
	}{
		{
			name:     "identical vectors",
			a:        []float64{1.0, 0.0, 0.0},
			b:        []float64{1.0, 0.0, 0.0},
			expected: 1.0,
			delta:    0.001,
		},
		{
			name:     "orthogonal vectors",
			a:        []float64{1.0, 0.0, 0.0},
			b:        []float64{0.0, 1.0, 0.0},
			expected: 0.0,
			delta:    0.001,
		},
		{
			name:     "opposite vectors",
			a:        []float64{1.0, 0.0, 0.0},
			b:        []float64{-1.0, 0.0, 0.0},
			expected: -1.0,
			delta:    0.001,
		},
		{
			name:     "similar vectors",
			a:        []float64{1.0, 0.0, 0.0},
			b:        []float64{0.9, 0.1, 0.0},
			expected: 0.995,
			delta:    0.01,
		},
		{
			name:     "mismatched lengths",
			a:        []float64{1.0, 0.0},
			b:        []float64{1.0, 0.0, 0.0},
			expected: 0.0,
			delta:    0.0001,
		},
		{
			name:     "zero vector",
			a:        []float64{0.0, 0.0, 0.0},
			b:        []float64{1.0, 0.0, 0.0},
			expected: 0.0,
			delta:    0.0001,
		},
		{
			name:     "scaled vectors keep similarity",
			a:        []float64{2.0, 0.0, 0.0},
			b:        []float64{5.0, 0.0, 0.0},
			expected: 1.0,
			delta:    0.001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CosineSimilarity(tt.a, tt.b)
			if abs(result-tt.expected) > tt.delta {
				t.Errorf("CosineSimilarity(%v, %v) = %.4f, expected %.4f (delta %.4f)",
					tt.a, tt.b, result, tt.expected, tt.delta)
			}
		})
	}
}

func TestCosineDistance(t *testing.T) {
	tests := []struct {
		name     string
		a        []float64
		b        []float64
		expected float64
		delta    float64
	}{
		{
			name:     "identical vectors have zero distance",
			a:        []float64{1.0, 0.0, 0.0},
			b:        []float64{1.0, 0.0, 0.0},
			expected: 0.0,
			delta:    0.001,
		},
		{
			name:     "orthogonal vectors",
			a:        []float64{1.0, 0.0, 0.0},
			b:        []float64{0.0, 1.0, 0.0},
			expected: 1.0,
			delta:    0.001,
		},
		{
			name:     "opposite vectors",
			a:        []float64{1.0, 0.0, 0.0},
			b:        []float64{-1.0, 0.0, 0.0},
			expected: 2.0,
			delta:    0.001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CosineDistance(tt.a, tt.b)
			if abs(result-tt.expected) > tt.delta {
				t.Errorf("CosineDistance(%v, %v) = %.4f, expected %.4f (delta %.4f)",
					tt.a, tt.b, result, tt.expected, tt.delta)
			}
		})
	}
}

func TestCosineDistanceOrdersNeighbors(t *testing.T) {
	query := []float64{0.95, 0.05, 0.0}
	near := []float64{0.9, 0.1, 0.0}
	far := []float64{0.0, 1.0, 0.0}

	dNear := CosineDistance(query, near)
	dFar := CosineDistance(query, far)
	if dNear >= dFar {
		t.Errorf("expected near distance %.4f < far distance %.4f", dNear, dFar)
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
