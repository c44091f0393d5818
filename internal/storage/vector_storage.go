// ABOUTME: Vector math shared by index backends
// ABOUTME: Cosine similarity and distance over float64 embeddings
package storage

import "math"

// CosineSimilarity computes the cosine of the angle between two vectors.
// Mismatched lengths and zero vectors score 0.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0.0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// CosineDistance is 1 - cosine similarity; 0 for identical directions,
// growing as vectors diverge.
func CosineDistance(a, b []float64) float64 {
	return 1 - CosineSimilarity(a, b)
}
