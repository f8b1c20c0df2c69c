package recommend

import "math"

// candidateScore carries the per-candidate components for one request.
// combined = alpha*similarity + (1-alpha)*popularity, bounded to [0,1]
// because vectors are unit-norm with non-negative features.
type candidateScore struct {
	productID  string
	idx        int
	similarity float64
	popularity float64
	combined   float64
}

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// scoreCandidates computes combined scores for every catalog item except the
// query. Pure function of (query, alpha, snapshot); ordering is the ranker's
// job.
func (e *Engine) scoreCandidates(queryIdx int, alpha float64) []candidateScore {
	queryVec := e.snap.Vectors[queryIdx]

	out := make([]candidateScore, 0, len(e.snap.Items)-1)
	for i, it := range e.snap.Items {
		if i == queryIdx {
			continue
		}

		sim := dot(queryVec, e.snap.Vectors[i])
		pop := e.snap.Popularity[it.ProductID]
		out = append(out, candidateScore{
			productID:  it.ProductID,
			idx:        i,
			similarity: sim,
			popularity: pop,
			combined:   alpha*sim + (1-alpha)*pop,
		})
	}
	return out
}

// roundScore rounds for presentation only; ranking keeps full precision.
func roundScore(s float64) float64 {
	return math.Round(s*1000) / 1000
}
