// Package matching resolves a query embedding to an enrolled identity
// under a distance threshold.
package matching

import (
	"fmt"
	"math"

	"github.com/nimbus-pos/nimbus/internal/core/embedding"
)

// Result is the outcome of a match. When Found is false the query was
// valid but no candidate fell within the threshold.
type Result struct {
	Found      bool
	IdentityID string
	Name       string
	Distance   float64
}

// Distance computes the Euclidean (L2) distance between two vectors. It
// returns an error if the vectors have different lengths.
func Distance(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("matching: dimension mismatch: %d vs %d", len(a), len(b))
	}
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum), nil
}

// Match scans candidates in order and returns the one closest to query,
// provided its distance does not exceed threshold. Ties go to the
// earliest-inserted candidate: a later candidate replaces the best only
// on a strictly smaller distance.
//
// An empty candidate set yields Found == false. A query or candidate of
// the wrong dimensionality is an error, never silently skipped.
func Match(query []float64, candidates []embedding.Entry, threshold float64) (Result, error) {
	best := Result{Distance: math.Inf(1)}
	for _, c := range candidates {
		d, err := Distance(query, c.Vector)
		if err != nil {
			return Result{}, err
		}
		if d > threshold {
			continue
		}
		if d < best.Distance {
			best = Result{Found: true, IdentityID: c.IdentityID, Name: c.Name, Distance: d}
		}
	}
	if !best.Found {
		return Result{}, nil
	}
	return best, nil
}
