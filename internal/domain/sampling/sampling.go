// Package sampling holds the random draws the dataset generators are built
// from: an owned seeded source, weighted categorical choice over closed
// enumerations, bounded numeric draws, clipping and rounding.
package sampling

import (
	"fmt"
	"math"
	"math/rand"
)

// weightTolerance is how far a weight table may drift from summing to 1.
const weightTolerance = 1e-9

// Source is a seeded random source owned by a single generator call.
// It is not safe for concurrent use.
type Source struct {
	rng *rand.Rand
}

// NewSource returns a source seeded with seed. Two sources with the same
// seed yield identical sequences.
func NewSource(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))} //nolint:gosec // reproducible synthetic data, not security
}

// IntRange is a half-open integer interval [Lo, Hi).
type IntRange struct {
	Lo int
	Hi int
}

// Contains reports whether v lies in [Lo, Hi).
func (r IntRange) Contains(v int) bool { return v >= r.Lo && v < r.Hi }

// Int draws uniformly from r. An empty range yields Lo.
func (s *Source) Int(r IntRange) int {
	if r.Hi <= r.Lo {
		return r.Lo
	}
	return r.Lo + s.rng.Intn(r.Hi-r.Lo)
}

// Uniform draws uniformly from [lo, hi).
func (s *Source) Uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// Normal draws from a Gaussian with mean mu and standard deviation sigma.
func (s *Source) Normal(mu, sigma float64) float64 {
	return mu + s.rng.NormFloat64()*sigma
}

// Choice picks an element of xs uniformly. xs must not be empty.
func Choice[T any](s *Source, xs []T) T {
	return xs[s.rng.Intn(len(xs))]
}

// Weight pairs an enumeration value with its probability.
type Weight[T comparable] struct {
	Value  T
	Weight float64
}

// W is shorthand for building a Weight.
func W[T comparable](v T, w float64) Weight[T] { return Weight[T]{Value: v, Weight: w} }

// Weighted is a categorical distribution over a closed set of values.
type Weighted[T comparable] struct {
	values     []T
	cumulative []float64
	weights    map[T]float64
}

// NewWeighted builds a distribution. Weights must be positive, values
// distinct, and the weights must sum to 1.
func NewWeighted[T comparable](entries ...Weight[T]) (*Weighted[T], error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no entries", ErrInvalidWeights)
	}
	w := &Weighted[T]{
		values:     make([]T, 0, len(entries)),
		cumulative: make([]float64, 0, len(entries)),
		weights:    make(map[T]float64, len(entries)),
	}
	total := 0.0
	for _, e := range entries {
		if e.Weight <= 0 || math.IsNaN(e.Weight) {
			return nil, fmt.Errorf("%w: weight %v for %v", ErrInvalidWeights, e.Weight, e.Value)
		}
		if _, dup := w.weights[e.Value]; dup {
			return nil, fmt.Errorf("%w: duplicate value %v", ErrInvalidWeights, e.Value)
		}
		total += e.Weight
		w.values = append(w.values, e.Value)
		w.cumulative = append(w.cumulative, total)
		w.weights[e.Value] = e.Weight
	}
	if math.Abs(total-1) > weightTolerance {
		return nil, fmt.Errorf("%w: weights sum to %v", ErrInvalidWeights, total)
	}
	return w, nil
}

// MustWeighted is NewWeighted for package-level tables; it panics on error.
func MustWeighted[T comparable](entries ...Weight[T]) *Weighted[T] {
	w, err := NewWeighted(entries...)
	if err != nil {
		panic(err)
	}
	return w
}

// Pick draws one value.
func (w *Weighted[T]) Pick(s *Source) T {
	u := s.rng.Float64()
	for i, c := range w.cumulative {
		if u < c {
			return w.values[i]
		}
	}
	return w.values[len(w.values)-1]
}

// Weight returns the configured probability of v, or 0 if v is not in the set.
func (w *Weighted[T]) Weight(v T) float64 { return w.weights[v] }

// Values returns the values in declaration order.
func (w *Weighted[T]) Values() []T {
	out := make([]T, len(w.values))
	copy(out, w.values)
	return out
}

// Clip bounds v to [lo, hi].
func Clip(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
