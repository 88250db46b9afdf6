package utils

import (
	crand "crypto/rand"
	"encoding/binary"
	"hash/fnv"
	"math"
	"math/rand/v2"
	"sync"
	"time"
)

// Random is the seeded random context shared by every builder.
// Two contexts created from the same seed produce the same stream of draws.
type Random struct {
	rng  *rand.Rand
	seed uint64
	mu   sync.Mutex
}

// NewRandom creates the root context for seed. Seed 0 picks a random
// seed, which Seed reports so the run can be repeated.
func NewRandom(seed int64) *Random {
	s := uint64(seed)
	if seed == 0 {
		s = randomSeed()
	}
	return newFromSeed(s, s^0xDEADBEEF)
}

func newFromSeed(seed, stream uint64) *Random {
	return &Random{
		rng:  rand.New(rand.NewPCG(seed, stream)),
		seed: seed,
	}
}

func randomSeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	if s := binary.LittleEndian.Uint64(b[:]); s != 0 {
		return s
	}
	return 1
}

// Seed returns the seed used to initialize this RNG
func (r *Random) Seed() uint64 {
	return r.seed
}

// Derive returns a child context keyed by name. It does not consume draws
// from r, so the child stream only depends on the root seed and the key.
func (r *Random) Derive(key string) *Random {
	h := fnv.New64a()
	h.Write([]byte(key))
	k := h.Sum64()

	seed := splitmix(r.seed ^ k)
	return newFromSeed(seed, splitmix(seed^0xCAFEBABE))
}

// splitmix is the SplitMix64 finalizer, used to spread nearby seeds apart.
func splitmix(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	return x ^ (x >> 31)
}

// IntN returns a pseudo-random int in [0, n)
func (r *Random) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(n)
}

// IntRange returns a pseudo-random int in [min, max]
func (r *Random) IntRange(min, max int) int {
	if min >= max {
		return min
	}
	return min + r.IntN(max-min+1)
}

// Float64 returns a pseudo-random float64 in [0.0, 1.0)
func (r *Random) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}

// Float64Range returns a pseudo-random float64 in [min, max)
func (r *Random) Float64Range(min, max float64) float64 {
	if min >= max {
		return min
	}
	return min + r.Float64()*(max-min)
}

// Bool returns a pseudo-random boolean
func (r *Random) Bool() bool {
	return r.IntN(2) == 1
}

// Probability returns true with the given probability (0.0 to 1.0)
func (r *Random) Probability(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.Float64() < p
}

// PickString returns a random string from the slice
func (r *Random) PickString(slice []string) string {
	if len(slice) == 0 {
		return ""
	}
	return slice[r.IntN(len(slice))]
}

// Pick returns a random element of slice, or the zero value when it is empty.
func Pick[T any](r *Random, slice []T) T {
	var zero T
	if len(slice) == 0 {
		return zero
	}
	return slice[r.IntN(len(slice))]
}

// Sample returns k distinct indices from [0, n) in draw order.
// k is clamped to n.
func (r *Random) Sample(n, k int) []int {
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil
	}

	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for i := 0; i < k; i++ {
		j := i + r.rng.IntN(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

// WeightedPick returns index i with probability weights[i]/sum(weights),
// or -1 for no weights. Non-positive totals fall back to a uniform pick.
func (r *Random) WeightedPick(weights []int) int {
	if len(weights) == 0 {
		return -1
	}
	total := 0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return r.IntN(len(weights))
	}

	target := r.IntN(total)
	for i, w := range weights {
		if target < w {
			return i
		}
		target -= w
	}
	return len(weights) - 1
}

// LogNormal returns exp(N(mu, sigma)).
func (r *Random) LogNormal(mu, sigma float64) float64 {
	r.mu.Lock()
	z := r.rng.NormFloat64()
	r.mu.Unlock()
	return math.Exp(mu + z*sigma)
}
