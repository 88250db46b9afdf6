package utils

import (
	"math"
	"testing"
)

func TestRandomReproducibility(t *testing.T) {
	seed := int64(42)

	rng1 := NewRandom(seed)
	rng2 := NewRandom(seed)

	t.Run("IntN", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			v1 := rng1.IntN(1000)
			v2 := rng2.IntN(1000)
			if v1 != v2 {
				t.Errorf("Mismatch at iteration %d: %d != %d", i, v1, v2)
				return
			}
		}
	})

	rng1 = NewRandom(seed)
	rng2 = NewRandom(seed)

	t.Run("Mixed operations", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			if rng1.IntN(100) != rng2.IntN(100) {
				t.Error("IntN mismatch")
				return
			}
			if rng1.Float64() != rng2.Float64() {
				t.Error("Float64 mismatch")
				return
			}
			if rng1.LogNormal(8, 2) != rng2.LogNormal(8, 2) {
				t.Error("LogNormal mismatch")
				return
			}
			if rng1.IntRange(10, 20) != rng2.IntRange(10, 20) {
				t.Error("IntRange mismatch")
				return
			}
		}
	})
}

func TestRandomSeedStorage(t *testing.T) {
	rng := NewRandom(12345)
	if rng.Seed() != 12345 {
		t.Errorf("Expected seed 12345, got %d", rng.Seed())
	}

	rng = NewRandom(0)
	if rng.Seed() == 0 {
		t.Error("Expected non-zero auto-generated seed")
	}
}

func TestRandomDerive(t *testing.T) {
	t.Run("independent of call order", func(t *testing.T) {
		rng1 := NewRandom(42)
		rng2 := NewRandom(42)

		a1 := rng1.Derive("fact_transakce")
		b1 := rng1.Derive("fact_prodeje")

		// Derive in the opposite order and after consuming draws from the parent.
		for i := 0; i < 50; i++ {
			rng2.IntN(10)
		}
		b2 := rng2.Derive("fact_prodeje")
		a2 := rng2.Derive("fact_transakce")

		for i := 0; i < 100; i++ {
			if a1.IntN(1_000_000) != a2.IntN(1_000_000) {
				t.Fatalf("derived stream for fact_transakce diverged at %d", i)
			}
			if b1.IntN(1_000_000) != b2.IntN(1_000_000) {
				t.Fatalf("derived stream for fact_prodeje diverged at %d", i)
			}
		}
	})

	t.Run("keys produce different streams", func(t *testing.T) {
		rng := NewRandom(42)
		a := rng.Derive("dim_regiony")
		b := rng.Derive("dim_pobocky")

		same := 0
		for i := 0; i < 100; i++ {
			if a.IntN(1_000_000) == b.IntN(1_000_000) {
				same++
			}
		}
		if same > 5 {
			t.Errorf("streams for different keys look identical (%d/100 equal draws)", same)
		}
	})

	t.Run("seed changes the stream", func(t *testing.T) {
		a := NewRandom(42).Derive("dim_ucty")
		b := NewRandom(43).Derive("dim_ucty")
		if a.Seed() == b.Seed() {
			t.Error("expected different derived seeds for different root seeds")
		}
	})
}

func TestRandomRanges(t *testing.T) {
	rng := NewRandom(42)

	t.Run("IntRange", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			v := rng.IntRange(10, 20)
			if v < 10 || v > 20 {
				t.Errorf("IntRange(10, 20) returned %d", v)
			}
		}
	})

	t.Run("IntRange negative", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			v := rng.IntRange(-1500, 800)
			if v < -1500 || v > 800 {
				t.Errorf("IntRange(-1500, 800) returned %d", v)
			}
		}
	})

	t.Run("Float64Range", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			v := rng.Float64Range(1.0, 2.0)
			if v < 1.0 || v >= 2.0 {
				t.Errorf("Float64Range(1.0, 2.0) returned %f", v)
			}
		}
	})

	t.Run("LogNormal", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			v := rng.LogNormal(8, 2)
			if v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
				t.Errorf("LogNormal(8, 2) returned %f", v)
			}
		}
	})
}

func TestRandomProbability(t *testing.T) {
	rng := NewRandom(42)

	for i := 0; i < 100; i++ {
		if rng.Probability(0) {
			t.Error("Probability(0) returned true")
		}
	}

	for i := 0; i < 100; i++ {
		if !rng.Probability(1) {
			t.Error("Probability(1) returned false")
		}
	}

	trueCount := 0
	iterations := 10000
	for i := 0; i < iterations; i++ {
		if rng.Probability(0.3) {
			trueCount++
		}
	}
	ratio := float64(trueCount) / float64(iterations)
	if ratio < 0.27 || ratio > 0.33 {
		t.Errorf("Probability(0.3) returned %.2f%% true, expected ~30%%", ratio*100)
	}
}

func TestRandomPick(t *testing.T) {
	rng := NewRandom(42)

	t.Run("PickString", func(t *testing.T) {
		slice := []string{"a", "b", "c", "d", "e"}
		counts := make(map[string]int)
		for i := 0; i < 1000; i++ {
			counts[rng.PickString(slice)]++
		}
		for _, s := range slice {
			if counts[s] == 0 {
				t.Errorf("Element '%s' was never picked", s)
			}
		}
	})

	t.Run("PickString empty", func(t *testing.T) {
		if v := rng.PickString([]string{}); v != "" {
			t.Errorf("PickString on empty slice returned '%s', expected ''", v)
		}
	})

	t.Run("Pick generic", func(t *testing.T) {
		rates := []float64{0.21, 0.15, 0.10}
		for i := 0; i < 100; i++ {
			v := Pick(rng, rates)
			if v != 0.21 && v != 0.15 && v != 0.10 {
				t.Fatalf("Pick returned unexpected value %v", v)
			}
		}
		if v := Pick(rng, []int(nil)); v != 0 {
			t.Errorf("Pick on nil slice returned %d, expected 0", v)
		}
	})
}

func TestRandomSample(t *testing.T) {
	rng := NewRandom(42)

	t.Run("distinct indices", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			idx := rng.Sample(40, 8)
			if len(idx) != 8 {
				t.Fatalf("Sample(40, 8) returned %d indices", len(idx))
			}
			seen := make(map[int]bool)
			for _, v := range idx {
				if v < 0 || v >= 40 {
					t.Fatalf("index %d out of range", v)
				}
				if seen[v] {
					t.Fatalf("duplicate index %d in %v", v, idx)
				}
				seen[v] = true
			}
		}
	})

	t.Run("k larger than n", func(t *testing.T) {
		idx := rng.Sample(3, 8)
		if len(idx) != 3 {
			t.Errorf("Sample(3, 8) returned %d indices, expected 3", len(idx))
		}
	})

	t.Run("empty", func(t *testing.T) {
		if idx := rng.Sample(0, 8); len(idx) != 0 {
			t.Errorf("Sample(0, 8) returned %v", idx)
		}
	})
}

func TestRandomWeightedPick(t *testing.T) {
	rng := NewRandom(42)

	weights := []int{1, 1, 1, 1000}
	counts := make([]int, len(weights))

	iterations := 10000
	for i := 0; i < iterations; i++ {
		counts[rng.WeightedPick(weights)]++
	}

	if counts[3] < 9000 {
		t.Errorf("Weighted pick: expected index 3 to be picked >9000 times, got %d", counts[3])
	}
}
