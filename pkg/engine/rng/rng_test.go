package rng

import "testing"

func TestSameSeedSameSequence(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Intn(1000), b.Intn(1000); x != y {
			t.Fatalf("draw %d: %d != %d", i, x, y)
		}
	}
}

func TestRangeInclusive(t *testing.T) {
	r := New(1)
	seenLo, seenHi := false, false
	for i := 0; i < 500; i++ {
		v := r.Range(3, 6)
		if v < 3 || v > 6 {
			t.Fatalf("Range(3, 6) = %d, out of bounds", v)
		}
		seenLo = seenLo || v == 3
		seenHi = seenHi || v == 6
	}
	if !seenLo || !seenHi {
		t.Errorf("Range(3, 6) never hit a bound: lo=%v hi=%v", seenLo, seenHi)
	}
	if got := r.Range(5, 2); got != 5 {
		t.Errorf("Range(5, 2) = %d, want 5", got)
	}
}

func TestChanceBounds(t *testing.T) {
	r := New(7)
	for i := 0; i < 100; i++ {
		if r.Chance(0) {
			t.Fatal("Chance(0) returned true")
		}
		if !r.Chance(1) {
			t.Fatal("Chance(1) returned false")
		}
	}
}

func TestSampleWithoutReplacement(t *testing.T) {
	r := New(3)
	items := []int{0, 1, 2, 3, 4, 5, 6, 7}
	for i := 0; i < 50; i++ {
		got := Sample(r, items, 5)
		if len(got) != 5 {
			t.Fatalf("len(Sample) = %d, want 5", len(got))
		}
		seen := map[int]bool{}
		for _, v := range got {
			if seen[v] {
				t.Fatalf("Sample returned duplicate %d in %v", v, got)
			}
			seen[v] = true
		}
	}
	if got := Sample(r, items, 20); len(got) != len(items) {
		t.Errorf("len(Sample(k > n)) = %d, want %d", len(got), len(items))
	}
	if items[0] != 0 || items[7] != 7 {
		t.Errorf("Sample modified its input: %v", items)
	}
}

func TestWeightedChoice(t *testing.T) {
	r := New(11)
	if got := WeightedChoice(r, []float64{0, 0}); got != -1 {
		t.Errorf("WeightedChoice(all zero) = %d, want -1", got)
	}
	for i := 0; i < 100; i++ {
		if got := WeightedChoice(r, []float64{0, 2, 0}); got != 1 {
			t.Fatalf("WeightedChoice(single positive) = %d, want 1", got)
		}
	}

	counts := make([]int, 2)
	for i := 0; i < 7000; i++ {
		counts[WeightedChoice(r, []float64{1, 6})]++
	}
	if counts[1] < counts[0]*3 {
		t.Errorf("weights 1:6 produced counts %v", counts)
	}
}

func TestDeriveAdvancesParentOnce(t *testing.T) {
	a := New(99)
	b := New(99)

	seed, child := a.Derive()
	if child.Seed() != seed {
		t.Errorf("child.Seed() = %d, want %d", child.Seed(), seed)
	}
	for i := 0; i < 10; i++ {
		child.Intn(10)
	}

	b.Int63()
	if x, y := a.Int63(), b.Int63(); x != y {
		t.Errorf("parent sequence diverged after Derive: %d != %d", x, y)
	}
}
