package halo

import (
	"context"
	"testing"

	"github.com/fluidkit/miniweather/internal/grid"
)

func fillInterior(s *grid.Field, seed float64) {
	hs := grid.HaloSize
	n := 0.0
	for l := 0; l < grid.NumVars; l++ {
		for k := 0; k < s.NZ; k++ {
			for i := 0; i < s.NX; i++ {
				s.Set(l, k+hs, i+hs, seed+n)
				n++
			}
		}
	}
}

func TestSingleRankPeriodicRoundTrip(t *testing.T) {
	s := grid.NewField(4, 6)
	fillInterior(s, 1.0)

	boxes := NewRing(1)
	if err := ExchangeX(context.Background(), boxes[0], s); err != nil {
		t.Fatalf("exchange failed: %v", err)
	}

	hs := grid.HaloSize
	for l := 0; l < grid.NumVars; l++ {
		for k := 0; k < s.NZ; k++ {
			for c := 0; c < hs; c++ {
				left := s.At(l, k+hs, c)
				rightInterior := s.At(l, k+hs, s.NX+c)
				if left != rightInterior {
					t.Errorf("left halo[%d,%d,%d]=%f must equal rightmost interior=%f", l, k, c, left, rightInterior)
				}
				right := s.At(l, k+hs, s.NX+hs+c)
				leftInterior := s.At(l, k+hs, hs+c)
				if right != leftInterior {
					t.Errorf("right halo[%d,%d,%d]=%f must equal leftmost interior=%f", l, k, c, right, leftInterior)
				}
			}
		}
	}
}

func TestHaloIdempotence(t *testing.T) {
	s := grid.NewField(4, 6)
	fillInterior(s, 2.0)

	boxes := NewRing(1)
	ctx := context.Background()
	if err := ExchangeX(ctx, boxes[0], s); err != nil {
		t.Fatalf("first exchange failed: %v", err)
	}
	before := append([]float64(nil), s.Data...)
	if err := ExchangeX(ctx, boxes[0], s); err != nil {
		t.Fatalf("second exchange failed: %v", err)
	}
	for i := range before {
		if before[i] != s.Data[i] {
			t.Fatalf("halo exchange is not idempotent at index %d: %f vs %f", i, before[i], s.Data[i])
		}
	}
}

func TestTwoRankExchangeMatchesNeighborInterior(t *testing.T) {
	nz, nx := 4, 6
	s0 := grid.NewField(nz, nx)
	s1 := grid.NewField(nz, nx)
	fillInterior(s0, 10.0)
	fillInterior(s1, 100.0)

	boxes := NewRing(2)

	type result struct {
		err error
	}
	done := make(chan result, 2)
	go func() { done <- result{ExchangeX(context.Background(), boxes[0], s0)} }()
	go func() { done <- result{ExchangeX(context.Background(), boxes[1], s1)} }()
	for i := 0; i < 2; i++ {
		if r := <-done; r.err != nil {
			t.Fatalf("exchange failed: %v", r.err)
		}
	}

	hs := grid.HaloSize
	// rank 0's right halo must equal rank 1's leftmost interior columns.
	for l := 0; l < grid.NumVars; l++ {
		for k := 0; k < nz; k++ {
			for c := 0; c < hs; c++ {
				got := s0.At(l, k+hs, nx+hs+c)
				want := s1.At(l, k+hs, hs+c)
				if got != want {
					t.Errorf("rank0 right halo mismatch at (%d,%d,%d): got %f want %f", l, k, c, got, want)
				}
			}
		}
	}
}

func TestApplyZBoundaryRigidLid(t *testing.T) {
	nz, nx := 6, 4
	s := grid.NewField(nz, nx)
	hydro := grid.NewHydrostatic(nz)
	for i := range hydro.DensCell {
		hydro.DensCell[i] = 1.1
	}
	fillInterior(s, 5.0)

	ApplyZBoundary(s, hydro)

	hs := grid.HaloSize
	for i := 0; i < nx+2*hs; i++ {
		for _, r := range []int{0, 1, nz + hs, nz + hs + 1} {
			if v := s.At(grid.WMom, r, i); v != 0 {
				t.Errorf("expected zero vertical momentum at boundary row %d, got %f", r, v)
			}
		}
	}
}
