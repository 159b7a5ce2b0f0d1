package halo

import (
	"context"

	"github.com/fluidkit/miniweather/internal/grid"
)

// packLen is the wire size of one direction's halo message:
// NUM_VARS*nz*hs floats, laid out (variable, z, halo-column).
func packLen(nz int) int {
	return grid.NumVars * nz * grid.HaloSize
}

// packX packs the inner hs columns of state into contiguous
// (variable, z, halo-column) buffers: the columns just inside the left
// edge [hs, 2*hs) for the left-bound message, and just inside the right
// edge [nx, nx+hs) for the right-bound message.
func packX(s *grid.Field) (leftSend, rightSend []float64) {
	hs := grid.HaloSize
	leftSend = make([]float64, packLen(s.NZ))
	rightSend = make([]float64, packLen(s.NZ))

	n := 0
	for l := 0; l < grid.NumVars; l++ {
		for k := 0; k < s.NZ; k++ {
			for c := 0; c < hs; c++ {
				leftSend[n] = s.At(l, k+hs, hs+c)
				rightSend[n] = s.At(l, k+hs, s.NX+c)
				n++
			}
		}
	}
	return leftSend, rightSend
}

// unpackX writes received halo columns into [0, hs) (from the left
// neighbor) and [nx+hs, nx+2*hs) (from the right neighbor).
func unpackX(s *grid.Field, fromLeft, fromRight []float64) {
	hs := grid.HaloSize

	n := 0
	for l := 0; l < grid.NumVars; l++ {
		for k := 0; k < s.NZ; k++ {
			for c := 0; c < hs; c++ {
				s.Set(l, k+hs, c, fromLeft[n])
				s.Set(l, k+hs, s.NX+hs+c, fromRight[n])
				n++
			}
		}
	}
}

// ExchangeX performs the full periodic x-boundary exchange: pack,
// post-and-wait over the ring Mailbox, unpack. It is the only operation
// in the simulation that may block on another rank.
func ExchangeX(ctx context.Context, mbox *Mailbox, s *grid.Field) error {
	leftSend, rightSend := packX(s)
	fromLeft, fromRight, err := mbox.Exchange(ctx, leftSend, rightSend)
	if err != nil {
		return err
	}
	unpackX(s, fromLeft, fromRight)
	return nil
}
