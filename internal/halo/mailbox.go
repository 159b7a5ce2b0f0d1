package halo

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Mailbox is one rank's view of the periodic ring: the channels it sends
// its halo columns on, and the channels it receives its neighbors' halo
// columns from. Buffer length on every channel is fixed at
// NUM_VARS*nz*hs floats, matching the wire protocol in spec.md §6.
type Mailbox struct {
	toLeft    chan []float64
	toRight   chan []float64
	fromLeft  chan []float64
	fromRight chan []float64
	selfRing  bool
}

// NewRing wires count mailboxes into a periodic ring using exactly count
// channels per direction -- one rank's "send right" channel is its right
// neighbor's "receive from left" channel, and symmetrically for "send
// left". This is the channel analogue of the non-blocking MPI send/recv
// pairs described in spec.md §4.4: each channel has exactly one sender
// and one receiver for the run's lifetime.
func NewRing(count int) []*Mailbox {
	if count == 1 {
		return []*Mailbox{{selfRing: true}}
	}

	rightward := make([]chan []float64, count) // rank i's message to rank i+1
	leftward := make([]chan []float64, count)   // rank i's message to rank i-1
	for i := 0; i < count; i++ {
		rightward[i] = make(chan []float64, 1)
		leftward[i] = make(chan []float64, 1)
	}

	boxes := make([]*Mailbox, count)
	for i := 0; i < count; i++ {
		left := (i - 1 + count) % count
		right := (i + 1) % count
		boxes[i] = &Mailbox{
			toRight:   rightward[i],
			toLeft:    leftward[i],
			fromLeft:  rightward[left],
			fromRight: leftward[right],
		}
	}
	return boxes
}

// Exchange posts leftSend/rightSend to this rank's neighbors and blocks
// until both neighbors' halo columns have arrived, returning
// (fromLeft, fromRight). For a single-rank ring (no real neighbors) it
// returns the rank's own buffers directly, which is exactly the periodic
// round-trip behavior spec.md §8 requires for N=1.
func (m *Mailbox) Exchange(ctx context.Context, leftSend, rightSend []float64) (fromLeft, fromRight []float64, err error) {
	if m.selfRing {
		return rightSend, leftSend, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		select {
		case m.toLeft <- leftSend:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
	g.Go(func() error {
		select {
		case m.toRight <- rightSend:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
	g.Go(func() error {
		select {
		case fromLeft = <-m.fromLeft:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
	g.Go(func() error {
		select {
		case fromRight = <-m.fromRight:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return fromLeft, fromRight, nil
}
