package integrate

import (
	"context"
	"runtime"

	"github.com/fluidkit/miniweather/internal/grid"
	"github.com/fluidkit/miniweather/internal/halo"
	"github.com/fluidkit/miniweather/internal/scenario"
)

// DefaultWorkers mirrors the teacher's compute backend's convention of
// sizing the intra-rank worker pool off the host's CPU count.
func DefaultWorkers() int {
	return runtime.NumCPU()
}

// HvBeta is the default hyper-viscosity coefficient used throughout
// spec.md's concrete scenarios.
const HvBeta = 0.05

// Step advances one rank's state by a full simulated time step: two
// dimensional sweeps in Strang order, alternated every call. direction
// of the sweep order is read from and toggled on st.DirectionSwitch, so
// callers never need to track it themselves. A step with st.Dt == 0 is a
// no-op: it returns without touching the state or the sweep order.
func Step(ctx context.Context, st *grid.State, mbox *halo.Mailbox, sc *scenario.Scenario, hvBeta float64, workers int) error {
	if st.Dt == 0 {
		return nil
	}

	order := [2]Direction{X, Z}
	if !st.DirectionSwitch {
		order = [2]Direction{Z, X}
	}

	for _, dir := range order {
		if err := sweep(ctx, st, mbox, dir, sc, hvBeta, workers); err != nil {
			return err
		}
	}

	st.DirectionSwitch = !st.DirectionSwitch
	return nil
}
