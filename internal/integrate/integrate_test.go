package integrate

import (
	"context"
	"testing"

	"github.com/fluidkit/miniweather/internal/grid"
	"github.com/fluidkit/miniweather/internal/halo"
	"github.com/fluidkit/miniweather/internal/scenario"
)

func newTestState(nz, nx, dataSpec int) (*grid.State, *scenario.Scenario) {
	topo := grid.NewTopology(nx, nz, 0, 1)
	st := grid.NewState(topo, dataSpec)
	sc, _ := scenario.ByDataSpec(dataSpec)
	grid.InitHydrostatic(st, sc)
	grid.InitState(st, sc)
	return st, sc
}

func TestZeroDtStepIsNoOp(t *testing.T) {
	st, sc := newTestState(10, 20, scenario.DataSpecThermal)
	st.Dt = 0
	mbox := halo.NewRing(1)[0]
	before := append([]float64(nil), st.Primary.Data...)

	if err := Step(context.Background(), st, mbox, sc, HvBeta, 2); err != nil {
		t.Fatalf("step failed: %v", err)
	}

	for i := range before {
		if before[i] != st.Primary.Data[i] {
			t.Fatalf("dt=0 step must be a no-op, diverged at index %d: %f vs %f", i, before[i], st.Primary.Data[i])
		}
	}
}

func TestStepPreservesFiniteness(t *testing.T) {
	st, sc := newTestState(10, 20, scenario.DataSpecThermal)
	mbox := halo.NewRing(1)[0]

	for i := 0; i < 5; i++ {
		if err := Step(context.Background(), st, mbox, sc, HvBeta, 2); err != nil {
			t.Fatalf("step %d failed: %v", i, err)
		}
	}

	if !st.Primary.IsFinite() {
		t.Fatal("state became non-finite after a few steps")
	}
}

func TestDirectionSwitchToggles(t *testing.T) {
	st, sc := newTestState(6, 10, scenario.DataSpecThermal)
	mbox := halo.NewRing(1)[0]

	start := st.DirectionSwitch
	if err := Step(context.Background(), st, mbox, sc, HvBeta, 2); err != nil {
		t.Fatalf("step failed: %v", err)
	}
	if st.DirectionSwitch == start {
		t.Error("direction_switch must toggle every step")
	}
}
