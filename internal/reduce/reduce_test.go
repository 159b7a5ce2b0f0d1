package reduce

import (
	"math"
	"testing"

	"github.com/fluidkit/miniweather/internal/grid"
	"github.com/fluidkit/miniweather/internal/scenario"
)

func buildState(t *testing.T, nz, nx, dataSpec int) *grid.State {
	t.Helper()
	topo := grid.NewTopology(nx, nz, 0, 1)
	st := grid.NewState(topo, dataSpec)
	sc, ok := scenario.ByDataSpec(dataSpec)
	if !ok {
		t.Fatalf("unknown data_spec %d", dataSpec)
	}
	grid.InitHydrostatic(st, sc)
	grid.InitState(st, sc)
	return st
}

func TestLocalMassPositive(t *testing.T) {
	st := buildState(t, 20, 40, scenario.DataSpecThermal)
	tot := Local(st, 4)
	if tot.Mass <= 0 {
		t.Fatalf("expected positive hydrostatic mass, got %f", tot.Mass)
	}
	if tot.TE <= 0 {
		t.Fatalf("expected positive total energy, got %f", tot.TE)
	}
}

func TestLocalIndependentOfWorkerCount(t *testing.T) {
	st := buildState(t, 16, 32, scenario.DataSpecCollision)

	serial := Local(st, 1)
	parallel := Local(st, 8)

	if math.Abs(serial.Mass-parallel.Mass) > 1e-8*math.Abs(serial.Mass) {
		t.Errorf("mass differs by worker count: serial=%f parallel=%f", serial.Mass, parallel.Mass)
	}
	if math.Abs(serial.TE-parallel.TE) > 1e-8*math.Abs(serial.TE) {
		t.Errorf("total energy differs by worker count: serial=%f parallel=%f", serial.TE, parallel.TE)
	}
}

func TestAllReduceSumsAcrossRanks(t *testing.T) {
	local := []Totals{
		{Mass: 1.0, TE: 2.0},
		{Mass: 3.0, TE: 4.0},
		{Mass: 5.0, TE: 6.0},
	}
	got := AllReduce(local)
	want := Totals{Mass: 9.0, TE: 12.0}
	if got != want {
		t.Errorf("AllReduce = %+v, want %+v", got, want)
	}
}

func TestDeltasRelativeDrift(t *testing.T) {
	base := Totals{Mass: 100.0, TE: 50.0}
	cur := Totals{Mass: 100.001, TE: 49.995}

	dMass, dTE := Deltas(base, cur)
	if math.Abs(dMass-1e-5) > 1e-9 {
		t.Errorf("d_mass = %g, want ~1e-5", dMass)
	}
	if math.Abs(dTE-(-1e-4)) > 1e-9 {
		t.Errorf("d_te = %g, want ~-1e-4", dTE)
	}
}
