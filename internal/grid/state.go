package grid

// Topology describes a single rank's place in the 1-D periodic ring
// along x, and the grid geometry it owns. z is never decomposed:
// KBeg is always 0 and Nz equals NzGlob.
type Topology struct {
	NxGlob, NzGlob int
	Nx, Nz         int
	IBeg, KBeg     int
	RankID         int
	RankCount      int
	Left, Right    int
	Dx, Dz         float64
}

// NewTopology computes the rank's column span under an even-as-possible
// split of NxGlob across RankCount ranks, and its ring neighbors under
// modular wrap. It is computed once at init and never recomputed per
// step.
func NewTopology(nxGlob, nzGlob, rankID, rankCount int) Topology {
	iBeg := rankID * nxGlob / rankCount
	iEnd := (rankID + 1) * nxGlob / rankCount
	nx := iEnd - iBeg

	return Topology{
		NxGlob:    nxGlob,
		NzGlob:    nzGlob,
		Nx:        nx,
		Nz:        nzGlob,
		IBeg:      iBeg,
		KBeg:      0,
		RankID:    rankID,
		RankCount: rankCount,
		Left:      (rankID - 1 + rankCount) % rankCount,
		Right:     (rankID + 1) % rankCount,
		Dx:        XLenFor(nxGlob),
		Dz:        ZLenFor(nzGlob),
	}
}

// XLenFor and ZLenFor compute the cell spacing for the fixed physical
// domain extents (xlen=2e4, zlen=1e4) used throughout spec.md.
func XLenFor(nxGlob int) float64 { return 2.0e4 / float64(nxGlob) }
func ZLenFor(nzGlob int) float64 { return 1.0e4 / float64(nzGlob) }

// State is the complete owned state of one rank: its two ping-ponged
// fluid-state buffers, interface-flux and tendency scratch, hydrostatic
// background, grid/parallel metadata, and the scalar run-state (dt,
// etime, output counter, direction_switch). All arrays are allocated
// once and retained for the run's lifetime.
type State struct {
	Topo     Topology
	Hydro    *Hydrostatic
	Primary  *Field
	Scratch  *Field
	Flux     *FluxField
	Tend     *TendField
	DataSpec int

	Dt              float64
	Etime           float64
	OutputCounter   float64
	DirectionSwitch bool
}

// NewState allocates every buffer a rank owns for the given topology.
func NewState(topo Topology, dataSpec int) *State {
	return &State{
		Topo:            topo,
		Hydro:           NewHydrostatic(topo.Nz),
		Primary:         NewField(topo.Nz, topo.Nx),
		Scratch:         NewField(topo.Nz, topo.Nx),
		Flux:            NewFluxField(topo.Nz, topo.Nx),
		Tend:            NewTendField(topo.Nz, topo.Nx),
		DataSpec:        dataSpec,
		DirectionSwitch: true,
	}
}
