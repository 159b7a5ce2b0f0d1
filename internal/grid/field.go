// Package grid implements the fluid-state store: the padded
// cell-averaged state buffers, the interface-flux and tendency scratch
// arrays, the hydrostatic background profiles, and the grid/parallel
// metadata a single rank owns for the lifetime of a run.
package grid

import "math"

// NumVars is the number of conserved variables carried per cell.
const NumVars = 4

// Variable ordinals. These are fixed: they appear in the wire layout of
// the halo-exchange messages and must never be renumbered.
const (
	Dens = iota
	UMom
	WMom
	RHot
)

// HaloSize is the number of ghost cells required outside each rank's
// local domain to supply the 4-cell flux-reconstruction stencil at
// boundary interfaces.
const HaloSize = 2

// Field is a dense (variable, z, x) array over a padded logical extent.
// It stores perturbations from the hydrostatic background for Dens and
// RHot; UMom/WMom are stored in full (the background momentum is zero).
type Field struct {
	NZ, NX       int // interior extent
	nzPad, nxPad int // NZ+2*hs, NX+2*hs
	Data         []float64
}

// NewField allocates a zeroed field over the padded extent implied by
// the given interior dimensions. Allocated once; never resized.
func NewField(nz, nx int) *Field {
	nzPad := nz + 2*HaloSize
	nxPad := nx + 2*HaloSize
	return &Field{
		NZ:    nz,
		NX:    nx,
		nzPad: nzPad,
		nxPad: nxPad,
		Data:  make([]float64, NumVars*nzPad*nxPad),
	}
}

func (f *Field) idx(l, k, i int) int {
	return l*f.nzPad*f.nxPad + k*f.nxPad + i
}

// At returns the value of variable l at padded indices (k, i).
func (f *Field) At(l, k, i int) float64 {
	return f.Data[f.idx(l, k, i)]
}

// Set stores the value of variable l at padded indices (k, i).
func (f *Field) Set(l, k, i int, v float64) {
	f.Data[f.idx(l, k, i)] = v
}

// Add accumulates into the value of variable l at padded indices (k, i).
func (f *Field) Add(l, k, i int, v float64) {
	f.Data[f.idx(l, k, i)] += v
}

// CopyFrom overwrites f's contents with src's. Both fields must share the
// same extent; used to duplicate initial conditions into the scratch
// buffer and, in the driver, never used per-step (the integrator
// ping-pongs buffers rather than copying).
func (f *Field) CopyFrom(src *Field) {
	copy(f.Data, src.Data)
}

// IsFinite reports whether every stored value is finite, supporting the
// optional fail-fast numerical blow-up check described in spec.md §7(d).
func (f *Field) IsFinite() bool {
	for _, v := range f.Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
