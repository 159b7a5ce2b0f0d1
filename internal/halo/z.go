package halo

import "github.com/fluidkit/miniweather/internal/grid"

// ApplyZBoundary enforces the rigid/reflective vertical boundary at the
// floor and lid: zero vertical momentum in both halo rows, mass-flux
// preserving extrapolation for horizontal momentum, and direct copy for
// density and density-theta perturbations. No inter-rank communication.
func ApplyZBoundary(s *grid.Field, hydro *grid.Hydrostatic) {
	hs := grid.HaloSize
	nz := s.NZ
	nxPad := s.NX + 2*hs

	bottomRows := [2]int{0, 1}
	topRows := [2]int{nz + hs, nz + hs + 1}
	bottomInterior := hs
	topInterior := nz + hs - 1

	for i := 0; i < nxPad; i++ {
		for _, r := range bottomRows {
			s.Set(grid.WMom, r, i, 0)
			s.Set(grid.Dens, r, i, s.At(grid.Dens, bottomInterior, i))
			s.Set(grid.RHot, r, i, s.At(grid.RHot, bottomInterior, i))
			s.Set(grid.UMom, r, i, s.At(grid.UMom, bottomInterior, i)*hydro.DensCell[r]/hydro.DensCell[bottomInterior])
		}
		for _, r := range topRows {
			s.Set(grid.WMom, r, i, 0)
			s.Set(grid.Dens, r, i, s.At(grid.Dens, topInterior, i))
			s.Set(grid.RHot, r, i, s.At(grid.RHot, topInterior, i))
			s.Set(grid.UMom, r, i, s.At(grid.UMom, topInterior, i)*hydro.DensCell[r]/hydro.DensCell[topInterior])
		}
	}
}
