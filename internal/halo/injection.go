package halo

import (
	"github.com/fluidkit/miniweather/internal/grid"
	"github.com/fluidkit/miniweather/internal/scenario"
)

// ApplyInjection overrides the leftmost rank's left-halo cells with the
// top-of-domain cold-jet driven boundary condition used by the
// injection scenario (spec.md §4.4). It must run after ExchangeX, since
// it modifies halo cells the generic exchange just populated, not
// interior cells.
func ApplyInjection(s *grid.Field, hydro *grid.Hydrostatic, topo grid.Topology) {
	if topo.IBeg != 0 {
		return
	}
	hs := grid.HaloSize

	for k := 0; k < s.NZ; k++ {
		z := (float64(topo.KBeg+k) + 0.5) * topo.Dz
		if !scenario.InjectionBand(z) {
			continue
		}
		row := k + hs
		rhoBg := hydro.DensCell[row]
		rhoThetaBg := hydro.RhoThetaCell[row]
		for i := 0; i < hs; i++ {
			rhoPrime := s.At(grid.Dens, row, i)
			totalRho := rhoPrime + rhoBg
			s.Set(grid.UMom, row, i, totalRho*50.0)
			s.Set(grid.RHot, row, i, totalRho*298.0-rhoThetaBg)
		}
	}
}
