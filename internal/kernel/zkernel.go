package kernel

import (
	"github.com/fluidkit/miniweather/internal/grid"
	"github.com/fluidkit/miniweather/internal/scenario"
)

// ZFlux computes interface fluxes and cell tendencies for the
// z-direction sweep. It uses the interface-valued hydrostatic profile
// (not the cell average), subtracts the hydrostatic interface pressure
// from the perturbation pressure, enforces the rigid lid/floor at k=0
// and k=nz, and adds the gravitational source to the vertical-momentum
// tendency using the density perturbation only (the background is
// already in hydrostatic balance).
func ZFlux(forcing *grid.Field, flux *grid.FluxField, tend *grid.TendField, hydro *grid.Hydrostatic, dz, dtStage, hvBeta float64, workers int) {
	hs := grid.HaloSize
	nz := forcing.NZ
	nx := forcing.NX
	coef := hvCoef(hvBeta, dz, dtStage)

	ParallelFor(nx, workers, func(iStart, iEnd int) {
		for i := iStart; i < iEnd; i++ {
			col := i + hs

			for k := 0; k <= nz; k++ {
				rhoBg := hydro.DensEdge[k]
				rhoThetaBg := hydro.RhoThetaEdge[k]
				pEdge := hydro.PressureEdge[k]

				var vals, d3 [grid.NumVars]float64
				for l := 0; l < grid.NumVars; l++ {
					s0 := forcing.At(l, k, col)
					s1 := forcing.At(l, k+1, col)
					s2 := forcing.At(l, k+2, col)
					s3 := forcing.At(l, k+3, col)
					vals[l], d3[l] = reconstruct(s0, s1, s2, s3)
				}

				r := vals[grid.Dens] + rhoBg
				u := vals[grid.UMom] / r
				w := vals[grid.WMom] / r
				th := (vals[grid.RHot] + rhoThetaBg) / r
				p := pressure(r, th) - pEdge

				if k == 0 || k == nz {
					w = 0
					d3[grid.Dens] = 0
				}

				flux.Set(grid.Dens, k, i, r*w-coef*d3[grid.Dens])
				flux.Set(grid.UMom, k, i, r*w*u-coef*d3[grid.UMom])
				flux.Set(grid.WMom, k, i, r*w*w+p-coef*d3[grid.WMom])
				flux.Set(grid.RHot, k, i, r*w*th-coef*d3[grid.RHot])
			}

			for k := 0; k < nz; k++ {
				for l := 0; l < grid.NumVars; l++ {
					tend.Set(l, k, i, -(flux.At(l, k+1, i)-flux.At(l, k, i))/dz)
				}
				densPrime := forcing.At(grid.Dens, k+hs, col)
				tend.Add(grid.WMom, k, i, -densPrime*scenario.Gravity)
			}
		}
	})
}
