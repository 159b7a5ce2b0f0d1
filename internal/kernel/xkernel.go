package kernel

import "github.com/fluidkit/miniweather/internal/grid"

// XFlux computes interface fluxes and cell tendencies for the
// x-direction sweep. forcing supplies the stencil values (the RK
// sub-stage's "forcing" state); tend is written (not accumulated) since
// it is pure per-stage scratch. hydro provides the cell-averaged
// background the x-kernel uses (the background varies with z only, so
// the same row's cell-average applies across the whole interface).
func XFlux(forcing *grid.Field, flux *grid.FluxField, tend *grid.TendField, hydro *grid.Hydrostatic, dx, dtStage, hvBeta float64, workers int) {
	hs := grid.HaloSize
	nz := forcing.NZ
	nx := forcing.NX
	coef := hvCoef(hvBeta, dx, dtStage)

	ParallelFor(nz, workers, func(kStart, kEnd int) {
		for k := kStart; k < kEnd; k++ {
			row := k + hs
			rhoBg := hydro.DensCell[row]
			rhoThetaBg := hydro.RhoThetaCell[row]

			for i := 0; i <= nx; i++ {
				var vals, d3 [grid.NumVars]float64
				for l := 0; l < grid.NumVars; l++ {
					s0 := forcing.At(l, row, i)
					s1 := forcing.At(l, row, i+1)
					s2 := forcing.At(l, row, i+2)
					s3 := forcing.At(l, row, i+3)
					vals[l], d3[l] = reconstruct(s0, s1, s2, s3)
				}

				r := vals[grid.Dens] + rhoBg
				u := vals[grid.UMom] / r
				w := vals[grid.WMom] / r
				th := (vals[grid.RHot] + rhoThetaBg) / r
				p := pressure(r, th)

				flux.Set(grid.Dens, k, i, r*u-coef*d3[grid.Dens])
				flux.Set(grid.UMom, k, i, r*u*u+p-coef*d3[grid.UMom])
				flux.Set(grid.WMom, k, i, r*u*w-coef*d3[grid.WMom])
				flux.Set(grid.RHot, k, i, r*u*th-coef*d3[grid.RHot])
			}

			for i := 0; i < nx; i++ {
				for l := 0; l < grid.NumVars; l++ {
					tend.Set(l, k, i, -(flux.At(l, k, i+1)-flux.At(l, k, i))/dx)
				}
			}
		}
	})
}
