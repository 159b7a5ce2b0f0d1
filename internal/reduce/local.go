package reduce

import (
	"math"
	"sync"

	"github.com/fluidkit/miniweather/internal/grid"
	"github.com/fluidkit/miniweather/internal/kernel"
	"github.com/fluidkit/miniweather/internal/scenario"
)

// Totals holds a rank's local conservation sums.
type Totals struct {
	Mass float64
	TE   float64
}

// Local computes this rank's local (mass, total-energy) sums over its
// interior cells, per spec.md §4.7. Partial sums are accumulated one
// per worker, and each worker adds its partial into the total under a
// mutex when it finishes, so the reduction is race-free regardless of
// worker count.
func Local(st *grid.State, workers int) Totals {
	hs := grid.HaloSize
	nz := st.Primary.NZ
	nx := st.Primary.NX
	dx, dz := st.Topo.Dx, st.Topo.Dz
	cellVol := dx * dz
	hydro := st.Hydro
	field := st.Primary

	var mu sync.Mutex
	var tot Totals

	kernel.ParallelFor(nz, workers, func(kStart, kEnd int) {
		var mass, te float64
		for k := kStart; k < kEnd; k++ {
			rhoBar := hydro.DensCell[k+hs]
			rhoThetaBar := hydro.RhoThetaCell[k+hs]
			for i := 0; i < nx; i++ {
				rho := field.At(grid.Dens, k+hs, i+hs) + rhoBar
				u := field.At(grid.UMom, k+hs, i+hs) / rho
				wv := field.At(grid.WMom, k+hs, i+hs) / rho
				theta := (field.At(grid.RHot, k+hs, i+hs) + rhoThetaBar) / rho
				p := scenario.C0 * math.Pow(rho*theta, scenario.Gamma)
				temp := theta / math.Pow(scenario.P0/p, scenario.Rd/scenario.Cp)

				kinetic := rho * (u*u + wv*wv)
				internal := rho * scenario.Cv * temp

				mass += rho * cellVol
				te += (kinetic + internal) * cellVol
			}
		}
		mu.Lock()
		tot.Mass += mass
		tot.TE += te
		mu.Unlock()
	})

	return tot
}
