package integrate

import (
	"context"

	"github.com/fluidkit/miniweather/internal/grid"
	"github.com/fluidkit/miniweather/internal/halo"
	"github.com/fluidkit/miniweather/internal/kernel"
	"github.com/fluidkit/miniweather/internal/scenario"
)

// stageFractions are the three low-storage RK sub-stage dt fractions:
// Q1 = Q + (dt/3)*RHS(Q, dt/3), Q2 = Q + (dt/2)*RHS(Q1, dt/2),
// Q = Q + dt*RHS(Q2, dt).
var stageFractions = [3]float64{1.0 / 3.0, 1.0 / 2.0, 1.0}

// sweep runs the three-stage low-storage RK for one dimension. Q_init
// (st.Primary) is read throughout but only written by the final stage,
// so every intermediate stage output lands in st.Scratch -- this is the
// aliasing discipline spec.md §4.6/§9 requires: init==forcing in stage
// one, out==init only in the sweep's last stage.
func sweep(ctx context.Context, st *grid.State, mbox *halo.Mailbox, dir Direction, sc *scenario.Scenario, hvBeta float64, workers int) error {
	forcing := st.Primary

	for stage, frac := range stageFractions {
		dtStage := st.Dt * frac

		if err := applyHalo(ctx, st, mbox, dir, forcing); err != nil {
			return err
		}
		computeTendency(dir, forcing, st, dtStage, hvBeta, workers)

		target := st.Scratch
		if stage == len(stageFractions)-1 {
			target = st.Primary
		}
		updateFromTendency(st.Primary, target, st, sc, dtStage, workers)
		forcing = target
	}
	return nil
}

func applyHalo(ctx context.Context, st *grid.State, mbox *halo.Mailbox, dir Direction, forcing *grid.Field) error {
	switch dir {
	case X:
		if err := halo.ExchangeX(ctx, mbox, forcing); err != nil {
			return err
		}
		if st.DataSpec == scenario.DataSpecInjection {
			halo.ApplyInjection(forcing, st.Hydro, st.Topo)
		}
	case Z:
		halo.ApplyZBoundary(forcing, st.Hydro)
	}
	return nil
}

func computeTendency(dir Direction, forcing *grid.Field, st *grid.State, dtStage, hvBeta float64, workers int) {
	switch dir {
	case X:
		kernel.XFlux(forcing, st.Flux, st.Tend, st.Hydro, st.Topo.Dx, dtStage, hvBeta, workers)
	case Z:
		kernel.ZFlux(forcing, st.Flux, st.Tend, st.Hydro, st.Topo.Dz, dtStage, hvBeta, workers)
	}
}

// updateFromTendency writes target[l,k+hs,i+hs] = init[l,k+hs,i+hs] +
// dtStage*tend[l,k,i], adding the gravity-waves vertical-momentum
// forcing here (and only here) when the scenario calls for it, per
// spec.md §4.5.
func updateFromTendency(init, target *grid.Field, st *grid.State, sc *scenario.Scenario, dtStage float64, workers int) {
	hs := grid.HaloSize
	nz := st.Tend.NZ
	nx := st.Tend.NX
	topo := st.Topo
	applyForcing := st.DataSpec == scenario.DataSpecGravityWaves

	kernel.ParallelFor(nz, workers, func(kStart, kEnd int) {
		for k := kStart; k < kEnd; k++ {
			z := (float64(topo.KBeg+k) + 0.5) * topo.Dz
			rhoBg := st.Hydro.DensCell[k+hs]

			for i := 0; i < nx; i++ {
				x := (float64(topo.IBeg+i) + 0.5) * topo.Dx

				for l := 0; l < grid.NumVars; l++ {
					tv := st.Tend.At(l, k, i)
					if applyForcing && l == grid.WMom {
						tv += scenario.GravityWavesForcing.Eval(x, z) * rhoBg
					}
					newVal := init.At(l, k+hs, i+hs) + dtStage*tv
					target.Set(l, k+hs, i+hs, newVal)
				}
			}
		}
	})
}
