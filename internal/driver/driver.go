// Package driver runs the simulation to completion: it owns the per-rank
// state and mailboxes, drives the step loop with final-step dt clamping,
// reports the stdout contract of spec.md §6, and fans snapshots out to
// the optional output writer and live monitor. Grounded on the teacher's
// internal/dynamo.Ensemble.Run (the setup barrier and per-step fan-out
// over goroutines) and cmd/dynsim/main.go's runSimulation (the
// elapsed-time reporting and final-metrics printout).
package driver

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fluidkit/miniweather/internal/config"
	"github.com/fluidkit/miniweather/internal/grid"
	"github.com/fluidkit/miniweather/internal/halo"
	"github.com/fluidkit/miniweather/internal/integrate"
	"github.com/fluidkit/miniweather/internal/monitor"
	"github.com/fluidkit/miniweather/internal/output"
	"github.com/fluidkit/miniweather/internal/reduce"
	"github.com/fluidkit/miniweather/internal/scenario"
	"github.com/fluidkit/miniweather/internal/simerr"
)

// Logger is the subset of logrus's API the driver needs, satisfied by
// *logrus.Logger. Kept narrow so tests can substitute a stub.
type Logger interface {
	Errorf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Infof(format string, args ...interface{})
}

// Options configures the optional external collaborators the driver
// feeds every step or at shutdown.
type Options struct {
	Writer    *output.Writer
	Dashboard *monitor.Dashboard
	Log       Logger
}

// Result summarizes a completed run for the run store and CLI report.
type Result struct {
	Steps       int
	Dt          float64
	FinalEtime  float64
	DMass       float64
	DTE         float64
	WallSeconds float64
}

type rank struct {
	state *grid.State
	mbox  *halo.Mailbox
}

// Run executes cfg to completion: it lays out cfg.Ranks topologies, runs
// the setup barrier, steps every rank concurrently until etime reaches
// cfg.SimTime (clamping the final step), and reports conservation deltas.
// cfg must already have passed Validate.
func Run(ctx context.Context, cfg *config.Config) (*Result, error) {
	return RunWithOptions(ctx, cfg, Options{})
}

// RunWithOptions is Run with the optional output writer, live monitor,
// and logger attached.
func RunWithOptions(ctx context.Context, cfg *config.Config, opts Options) (*Result, error) {
	sc, ok := scenario.ByDataSpec(cfg.DataSpec)
	if !ok {
		return nil, fmt.Errorf("%w: unknown data_spec %d", simerr.ErrConfig, cfg.DataSpec)
	}
	if cfg.Ranks > cfg.NxGlob {
		return nil, fmt.Errorf("%w: rank count %d exceeds nx_glob %d", simerr.ErrRankLayout, cfg.Ranks, cfg.NxGlob)
	}

	workers := integrate.DefaultWorkers()
	mboxes := halo.NewRing(cfg.Ranks)
	ranks := make([]*rank, cfg.Ranks)

	// Setup barrier: every rank builds its topology and initial state
	// before any rank is allowed to begin stepping, mirroring the
	// teacher's Ensemble.Run setup-then-run split.
	setupGroup, _ := errgroup.WithContext(ctx)
	for r := 0; r < cfg.Ranks; r++ {
		r := r
		setupGroup.Go(func() error {
			topo := grid.NewTopology(cfg.NxGlob, cfg.NzGlob, r, cfg.Ranks)
			st := grid.NewState(topo, cfg.DataSpec)
			grid.InitHydrostatic(st, sc)
			grid.InitState(st, sc)
			ranks[r] = &rank{state: st, mbox: mboxes[r]}
			return nil
		})
	}
	if err := setupGroup.Wait(); err != nil {
		return nil, err
	}

	dx := ranks[0].state.Topo.Dx
	dz := ranks[0].state.Topo.Dz
	dt := ranks[0].state.Dt
	fmt.Printf("nx_glob, nz_glob: %d, %d\n", cfg.NxGlob, cfg.NzGlob)
	fmt.Printf("dx,dz: %f, %f\n", dx, dz)
	fmt.Printf("dt: %f\n", dt)

	base := globalTotals(ranks, workers)

	var writer *output.Writer
	if opts.Writer != nil {
		writer = opts.Writer
		if err := appendSnapshot(writer, ranks, 0); err != nil {
			return nil, err
		}
		fmt.Println("*** OUTPUT ***")
	}

	start := time.Now()
	steps := 0
	etime := 0.0
	outputCounter := 0.0

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

stepLoop:
	for etime < cfg.SimTime {
		select {
		case <-runCtx.Done():
			break stepLoop
		default:
		}

		if etime+dt > cfg.SimTime {
			dt = cfg.SimTime - etime
		}
		for _, rk := range ranks {
			rk.state.Dt = dt
		}

		stepGroup, gctx := errgroup.WithContext(runCtx)
		for _, rk := range ranks {
			rk := rk
			stepGroup.Go(func() error {
				return integrate.Step(gctx, rk.state, rk.mbox, sc, cfg.HvBeta, workers)
			})
		}
		if err := stepGroup.Wait(); err != nil {
			cancel()
			return nil, err
		}

		steps++
		etime += dt
		outputCounter += dt
		for _, rk := range ranks {
			rk.state.Etime = etime
			rk.state.OutputCounter = outputCounter
		}

		fmt.Printf("Elapsed Time: %f / %f\n", etime, cfg.SimTime)

		cur := globalTotals(ranks, workers)
		dMass, dTE := reduce.Deltas(base, cur)
		if opts.Dashboard != nil {
			opts.Dashboard.Notify(monitor.Update{Step: steps, Etime: etime, DMass: dMass, DTE: dTE})
		}

		if cfg.OutputFreq >= 0 && outputCounter >= cfg.OutputFreq {
			outputCounter -= cfg.OutputFreq
			for _, rk := range ranks {
				rk.state.OutputCounter = outputCounter
			}
			if writer != nil {
				if err := appendSnapshot(writer, ranks, etime); err != nil {
					if opts.Log != nil {
						opts.Log.Errorf("output writer failed at step %d: %v", steps, err)
					}
					cancel()
					return nil, &simerr.RunError{Step: steps, Etime: etime, Wrapped: err}
				}
			}
			fmt.Println("*** OUTPUT ***")
		}
	}

	elapsed := time.Since(start)
	final := globalTotals(ranks, workers)
	dMass, dTE := reduce.Deltas(base, final)

	fmt.Printf("CPU Time: %f\n", elapsed.Seconds())
	fmt.Printf("d_mass: %e\n", dMass)
	fmt.Printf("d_te: %e\n", dTE)

	return &Result{
		Steps:       steps,
		Dt:          dt,
		FinalEtime:  etime,
		DMass:       dMass,
		DTE:         dTE,
		WallSeconds: elapsed.Seconds(),
	}, nil
}

func globalTotals(ranks []*rank, workers int) reduce.Totals {
	locals := make([]reduce.Totals, len(ranks))
	for i, rk := range ranks {
		locals[i] = reduce.Local(rk.state, workers)
	}
	return reduce.AllReduce(locals)
}

// appendSnapshot assembles every rank's interior cells into the global
// (nz_glob, nx_glob) arrays internal/output.Writer expects and appends
// one time record.
func appendSnapshot(w *output.Writer, ranks []*rank, etime float64) error {
	nzGlob := ranks[0].state.Topo.NzGlob
	nxGlob := ranks[0].state.Topo.NxGlob
	n := nzGlob * nxGlob
	dens := make([]float64, n)
	uwnd := make([]float64, n)
	wwnd := make([]float64, n)
	theta := make([]float64, n)

	hs := grid.HaloSize
	for _, rk := range ranks {
		st := rk.state
		topo := st.Topo
		for k := 0; k < topo.Nz; k++ {
			rhoBar := st.Hydro.DensCell[k+hs]
			rhoThetaBar := st.Hydro.RhoThetaCell[k+hs]
			for i := 0; i < topo.Nx; i++ {
				rho := st.Primary.At(grid.Dens, k+hs, i+hs) + rhoBar
				u := st.Primary.At(grid.UMom, k+hs, i+hs) / rho
				wv := st.Primary.At(grid.WMom, k+hs, i+hs) / rho
				th := (st.Primary.At(grid.RHot, k+hs, i+hs) + rhoThetaBar) / rho

				idx := k*nxGlob + topo.IBeg + i
				dens[idx] = st.Primary.At(grid.Dens, k+hs, i+hs)
				uwnd[idx] = u
				wwnd[idx] = wv
				theta[idx] = th - rhoThetaBar/rhoBar
			}
		}
	}

	return w.Append(etime, dens, uwnd, wwnd, theta)
}
