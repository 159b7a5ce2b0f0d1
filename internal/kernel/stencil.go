// Package kernel implements the dimension-specialized flux and tendency
// kernels: fourth-order interface reconstruction with hyper-viscosity,
// producing interface fluxes from a four-cell stencil and converting
// flux divergence into cell tendencies.
package kernel

import "github.com/fluidkit/miniweather/internal/scenario"

// reconstruct applies the fourth-order-accurate averaged interpolation
// and the third-derivative hyper-viscosity proxy to a four-point
// stencil s0..s3 straddling one interface (spec.md §4.5).
func reconstruct(s0, s1, s2, s3 float64) (val, d3 float64) {
	val = -s0/12 + 7*s1/12 + 7*s2/12 - s3/12
	d3 = -s0 + 3*s1 - 3*s2 + s3
	return val, d3
}

// hvCoef is the hyper-viscosity coefficient for the current RK sub-stage.
// It depends on the sub-stage's dt, not the full step's dt, so the
// dissipation added per full step stays independent of the RK
// sub-stepping -- caching this per-step instead of per-stage is a bug.
func hvCoef(hvBeta, delta, dtStage float64) float64 {
	return -hvBeta * delta / (16 * dtStage)
}

// pressure is the perturbation-free equation of state p = C0*(r*t)^gamma;
// the z-kernel additionally subtracts the hydrostatic interface pressure.
func pressure(r, t float64) float64 {
	return scenario.InterfacePressure(r, t)
}
