// Package scenario provides the initial-condition library: closed-form
// generators for the hydrostatic background and the perturbation fields
// sampled at cell-quadrature points during initialization.
//
// Each [Scenario] pairs a hydrostatic [Profile] (constant potential
// temperature, or constant Brunt-Vaisala frequency) with zero or more
// [Bump] perturbations and an optional uniform horizontal wind. Callers
// sample a scenario at a physical (x, z) point with [Scenario.Sample].
package scenario
