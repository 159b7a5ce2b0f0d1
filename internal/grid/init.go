package grid

import "github.com/fluidkit/miniweather/internal/scenario"

// Cfl and MaxWaveSpeed fix the time-step formula dt = min(dx,dz)*cfl/max_speed.
const (
	Cfl          = 1.5
	MaxWaveSpeed = 450.0
)

// InitHydrostatic precomputes the cell-averaged and interface hydrostatic
// profiles for one rank (spec.md §4.2): three-point Gauss-Legendre
// quadrature over each vertical cell for the cell averages, direct
// evaluation at each interface.
func InitHydrostatic(s *State, sc *scenario.Scenario) {
	dz := s.Topo.Dz
	kBeg := s.Topo.KBeg
	hs := HaloSize

	for k := 0; k < s.Topo.Nz+2*hs; k++ {
		var rhoSum, rhoThetaSum float64
		for q := 0; q < 3; q++ {
			z := (float64(kBeg+k-hs) + scenario.GLPoints[q]) * dz
			_, _, _, thetaPrime, rhoBg, thetaBg := sc.Sample(0, z)
			theta := thetaBg + thetaPrime
			w := scenario.GLWeights[q]
			rhoSum += w * rhoBg
			rhoThetaSum += w * (rhoBg * theta)
		}
		s.Hydro.DensCell[k] = rhoSum
		s.Hydro.RhoThetaCell[k] = rhoThetaSum
	}

	for k := 0; k < s.Topo.Nz+1; k++ {
		z := float64(kBeg+k) * dz
		_, _, _, _, rhoBg, thetaBg := sc.Sample(0, z)
		rhoTheta := rhoBg * thetaBg
		s.Hydro.DensEdge[k] = rhoBg
		s.Hydro.RhoThetaEdge[k] = rhoTheta
		s.Hydro.PressureEdge[k] = scenario.InterfacePressure(rhoBg, thetaBg)
	}
}

// InitState computes the cell-averaged initial fluid state for one rank
// via 3x3 tensor-product Gauss-Legendre quadrature (spec.md §4.3),
// duplicates it into the scratch buffer, and derives dt, etime,
// output_counter and direction_switch.
func InitState(s *State, sc *scenario.Scenario) {
	dx := s.Topo.Dx
	dz := s.Topo.Dz
	iBeg := s.Topo.IBeg
	kBeg := s.Topo.KBeg
	hs := HaloSize

	for k := 0; k < s.Topo.Nz; k++ {
		for i := 0; i < s.Topo.Nx; i++ {
			var acc [NumVars]float64
			for kk := 0; kk < 3; kk++ {
				z := (float64(kBeg+k) + scenario.GLPoints[kk]) * dz
				for ii := 0; ii < 3; ii++ {
					x := (float64(iBeg+i) + scenario.GLPoints[ii]) * dx
					rPrime, u, w, thetaPrime, rhoBg, thetaBg := sc.Sample(x, z)
					weight := scenario.GLWeights[kk] * scenario.GLWeights[ii]

					r := rPrime
					totalRho := r + rhoBg
					totalRhoTheta := totalRho*(thetaBg+thetaPrime) - rhoBg*thetaBg

					acc[Dens] += weight * r
					acc[UMom] += weight * (totalRho * u)
					acc[WMom] += weight * (totalRho * w)
					acc[RHot] += weight * totalRhoTheta
				}
			}
			for l := 0; l < NumVars; l++ {
				s.Primary.Set(l, k+hs, i+hs, acc[l])
			}
		}
	}

	s.Scratch.CopyFrom(s.Primary)

	minDxDz := dx
	if dz < minDxDz {
		minDxDz = dz
	}
	s.Dt = minDxDz * Cfl / MaxWaveSpeed
	s.Etime = 0
	s.OutputCounter = 0
	s.DirectionSwitch = true
}
