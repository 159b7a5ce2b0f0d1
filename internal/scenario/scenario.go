package scenario

// Scenario pairs a hydrostatic background profile with a set of bump
// perturbations and an optional uniform horizontal wind, implementing the
// initial-condition contract of spec.md §4.1: given (x, z) in physical
// units, produce perturbation (rho', u, w, theta') and hydrostatic
// background (rho_bar, theta_bar).
type Scenario struct {
	Name      string
	Profile   Profile
	Bumps     []Bump
	UniformU  float64
	Injection bool
}

// Sample evaluates the scenario at a physical point. rhoPrime is always
// zero in every scenario here: none of the five generators perturbs
// density directly, only potential temperature (via the bumps) and,
// for gravity_waves, the horizontal wind.
func (s *Scenario) Sample(x, z float64) (rhoPrime, u, w, thetaPrime, rhoBg, thetaBg float64) {
	rhoBg, thetaBg = s.Profile.Eval(z)
	u = s.UniformU
	w = 0
	for _, b := range s.Bumps {
		thetaPrime += b.Eval(x, z)
	}
	return 0, u, w, thetaPrime, rhoBg, thetaBg
}

// Registry returns the five named scenarios keyed by their data_spec
// value, per the table in spec.md §4.1.
func Registry() map[int]*Scenario {
	return map[int]*Scenario{
		DataSpecThermal: {
			Name:    "thermal",
			Profile: NewConstThetaProfile(),
			Bumps: []Bump{
				{Amp: 3, X0: XLen / 2, Z0: 2000, XRad: 2000, ZRad: 2000},
			},
		},
		DataSpecCollision: {
			Name:    "collision",
			Profile: NewConstThetaProfile(),
			Bumps: []Bump{
				{Amp: 20, X0: XLen / 2, Z0: 2000, XRad: 2000, ZRad: 2000},
				{Amp: -20, X0: XLen / 2, Z0: 8000, XRad: 2000, ZRad: 2000},
			},
		},
		DataSpecDensityCurrent: {
			Name:    "density_current",
			Profile: NewConstThetaProfile(),
			Bumps: []Bump{
				{Amp: -20, X0: XLen / 2, Z0: 5000, XRad: 4000, ZRad: 2000},
			},
		},
		DataSpecGravityWaves: {
			Name:     "gravity_waves",
			Profile:  NewConstBVProfile(DefaultBVFreq),
			Bumps:    nil,
			UniformU: 15,
		},
		DataSpecInjection: {
			Name:      "injection",
			Profile:   NewConstThetaProfile(),
			Bumps:     nil,
			Injection: true,
		},
	}
}

// ByDataSpec looks up a scenario by its data_spec value, returning a
// configuration error sentinel (via ok=false) for anything outside
// {1,2,3,5,6} -- including the reserved, never-emitted value 4.
func ByDataSpec(dataSpec int) (*Scenario, bool) {
	s, ok := Registry()[dataSpec]
	return s, ok
}

// GravityWavesForcing is the spatially localized vertical-momentum
// forcing the integrator adds only when simulating the gravity_waves
// scenario (spec.md §4.5).
var GravityWavesForcing = Bump{Amp: 0.01, X0: XLen / 8, Z0: 1000, XRad: 500, ZRad: 500}

// InjectionBand reports whether a vertical cell center z falls inside the
// top-of-domain cold-jet injection band used by the injection scenario's
// halo override (spec.md §4.4).
func InjectionBand(z float64) bool {
	center := 3 * ZLen / 4
	half := ZLen / 16
	d := z - center
	if d < 0 {
		d = -d
	}
	return d <= half
}
