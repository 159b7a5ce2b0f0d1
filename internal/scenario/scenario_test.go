package scenario

import (
	"math"
	"testing"
)

func TestConstThetaProfileSurface(t *testing.T) {
	p := NewConstThetaProfile()
	rho, theta := p.Eval(0)
	if theta != 300.0 {
		t.Errorf("expected theta=300 at z=0, got %f", theta)
	}
	if rho <= 0 {
		t.Errorf("expected positive surface density, got %f", rho)
	}
}

func TestConstThetaProfileDecreasesWithHeight(t *testing.T) {
	p := NewConstThetaProfile()
	rho0, _ := p.Eval(0)
	rho1, _ := p.Eval(5000)
	if rho1 >= rho0 {
		t.Errorf("expected density to decrease with height: rho(0)=%f rho(5000)=%f", rho0, rho1)
	}
}

func TestConstBVProfileMatchesThetaAtSurface(t *testing.T) {
	p := NewConstBVProfile(DefaultBVFreq)
	_, theta := p.Eval(0)
	if math.Abs(theta-300.0) > 1e-9 {
		t.Errorf("expected theta0=300 at z=0, got %f", theta)
	}
}

func TestBumpCenterIsMax(t *testing.T) {
	b := Bump{Amp: 3, X0: 10000, Z0: 2000, XRad: 2000, ZRad: 2000}
	center := b.Eval(10000, 2000)
	if math.Abs(center-3) > 1e-9 {
		t.Errorf("expected bump amplitude at center, got %f", center)
	}
	outside := b.Eval(10000, 2000+3000)
	if outside != 0 {
		t.Errorf("expected zero contribution outside radius, got %f", outside)
	}
}

func TestByDataSpecRejectsUnknown(t *testing.T) {
	if _, ok := ByDataSpec(4); ok {
		t.Errorf("data_spec 4 must be rejected as a configuration error")
	}
	if _, ok := ByDataSpec(99); ok {
		t.Errorf("unknown data_spec must be rejected")
	}
}

func TestGravityWavesUniformWind(t *testing.T) {
	s, ok := ByDataSpec(DataSpecGravityWaves)
	if !ok {
		t.Fatal("gravity_waves scenario missing from registry")
	}
	_, u, _, thetaPrime, _, _ := s.Sample(1000, 1000)
	if u != 15 {
		t.Errorf("expected uniform u=15, got %f", u)
	}
	if thetaPrime != 0 {
		t.Errorf("expected zero base perturbation away from forcing, got %f", thetaPrime)
	}
}

func TestInjectionBand(t *testing.T) {
	center := 3 * ZLen / 4
	if !InjectionBand(center) {
		t.Errorf("expected band center to be inside the injection band")
	}
	if InjectionBand(0) {
		t.Errorf("expected z=0 to be outside the injection band")
	}
}
