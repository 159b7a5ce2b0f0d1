package scenario

// Physical constants fixed by the governing equations. These are not
// tunable at runtime.
const (
	Gravity       = 9.8
	Cp            = 1004.0
	Cv            = 717.0
	Rd            = 287.0
	P0            = 1.0e5
	C0            = 27.5629410929725921310572974482
	Gamma         = 1.40027894002789400278940027894
	XLen          = 2.0e4
	ZLen          = 1.0e4
	DefaultBVFreq = 0.02
)

// Data spec identifiers as accepted on the command line / config file.
// 4 is intentionally absent: spec.md treats it as a reserved value never
// emitted by a real scenario, so an unrecognized data_spec (including 4)
// is a configuration error.
const (
	DataSpecCollision      = 1
	DataSpecThermal        = 2
	DataSpecGravityWaves   = 3
	DataSpecDensityCurrent = 5
	DataSpecInjection      = 6
)
