package reduce

// AllReduce combines every rank's local Totals with SUM, matching the
// collective spec.md §4.7 describes. Because every rank's State lives in
// this process (goroutines stand in for MPI ranks, per spec.md §5), the
// all-reduce needs no wire protocol: the driver already holds every
// rank's local Totals in hand at the synchronization point and only
// needs to fold them together.
func AllReduce(local []Totals) Totals {
	var global Totals
	for _, t := range local {
		global.Mass += t.Mass
		global.TE += t.TE
	}
	return global
}

// Deltas computes the relative drift (cur-base)/base for mass and total
// energy, per the "d_mass"/"d_te" diagnostics spec.md §6 requires at
// startup and shutdown.
func Deltas(base, cur Totals) (dMass, dTE float64) {
	dMass = (cur.Mass - base.Mass) / base.Mass
	dTE = (cur.TE - base.TE) / base.TE
	return dMass, dTE
}
