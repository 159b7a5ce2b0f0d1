package grid

// FluxField is the interface-flux scratch array over cell interfaces,
// shape (NumVars, nz+1, nx+1). It has no meaning between stages.
type FluxField struct {
	NZ, NX int // interior extent; interfaces span NZ+1, NX+1
	nz1    int
	nx1    int
	Data   []float64
}

func NewFluxField(nz, nx int) *FluxField {
	return &FluxField{
		NZ:   nz,
		NX:   nx,
		nz1:  nz + 1,
		nx1:  nx + 1,
		Data: make([]float64, NumVars*(nz+1)*(nx+1)),
	}
}

func (f *FluxField) idx(l, k, i int) int {
	return l*f.nz1*f.nx1 + k*f.nx1 + i
}

func (f *FluxField) At(l, k, i int) float64  { return f.Data[f.idx(l, k, i)] }
func (f *FluxField) Set(l, k, i int, v float64) { f.Data[f.idx(l, k, i)] = v }

// TendField is the per-cell tendency scratch array over cell interiors,
// shape (NumVars, nz, nx). It has no meaning between stages.
type TendField struct {
	NZ, NX int
	Data   []float64
}

func NewTendField(nz, nx int) *TendField {
	return &TendField{NZ: nz, NX: nx, Data: make([]float64, NumVars*nz*nx)}
}

func (t *TendField) idx(l, k, i int) int {
	return l*t.NZ*t.NX + k*t.NX + i
}

func (t *TendField) At(l, k, i int) float64     { return t.Data[t.idx(l, k, i)] }
func (t *TendField) Set(l, k, i int, v float64) { t.Data[t.idx(l, k, i)] = v }
func (t *TendField) Add(l, k, i int, v float64) { t.Data[t.idx(l, k, i)] += v }
