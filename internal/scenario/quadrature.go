package scenario

// GLPoints and GLWeights are the three-point Gauss-Legendre quadrature
// nodes (mapped to [0,1]) and weights used throughout initialization:
// hydrostatic cell averages (1-D) and cell-averaged state (2-D
// tensor-product).
var (
	GLPoints  = [3]float64{0.112701665379258311482073460022, 0.5, 0.887298334620741688517926539978}
	GLWeights = [3]float64{0.277777777777777777777777777778, 0.444444444444444444444444444444, 0.277777777777777777777777777778}
)
