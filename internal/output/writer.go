// Package output writes the simulated field to a self-describing
// NetCDF-style file, one record per output step, per SPEC_FULL.md
// §4.10. It is grounded on the teacher's nearest analogue in the pack:
// spatialmodel-inmap's CTMData.Write and writeNCF (vargrid.go), which
// drive the same github.com/ctessum/cdf package this writer uses.
package output

import (
	"fmt"
	"os"

	"github.com/ctessum/cdf"

	"github.com/fluidkit/miniweather/internal/simerr"
)

// fieldVars are the four cell-centered quantities written every output
// step, in the order spec.md §4.10 names them.
var fieldVars = []string{"dens", "uwnd", "wwnd", "theta"}

// Writer appends one (dens, uwnd, wwnd, theta) snapshot per call to an
// unlimited time dimension. It is not safe for concurrent use; the
// driver serializes output through a single writer per run.
type Writer struct {
	file   *os.File
	nc     *cdf.File
	nz, nx int
	rec    int
}

// New creates path and writes the NetCDF header: dimensions
// (time unlimited, z, x) and variables (time, dens, uwnd, wwnd, theta),
// each of the latter four shaped (time, z, x).
func New(path string, nz, nx int) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: creating output file: %v", simerr.ErrWriter, err)
	}

	h := cdf.NewHeader(
		[]string{"time", "z", "x"},
		[]int{0, nz, nx},
	)
	h.AddAttribute("", "comment", "miniweather 2D field snapshot")
	h.AddVariable("time", []string{"time"}, []float64{0})
	h.AddAttribute("time", "units", "seconds")
	for _, v := range fieldVars {
		h.AddVariable(v, []string{"time", "z", "x"}, []float64{0})
	}
	h.AddAttribute("dens", "description", "density perturbation from hydrostatic background")
	h.AddAttribute("uwnd", "description", "horizontal momentum per unit mass")
	h.AddAttribute("wwnd", "description", "vertical momentum per unit mass")
	h.AddAttribute("theta", "description", "potential temperature perturbation from hydrostatic background")
	h.Define()

	nc, err := cdf.Create(f, h)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: writing header: %v", simerr.ErrWriter, err)
	}

	return &Writer{file: f, nc: nc, nz: nz, nx: nx}, nil
}

// Append writes one time record. dens, uwnd, wwnd, theta must each have
// length nz*nx in row-major (z, x) order, matching internal/grid.Field.
func (w *Writer) Append(t float64, dens, uwnd, wwnd, theta []float64) error {
	n := w.nz * w.nx
	for name, data := range map[string][]float64{"dens": dens, "uwnd": uwnd, "wwnd": wwnd, "theta": theta} {
		if len(data) != n {
			return fmt.Errorf("%w: variable %s has length %d, want %d", simerr.ErrWriter, name, len(data), n)
		}
	}

	if err := w.writeScalar("time", []float64{t}); err != nil {
		return err
	}
	if err := w.writeField("dens", dens); err != nil {
		return err
	}
	if err := w.writeField("uwnd", uwnd); err != nil {
		return err
	}
	if err := w.writeField("wwnd", wwnd); err != nil {
		return err
	}
	if err := w.writeField("theta", theta); err != nil {
		return err
	}

	w.rec++
	return nil
}

func (w *Writer) writeScalar(name string, val []float64) error {
	start := []int{w.rec}
	end := []int{w.rec + 1}
	writer := w.nc.Writer(name, start, end)
	if _, err := writer.Write(val); err != nil {
		return fmt.Errorf("%w: writing %s: %v", simerr.ErrWriter, name, err)
	}
	return nil
}

func (w *Writer) writeField(name string, data []float64) error {
	start := []int{w.rec, 0, 0}
	end := []int{w.rec + 1, w.nz, w.nx}
	writer := w.nc.Writer(name, start, end)
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("%w: writing %s: %v", simerr.ErrWriter, name, err)
	}
	return nil
}

// Close fixes up the record count in the file header and closes the
// underlying file. Call it exactly once, after the final Append.
func (w *Writer) Close() error {
	if err := cdf.UpdateNumRecs(w.file); err != nil {
		w.file.Close()
		return fmt.Errorf("%w: updating record count: %v", simerr.ErrWriter, err)
	}
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("%w: closing output file: %v", simerr.ErrWriter, err)
	}
	return nil
}
