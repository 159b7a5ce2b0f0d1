package output

import (
	"path/filepath"
	"testing"
)

func TestAppendWritesExpectedLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "field.nc")
	nz, nx := 4, 6

	w, err := New(path, nz, nx)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	flat := make([]float64, nz*nx)
	for i := range flat {
		flat[i] = float64(i)
	}

	if err := w.Append(0.0, flat, flat, flat, flat); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := w.Append(0.5, flat, flat, flat, flat); err != nil {
		t.Fatalf("second Append: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestAppendRejectsWrongLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "field.nc")
	w, err := New(path, 4, 6)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()

	short := make([]float64, 3)
	if err := w.Append(0.0, short, short, short, short); err == nil {
		t.Error("expected error for mismatched field length")
	}
}
