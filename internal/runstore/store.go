// Package runstore persists per-run metadata so completed runs can be
// listed and inspected without re-simulating (SPEC_FULL.md §3.1, §4.9).
// It mirrors the teacher's storage.Store: one directory per run under a
// base directory holding a JSON metadata sidecar. The store writes no
// companion data file; a run's NetCDF field file (internal/output) stays
// wherever it was written, and only its path is recorded in the metadata.
package runstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// RunMetadata records a completed run's configuration and final
// conservation diagnostics.
type RunMetadata struct {
	ID          string    `json:"id"`
	Scenario    string    `json:"scenario"`
	Timestamp   time.Time `json:"timestamp"`
	NxGlob      int       `json:"nx_glob"`
	NzGlob      int       `json:"nz_glob"`
	Ranks       int       `json:"ranks"`
	SimTime     float64   `json:"sim_time"`
	Dt          float64   `json:"dt"`
	Steps       int       `json:"steps"`
	DMass       float64   `json:"d_mass"`
	DTE         float64   `json:"d_te"`
	WallSeconds float64   `json:"wall_seconds"`
	OutputPath  string    `json:"output_path,omitempty"`
}

// Store manages the on-disk collection of completed runs under a base
// directory, one subdirectory per run.
type Store struct {
	baseDir string
}

// New returns a Store rooted at baseDir. Call Init before Save.
func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Init creates the base directory if it does not already exist.
func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Save assigns a run ID from the scenario name and current time, writes
// metadata.json into a new run directory, and returns the run ID.
func (s *Store) Save(meta RunMetadata) (string, error) {
	runID := fmt.Sprintf("%s_%d", meta.Scenario, meta.Timestamp.Unix())
	meta.ID = runID
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	f, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}
	return runID, nil
}

// List enumerates every run with a readable metadata.json, for the
// CLI's `list` subcommand. A directory missing or with an unreadable
// sidecar is silently skipped, matching the teacher's tolerant List.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	return runs, nil
}

// Load reads back a single run's metadata, for the CLI's `inspect`
// subcommand.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}
