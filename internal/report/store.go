// Package report persists run output to disk and renders it back as
// terminal plots. A run here is one call to [odex.Integrate]: a time
// series of states plus the (order, cores, dt) that produced it.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Store persists runs under a base directory, one subdirectory per
// run, each holding a metadata.json and a states.csv.
type Store struct {
	baseDir string
}

// New returns a Store rooted at baseDir.
func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Init creates the store's base directory if it does not exist.
func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Metadata describes a completed run.
type Metadata struct {
	ID        string             `json:"id"`
	Model     string             `json:"model"`
	Timestamp time.Time          `json:"timestamp"`
	Order     int                `json:"order"`
	Cores     int                `json:"cores"`
	Parallel  bool               `json:"parallel"`
	Dt        float64            `json:"dt"`
	Duration  float64            `json:"duration"`
	ISBn      float64            `json:"isbn"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Run is the in-memory result of an integration, ready to be saved.
type Run struct {
	Model    string
	Order    int
	Cores    int
	Parallel bool
	Dt       float64
	Duration float64
	ISBn     float64
	Times    []float64
	States   [][]float64
	Metrics  map[string]float64
}

// Save writes r's metadata and state trajectory under a fresh
// run ID and returns that ID.
func (s *Store) Save(r *Run) (string, error) {
	runID := fmt.Sprintf("%s_%d", r.Model, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := Metadata{
		ID:        runID,
		Model:     r.Model,
		Timestamp: time.Now(),
		Order:     r.Order,
		Cores:     r.Cores,
		Parallel:  r.Parallel,
		Dt:        r.Dt,
		Duration:  r.Duration,
		ISBn:      r.ISBn,
		Metrics:   r.Metrics,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := writeStatesCSV(filepath.Join(runDir, "states.csv"), r.Times, r.States); err != nil {
		return "", err
	}

	return runID, nil
}

func writeStatesCSV(path string, times []float64, states [][]float64) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if len(states) == 0 {
		return nil
	}

	header := []string{"time"}
	for i := range states[0] {
		header = append(header, fmt.Sprintf("x%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, state := range states {
		row := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, v := range state {
			row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// List returns the metadata of every saved run in directory-name order
// (model name, then save time in Unix seconds), as returned by the
// directory listing.
func (s *Store) List() ([]Metadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Metadata{}, nil
		}
		return nil, err
	}

	runs := make([]Metadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}
		var meta Metadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

// Load reads back a run's metadata by ID.
func (s *Store) Load(runID string) (*Metadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}
	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadStates reads back a run's state trajectory by ID.
func (s *Store) LoadStates(runID string) ([][]float64, []float64, error) {
	csvPath := filepath.Join(s.baseDir, runID, "states.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 2 {
		return [][]float64{}, []float64{}, nil
	}

	times := make([]float64, 0, len(records)-1)
	states := make([][]float64, 0, len(records)-1)

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) == 0 {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		times = append(times, t)

		state := make([]float64, 0, len(record)-1)
		for j := 1; j < len(record); j++ {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				continue
			}
			state = append(state, v)
		}
		states = append(states, state)
	}
	return states, times, nil
}
