package report

import (
	"encoding/json"
	"os"
)

// ExportData is the full self-contained JSON form of a run, suitable
// for handing to an external plotting tool without going through the
// Store's directory layout.
type ExportData struct {
	Model    string             `json:"model"`
	Order    int                `json:"order"`
	Cores    int                `json:"cores"`
	Parallel bool               `json:"parallel"`
	Dt       float64            `json:"dt"`
	Duration float64            `json:"duration"`
	Steps    int                `json:"steps"`
	Times    []float64          `json:"times"`
	States   [][]float64        `json:"states"`
	Metrics  map[string]float64 `json:"metrics"`
}

func exportData(r *Run) ExportData {
	return ExportData{
		Model:    r.Model,
		Order:    r.Order,
		Cores:    r.Cores,
		Parallel: r.Parallel,
		Dt:       r.Dt,
		Duration: r.Duration,
		Steps:    len(r.Times),
		Times:    r.Times,
		States:   r.States,
		Metrics:  r.Metrics,
	}
}

// ExportJSON writes r to path as a single JSON document.
func ExportJSON(path string, r *Run) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(exportData(r))
}

// ExportJSONStdout writes r to stdout as a single JSON document.
func ExportJSONStdout(r *Run) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(exportData(r))
}
