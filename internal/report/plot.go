package report

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
)

// captions gives a few demo models human-readable per-component axis
// labels; anything else falls back to a generic x<i> label.
var captions = map[string][]string{
	"pendulum":  {"theta (angle)", "omega (angular velocity)"},
	"vanderpol": {"x", "y"},
	"lorenz":    {"x", "y", "z"},
	"robertson": {"a", "b", "c"},
}

func caption(model string, varIdx int) string {
	if names, ok := captions[model]; ok && varIdx < len(names) {
		return names[varIdx]
	}
	return fmt.Sprintf("x%d vs time", varIdx)
}

// PlotStates prints one asciigraph plot per state component, up to
// maxPlots components, to stdout.
func PlotStates(model string, states [][]float64, maxPlots int) error {
	if len(states) == 0 {
		return fmt.Errorf("report: no data to plot")
	}

	numVars := len(states[0])
	if numVars > maxPlots {
		numVars = maxPlots
	}

	for varIdx := 0; varIdx < numVars; varIdx++ {
		data := make([]float64, len(states))
		for i := range states {
			if varIdx < len(states[i]) {
				data[i] = states[i][varIdx]
			}
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(caption(model, varIdx)),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

// PlotBinHeights prints a single asciigraph bar-style plot of a
// partitioner's bin heights, letting a reader see at a glance how
// evenly (or not) a (order, cores) scheme balances its workers.
func PlotBinHeights(bins [][]int) {
	heights := make([]float64, len(bins))
	for i, bin := range bins {
		sum := 0
		for _, v := range bin {
			sum += v
		}
		heights[i] = float64(sum)
	}
	graph := asciigraph.Plot(heights,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Caption("bin heights (sub-integration step-count sum per worker)"),
	)
	fmt.Println(graph)
}
