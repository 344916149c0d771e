package odex

import "sort"

// Partition groups the input step counts into the minimum number of
// bins such that no bin's sum exceeds max(steps). It is the
// bin-packing half of the parallel evaluator: each returned bin is
// handed to one worker, so minimizing bin count minimizes the number
// of workers spawned while keeping every worker's load within one
// max-height unit of any other's.
//
// Ordering of bins is unspecified; ordering within a bin is descending
// by the sorted input. The returned bins contain values, not indices.
// Callers map values back to positions in the original step-count
// slice (see [Extrapolator]'s use of this).
func Partition(steps []int) [][]int {
	n := len(steps)
	if n == 0 {
		return nil
	}

	sorted := make([]int, n)
	copy(sorted, steps)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	maxHeight := sorted[0]
	sum := 0
	for _, s := range sorted {
		sum += s
	}

	// Ceil-divide to find the fewest bins that could possibly hold the
	// load at this height.
	first := (sum + maxHeight - 1) / maxHeight

	for k := first; k <= n; k++ {
		if bins := tryPartition(sorted, k, maxHeight); bins != nil {
			return bins
		}
	}
	// Unreachable: k == n always succeeds (each element alone fits,
	// since maxHeight is itself one of the elements).
	return nil
}

// tryPartition attempts a first-fit-descending placement of sorted
// (already descending) into k bins, each capped at maxHeight. It
// returns nil if any element could not be placed.
func tryPartition(sorted []int, k, maxHeight int) [][]int {
	bins := make([][]int, k)
	sums := make([]int, k)
	used := make([]bool, len(sorted))

	for i := 0; i < k; i++ {
		for j, v := range sorted {
			if used[j] {
				continue
			}
			if sums[i]+v <= maxHeight {
				used[j] = true
				sums[i] += v
				bins[i] = append(bins[i], v)
			}
		}
	}

	for _, u := range used {
		if !u {
			return nil
		}
	}
	return bins
}
