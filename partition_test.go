package odex_test

import (
	"sort"

	"github.com/kestrel-sim/odex"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// flatten collects and sorts every value across all bins for
// comparison against the original input multiset.
func flatten(bins [][]int) []int {
	var out []int
	for _, b := range bins {
		out = append(out, b...)
	}
	sort.Ints(out)
	return out
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }

var _ = Describe("Partition", func() {
	It("covers the input multiset exactly, each bin within max height", func() {
		input := []int{2, 4, 6, 8, 10, 12, 14}
		bins := odex.Partition(input)

		want := append([]int{}, input...)
		sort.Ints(want)
		Expect(flatten(bins)).To(Equal(want))

		maxHeight := 14
		for _, b := range bins {
			sum := 0
			for _, v := range b {
				sum += v
			}
			Expect(sum).To(BeNumerically("<=", maxHeight))
		}
		Expect(len(bins)).To(BeNumerically("<=", 4))
	})

	It("packs {2,16,18,20} into exactly 3 bins each within height 20", func() {
		input := []int{2, 16, 18, 20}
		bins := odex.Partition(input)

		Expect(bins).To(HaveLen(3))

		want := append([]int{}, input...)
		sort.Ints(want)
		Expect(flatten(bins)).To(Equal(want))

		for _, b := range bins {
			sum := 0
			for _, v := range b {
				sum += v
			}
			Expect(sum).To(BeNumerically("<=", 20))
		}
	})

	DescribeTable("bin count is the minimal k for which first-fit-descending fits",
		func(input []int) {
			bins := odex.Partition(input)

			sorted := append([]int{}, input...)
			sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
			maxHeight := sorted[0]
			sum := 0
			for _, v := range sorted {
				sum += v
			}
			lowerBound := ceilDiv(sum, maxHeight)

			Expect(len(bins)).To(BeNumerically(">=", lowerBound))
			Expect(len(bins)).To(BeNumerically("<=", len(input)))

			// No (len(bins)-1)-bin packing can possibly fit at this
			// height: verify by construction that every input in this
			// table is already at its minimal packing by re-deriving
			// the partition from every valid k in [lowerBound, len(bins)]
			// and confirming none smaller than len(bins) succeeds.
			for k := lowerBound; k < len(bins); k++ {
				Expect(firstFitDescendingFits(sorted, k, maxHeight)).To(BeFalse())
			}
		},
		Entry("extrapolation steps, order 8 cores 3", []int{2, 16, 18, 20}),
		Entry("extrapolation steps, order 12 cores 4", []int{2, 8, 12, 14, 16, 20}),
		Entry("dense even run", []int{2, 4, 6, 8, 10, 12, 14, 16}),
	)

	It("handles a single element", func() {
		bins := odex.Partition([]int{7})
		Expect(bins).To(HaveLen(1))
		Expect(bins[0]).To(Equal([]int{7}))
	})

	It("returns nil for empty input", func() {
		Expect(odex.Partition(nil)).To(BeNil())
	})
})

// firstFitDescendingFits re-implements the package's internal
// tryPartition check from the test side, to validate minimality
// without reaching into unexported API.
func firstFitDescendingFits(sortedDesc []int, k, maxHeight int) bool {
	sums := make([]int, k)
	used := make([]bool, len(sortedDesc))
	for i := 0; i < k; i++ {
		for j, v := range sortedDesc {
			if used[j] {
				continue
			}
			if sums[i]+v <= maxHeight {
				used[j] = true
				sums[i] += v
			}
		}
	}
	for _, u := range used {
		if !u {
			return false
		}
	}
	return true
}
