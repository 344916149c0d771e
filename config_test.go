package odex_test

import (
	"math"

	"github.com/kestrel-sim/odex"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("extrapolation scheme table", func() {
	DescribeTable("config round-trip",
		func(order, cores int) {
			cfg, err := odex.Lookup(order, cores)
			Expect(err).NotTo(HaveOccurred())

			Expect(cfg.Steps).To(HaveLen(len(cfg.Weights)))

			sum := 0.0
			for _, w := range cfg.Weights {
				sum += w
			}
			Expect(sum).To(BeNumerically("~", 1.0, 1e-12))

			for _, s := range cfg.Steps {
				Expect(s).To(BeNumerically(">=", 2))
				Expect(s % 2).To(Equal(0))
			}
		},
		Entry("order 8, cores 3", 8, 3),
		Entry("order 8, cores 6", 8, 6),
		Entry("order 8, cores 8", 8, 8),
		Entry("order 12, cores 4", 12, 4),
		Entry("order 12, cores 8", 12, 8),
		Entry("order 16, cores 5", 16, 5),
	)

	It("reports the documented sub-integration counts", func() {
		counts := map[[2]int]int{
			{8, 3}: 4, {8, 6}: 11, {8, 8}: 15,
			{12, 4}: 6, {12, 8}: 15, {16, 5}: 8,
		}
		for oc, want := range counts {
			cfg, err := odex.Lookup(oc[0], oc[1])
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Steps).To(HaveLen(want))
		}
	})

	It("reports the documented stability boundaries", func() {
		isbn := map[[2]int]float32{
			{8, 3}: 0.5799, {8, 6}: 0.7675, {8, 8}: 0.8176,
			{12, 4}: 0.4515, {12, 8}: 0.7116, {16, 5}: 0.4162,
		}
		for oc, want := range isbn {
			cfg, err := odex.Lookup(oc[0], oc[1])
			Expect(err).NotTo(HaveOccurred())
			Expect(math.Abs(float64(cfg.ISBn-want))).To(BeNumerically("<", 1e-6))
		}
	})

	It("rejects unsupported (order, cores) pairs", func() {
		_, err := odex.Lookup(8, 4)
		Expect(err).To(MatchError(odex.ErrNoConfig))

		_, err = odex.Lookup(99, 1)
		Expect(err).To(MatchError(odex.ErrNoConfig))
	})

	It("returns independent slices on each call", func() {
		a, err := odex.Lookup(8, 3)
		Expect(err).NotTo(HaveOccurred())
		b, err := odex.Lookup(8, 3)
		Expect(err).NotTo(HaveOccurred())

		a.Steps[0] = -1
		Expect(b.Steps[0]).NotTo(Equal(-1))
	})
})
