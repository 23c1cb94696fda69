package inventory_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/invdyn/internal/inventory"
)

var _ = Describe("Reward", func() {
	DescribeTable("charges holding on leftover stock and penalty on backlog",
		func(oul, d int, want float64) {
			Expect(inventory.Reward(oul, d, 1, 9)).To(Equal(want))
		},
		Entry("leftover stock", 3, 0, -3.0),
		Entry("partial sale", 3, 2, -1.0),
		Entry("sold out", 3, 3, 0.0),
		Entry("backlog", 3, 5, -18.0),
		Entry("negative level", -1, 1, -18.0),
	)
})

var _ = Describe("MaxDemand", func() {
	It("is the distance from the order-up-to level to the floor", func() {
		Expect(inventory.MaxDemand(3, 0)).To(Equal(3))
		Expect(inventory.MaxDemand(3, -2)).To(Equal(5))
		Expect(inventory.MaxDemand(1, 4)).To(Equal(-3))
	})
})

var _ = Describe("Demand", func() {
	It("is zero below the support", func() {
		Expect(inventory.NewDemand(2).PMF(-1)).To(BeZero())
	})

	It("reports the tail beyond a cut-off", func() {
		dem := inventory.NewDemand(2)
		kept := 0.0
		for k := 0; k <= 3; k++ {
			kept += dem.PMF(k)
		}
		Expect(dem.Tail(3)).To(BeNumerically("~", 1-kept, 1e-12))
		Expect(dem.Tail(-1)).To(Equal(1.0))
		Expect(dem.Mean()).To(Equal(2.0))
	})
})
