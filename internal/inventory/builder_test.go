package inventory_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/invdyn/internal/inventory"
	"github.com/san-kum/invdyn/internal/mdp"
)

func poissonClosedForm(k int, mu float64) float64 {
	f := 1.0
	for i := 2; i <= k; i++ {
		f *= float64(i)
	}
	return math.Exp(-mu) * math.Pow(mu, float64(k)) / f
}

var _ = Describe("Build", func() {
	var (
		states  mdp.Space
		actions mdp.Space
		params  inventory.Params
		dyn     mdp.Dynamics
	)

	BeforeEach(func() {
		states = mdp.Range(0, 6)
		actions = mdp.Range(0, 4)
		params = inventory.Params{MinState: 0, Mu: 2, Holding: 1, Penalty: 9}
	})

	JustBeforeEach(func() {
		var err error
		dyn, err = inventory.Build(states, actions, params)
		Expect(err).NotTo(HaveOccurred())
	})

	It("skips pairs whose order-up-to level leaves the state space", func() {
		for _, s := range states.Values() {
			for _, a := range actions.Values() {
				_, ok := dyn[mdp.Pair{State: s, Action: a}]
				Expect(ok).To(Equal(states.Contains(s+a)), "pair (%d,%d)", s, a)
			}
		}
	})

	It("creates exactly one entry per admissible pair", func() {
		// s+a <= 5 with a in 0..3: 4+4+4+3+2+1
		Expect(dyn).To(HaveLen(18))
	})

	It("keeps next states between the floor and the order-up-to level", func() {
		for pair, trans := range dyn {
			oul := pair.State + pair.Action
			for out := range trans {
				Expect(out.Next).To(BeNumerically(">=", params.MinState))
				Expect(out.Next).To(BeNumerically("<=", oul))
			}
		}
	})

	It("enumerates demands 0 through oul-min", func() {
		for pair, trans := range dyn {
			oul := pair.State + pair.Action
			Expect(trans).To(HaveLen(inventory.MaxDemand(oul, params.MinState) + 1))
			for d := 0; d <= oul-params.MinState; d++ {
				key := mdp.Outcome{Next: oul - d, Reward: -params.Holding * float64(oul-d)}
				Expect(trans).To(HaveKeyWithValue(key, inventory.PoissonPMF(d, params.Mu)))
			}
		}
	})

	It("matches the worked example for s=2, a=1", func() {
		trans := dyn[mdp.Pair{State: 2, Action: 1}]
		Expect(trans).To(HaveLen(4))
		Expect(trans).To(HaveKeyWithValue(mdp.Outcome{Next: 3, Reward: -3}, inventory.PoissonPMF(0, 2)))
		Expect(trans).To(HaveKeyWithValue(mdp.Outcome{Next: 2, Reward: -2}, inventory.PoissonPMF(1, 2)))
		Expect(trans).To(HaveKeyWithValue(mdp.Outcome{Next: 1, Reward: -1}, inventory.PoissonPMF(2, 2)))
		Expect(trans).To(HaveKeyWithValue(mdp.Outcome{Next: 0, Reward: 0}, inventory.PoissonPMF(3, 2)))

		for d, next := range []int{3, 2, 1, 0} {
			p := trans[mdp.Outcome{Next: next, Reward: -float64(next)}]
			Expect(p).To(BeNumerically("~", poissonClosedForm(d, 2), 1e-12))
		}
	})

	It("drops the tail mass instead of renormalising", func() {
		trans := dyn[mdp.Pair{State: 2, Action: 1}]
		kept := 0.0
		for d := 0; d <= 3; d++ {
			kept += poissonClosedForm(d, 2)
		}
		Expect(trans.Mass()).To(BeNumerically("~", kept, 1e-12))
		Expect(trans.Mass()).To(BeNumerically("<", 1))
	})

	It("is idempotent", func() {
		again, err := inventory.Build(states, actions, params)
		Expect(err).NotTo(HaveOccurred())
		Expect(again.Equal(dyn)).To(BeTrue())
		Expect(again).To(Equal(dyn))
	})

	It("returns an independently owned table", func() {
		again, err := inventory.Build(states, actions, params)
		Expect(err).NotTo(HaveOccurred())
		delete(again, mdp.Pair{State: 0, Action: 0})
		Expect(dyn).To(HaveKey(mdp.Pair{State: 0, Action: 0}))
	})

	Context("with a non-zero truncation floor", func() {
		BeforeEach(func() {
			states = mdp.Interval(-2, 4)
			actions = mdp.Interval(0, 3)
			params.MinState = -2
		})

		It("allows backlog states down to the floor", func() {
			trans := dyn[mdp.Pair{State: 1, Action: 2}]
			Expect(trans).To(HaveLen(6))
			Expect(trans).To(HaveKey(mdp.Outcome{Next: -2, Reward: -params.Penalty * 2}))
			Expect(trans).To(HaveKeyWithValue(mdp.Outcome{Next: -1, Reward: -params.Penalty}, inventory.PoissonPMF(4, params.Mu)))
		})
	})

	Context("with an empty state space", func() {
		BeforeEach(func() {
			states = mdp.NewSpace()
		})

		It("returns an empty table", func() {
			Expect(dyn).NotTo(BeNil())
			Expect(dyn).To(BeEmpty())
		})
	})

	Context("with an empty action space", func() {
		BeforeEach(func() {
			actions = mdp.NewSpace()
		})

		It("returns an empty table", func() {
			Expect(dyn).To(BeEmpty())
		})
	})

	Context("with a floor above every order-up-to level", func() {
		BeforeEach(func() {
			params.MinState = 10
		})

		It("keeps the pairs but enumerates no demands", func() {
			Expect(dyn).To(HaveLen(18))
			for _, trans := range dyn {
				Expect(trans).To(BeEmpty())
			}
		})
	})
})

var _ = Describe("Build parameter validation", func() {
	DescribeTable("rejects invalid parameters",
		func(p inventory.Params, field string, want error) {
			dyn, err := inventory.Build(mdp.Range(0, 3), mdp.Range(0, 2), p)
			Expect(dyn).To(BeNil())
			Expect(err).To(MatchError(want))

			var perr *inventory.ParamError
			Expect(err).To(BeAssignableToTypeOf(perr))
			Expect(err.(*inventory.ParamError).Field).To(Equal(field))
		},
		Entry("zero rate", inventory.Params{Mu: 0}, "mu", inventory.ErrDemandRate),
		Entry("negative rate", inventory.Params{Mu: -1}, "mu", inventory.ErrDemandRate),
		Entry("NaN rate", inventory.Params{Mu: math.NaN()}, "mu", inventory.ErrDemandRate),
		Entry("infinite rate", inventory.Params{Mu: math.Inf(1)}, "mu", inventory.ErrDemandRate),
		Entry("negative holding", inventory.Params{Mu: 1, Holding: -1}, "holding", inventory.ErrNegativeCost),
		Entry("negative penalty", inventory.Params{Mu: 1, Penalty: -0.5}, "penalty", inventory.ErrNegativeCost),
	)
})
