package stability_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/acuellar/bargecalc/internal/hull"
	"github.com/acuellar/bargecalc/internal/naval"
	"github.com/acuellar/bargecalc/internal/stability"
)

func barge() hull.Parameters {
	return hull.Parameters{
		TotalLength: 0.45,
		Beam:        0.172,
		Height:      0.156,
		BowLength:   0.05,
		DesignDraft: 0.055,
	}
}

func fullLoad() naval.MassDistribution {
	return naval.MassDistribution{
		Hull:        naval.MassItem{Mass: 1.2, CGHeight: 0.04},
		Electronics: naval.MassItem{Mass: 1.0, CGHeight: 0.03},
		Cargo:       naval.MassItem{Mass: 2.5, CGHeight: 0.06},
	}
}

var _ = Describe("Analyze", func() {
	Context("at the design draft under full load", func() {
		var res stability.Result

		BeforeEach(func() {
			var err error
			res, err = stability.Analyze(barge(), fullLoad(), naval.FreshWater(),
				stability.Options{Draft: 0.055})
			Expect(err).NotTo(HaveOccurred())
		})

		It("places the buoyancy centroid below mid-draft", func() {
			Expect(res.KB).To(BeNumerically("~", 0.0269, 5e-4))
			Expect(res.KB).To(BeNumerically("<", res.Draft/2))
		})

		It("computes BM from the two-section waterplane inertia", func() {
			Expect(res.BM).To(BeNumerically("~", 0.0432, 5e-4))
		})

		It("derives KG from the mass budget", func() {
			Expect(res.KG).To(BeNumerically("~", 0.0485, 5e-4))
		})

		It("satisfies GM = KB + BM - KG", func() {
			Expect(res.GM).To(BeNumerically("~", res.KB+res.BM-res.KG, 1e-12))
			Expect(res.GM).To(BeNumerically("~", 0.0216, 5e-4))
		})

		It("rates a 2 cm GM marginal under the 5 cm threshold", func() {
			Expect(res.Rating).To(Equal(stability.Marginal))
			Expect(res.Rating.String()).To(Equal("marginal"))
		})

		It("predicts a finite heel for an offset load", func() {
			heel := res.HeelAngle(0.5, 0.02)
			Expect(math.IsNaN(heel)).To(BeFalse())
			Expect(heel).To(BeNumerically(">", 0))
			Expect(heel).To(BeNumerically("<", 90))
		})

		It("returns a positive righting moment when heeled", func() {
			Expect(res.RightingMoment(5)).To(BeNumerically(">", 0))
			Expect(res.RightingMoment(0)).To(BeNumerically("~", 0, 1e-12))
		})
	})

	Context("when no draft override is given", func() {
		It("analyzes at the equilibrium draft", func() {
			res, err := stability.Analyze(barge(), fullLoad(), naval.FreshWater(),
				stability.Options{})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Draft).To(BeNumerically("~", 0.0656, 2e-4))
		})
	})

	Context("with a raised center of gravity", func() {
		It("goes unstable and reports heel as NaN", func() {
			m := fullLoad()
			m.Cargo.CGHeight = 0.30
			res, err := stability.Analyze(barge(), m, naval.FreshWater(),
				stability.Options{Draft: 0.055})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.GM).To(BeNumerically("<", 0))
			Expect(res.Rating).To(Equal(stability.Unstable))
			Expect(math.IsNaN(res.HeelAngle(0.5, 0.02))).To(BeTrue())
			Expect(res.MaxSafeHeel()).To(BeZero())
		})
	})

	Context("with invalid options", func() {
		It("rejects a negative GM threshold", func() {
			_, err := stability.Analyze(barge(), fullLoad(), naval.FreshWater(),
				stability.Options{GMThreshold: -0.01})
			Expect(err).To(HaveOccurred())
		})
	})
})

var _ = Describe("RectangularBM", func() {
	It("overestimates the two-section BM", func() {
		p := barge()
		geom, err := p.Compute(0.055)
		Expect(err).NotTo(HaveOccurred())

		coarse, err := stability.RectangularBM(p, geom)
		Expect(err).NotTo(HaveOccurred())
		Expect(coarse).To(BeNumerically("~", 0.0484, 5e-4))

		res, err := stability.Analyze(p, fullLoad(), naval.FreshWater(),
			stability.Options{Draft: 0.055})
		Expect(err).NotTo(HaveOccurred())
		Expect(coarse).To(BeNumerically(">", res.BM))
	})
})

var _ = Describe("GMCurve", func() {
	It("reports GM falling as cargo rises at a high CG", func() {
		m := fullLoad()
		m.Cargo.CGHeight = 0.10
		curve, err := stability.GMCurve(barge(), m, naval.FreshWater(), 0, 4, 9)
		Expect(err).NotTo(HaveOccurred())
		Expect(curve).To(HaveLen(9))
		Expect(curve[0].Cargo).To(BeZero())
		Expect(curve[8].Cargo).To(BeNumerically("~", 4.0, 1e-9))
		Expect(curve[8].GM).To(BeNumerically("<", curve[0].GM))
	})

	It("rejects degenerate sweep ranges", func() {
		_, err := stability.GMCurve(barge(), fullLoad(), naval.FreshWater(), 2, 1, 5)
		Expect(err).To(HaveOccurred())
		_, err = stability.GMCurve(barge(), fullLoad(), naval.FreshWater(), 0, 4, 1)
		Expect(err).To(HaveOccurred())
	})
})
