package fabric

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("MaxRadix", func() {
	It("divides spine ports by uplink ports per leaf", func() {
		radix, err := MaxRadix(144, 8)
		Expect(err).NotTo(HaveOccurred())
		Expect(radix).To(Equal(18))
	})

	It("truncates rather than rounds", func() {
		radix, err := MaxRadix(144, 5)
		Expect(err).NotTo(HaveOccurred())
		Expect(radix).To(Equal(28))
	})

	It("rejects non-positive uplink ports", func() {
		_, err := MaxRadix(144, 0)
		Expect(err).To(HaveOccurred())
	})

	It("rejects non-positive spine ports", func() {
		_, err := MaxRadix(0, 8)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("NodesPerLeaf", func() {
	It("computes nodes from the bandwidth left after uplinks", func() {
		nodes, err := NodesPerLeaf(25600, 200, 6400)
		Expect(err).NotTo(HaveOccurred())
		Expect(nodes).To(Equal(96))
	})

	It("rejects uplink bandwidth exceeding leaf bandwidth", func() {
		_, err := NodesPerLeaf(25600, 200, 30000)
		Expect(err).To(HaveOccurred())
	})

	It("rejects non-positive node bandwidth", func() {
		_, err := NodesPerLeaf(25600, 0, 6400)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Planner", func() {
	It("rejects non-positive node bandwidth", func() {
		_, err := NewPlanner(0)
		Expect(err).To(HaveOccurred())
	})

	Describe("Plan", func() {
		var rows []PlanRow

		BeforeEach(func() {
			planner, err := NewPlanner(200)
			Expect(err).NotTo(HaveOccurred())
			rows, err = planner.Plan()
			Expect(err).NotTo(HaveOccurred())
		})

		It("covers every spine/leaf pairing at every ratio", func() {
			// 4 spines x 2 leaves x 3 ratios
			Expect(rows).To(HaveLen(24))
		})

		It("is deterministically ordered", func() {
			Expect(rows[0].Spine).To(Equal("7804"))
			Expect(rows[0].Leaf).To(Equal("7060X5"))
			Expect(rows[0].Oversubscription).To(Equal("1:1"))
			Expect(rows[len(rows)-1].Spine).To(Equal("7816"))
		})

		It("reproduces the 7804/7060X5 design point at 1:1", func() {
			row := rows[0]
			Expect(row.Uplinks).To(Equal(8))
			Expect(row.WorkloadPorts).To(Equal(56))
			Expect(row.MaxRadix).To(Equal(18))
			Expect(row.NodesPerLeaf).To(Equal(96))
		})

		It("halves uplinks and doubles radix at 2:1", func() {
			var row PlanRow
			for _, r := range rows {
				if r.Spine == "7804" && r.Leaf == "7060X5" && r.Oversubscription == "2:1" {
					row = r
					break
				}
			}
			Expect(row.Uplinks).To(Equal(4))
			Expect(row.MaxRadix).To(Equal(36))
			// fewer uplinks leave more bandwidth for nodes
			Expect(row.NodesPerLeaf).To(Equal(112))
		})
	})
})
