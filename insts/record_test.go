package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/oosim/insts"
)

var _ = Describe("Record", func() {
	var r *insts.Record

	BeforeEach(func() {
		r = insts.NewRecord(insts.KindRegister, 1, 2, 3)
	})

	It("starts with every cycle Unset", func() {
		Expect(r.Cycle(insts.StageFetch)).To(BeEquivalentTo(insts.Unset))
		Expect(r.Cycle(insts.StageCommit)).To(BeEquivalentTo(insts.Unset))
	})

	It("starts with renamed operands Unset", func() {
		Expect(r.PhysDst).To(Equal(insts.Unset))
		Expect(r.PhysSrc1).To(Equal(insts.Unset))
		Expect(r.PhysSrc2).To(Equal(insts.Unset))
		Expect(r.FetchIndex).To(Equal(insts.Unset))
	})

	It("is not done before Commit is stamped", func() {
		Expect(r.Done()).To(BeFalse())
	})

	It("stamps a stage's cycle exactly once", func() {
		r.Stamp(insts.StageFetch, 0)
		Expect(r.Cycle(insts.StageFetch)).To(BeEquivalentTo(0))
	})

	It("panics on a double stamp", func() {
		r.Stamp(insts.StageFetch, 0)
		Expect(func() { r.Stamp(insts.StageFetch, 1) }).To(Panic())
	})

	It("reports Done once Commit is stamped", func() {
		for s := insts.StageFetch; s <= insts.StageCommit; s++ {
			r.Stamp(s, int(s))
		}
		Expect(r.Done()).To(BeTrue())
	})
})
