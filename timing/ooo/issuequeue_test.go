package ooo_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/oosim/insts"
	"github.com/sarchlab/oosim/timing/ooo"
)

var _ = Describe("IssueQueue", func() {
	var iq *ooo.IssueQueue

	BeforeEach(func() {
		iq = ooo.NewIssueQueue()
	})

	It("selects nothing from an empty queue", func() {
		Expect(iq.Select(4)).To(BeEmpty())
	})

	It("selects only entries whose both operands are ready", func() {
		a := insts.NewRecord(insts.KindRegister, 1, 2, 3)
		b := insts.NewRecord(insts.KindRegister, 4, 5, 6)
		iq.Push(a, true, true)
		iq.Push(b, true, false)

		selected := iq.Select(4)
		Expect(selected).To(ConsistOf(a))
		Expect(iq.Len()).To(Equal(1))
	})

	It("selects oldest-ready-first, capped at width", func() {
		a := insts.NewRecord(insts.KindRegister, 1, 2, 3)
		b := insts.NewRecord(insts.KindRegister, 4, 5, 6)
		c := insts.NewRecord(insts.KindRegister, 7, 8, 9)
		iq.Push(a, true, true)
		iq.Push(b, true, true)
		iq.Push(c, true, true)

		selected := iq.Select(2)
		Expect(selected).To(Equal([]*insts.Record{a, b}))
		Expect(iq.Len()).To(Equal(1))
	})

	It("wakes a dependent entry on a matching tag", func() {
		producer := insts.NewRecord(insts.KindRegister, 1, 2, 3)
		producer.PhysDst = 40

		consumer := insts.NewRecord(insts.KindRegister, 4, 40, 6)
		consumer.PhysSrc1 = 40
		consumer.PhysSrc2 = 0

		iq.Push(consumer, false, true)
		iq.Wakeup([]int{40})

		Expect(iq.Select(4)).To(ConsistOf(consumer))
	})

	It("leaves unmatched entries untouched by wakeup", func() {
		a := insts.NewRecord(insts.KindRegister, 1, 2, 3)
		a.PhysSrc1 = 50
		a.PhysSrc2 = 51
		iq.Push(a, false, false)

		iq.Wakeup([]int{99})

		Expect(iq.Select(4)).To(BeEmpty())
	})
})
