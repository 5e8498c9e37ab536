package report_test

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/oosim/insts"
	"github.com/sarchlab/oosim/report"
)

var _ = Describe("Write", func() {
	It("writes one line per record in fetch order", func() {
		dir, err := os.MkdirTemp("", "report-test")
		Expect(err).NotTo(HaveOccurred())
		defer func() { _ = os.RemoveAll(dir) }()

		r0 := insts.NewRecord(insts.KindRegister, 1, 2, 3)
		for s := insts.StageFetch; s <= insts.StageCommit; s++ {
			r0.Stamp(s, int(s))
		}
		r1 := insts.NewRecord(insts.KindRegister, 4, 5, 6)
		for s := insts.StageFetch; s <= insts.StageCommit; s++ {
			r1.Stamp(s, int(s)+1)
		}

		path := filepath.Join(dir, "output.txt")
		Expect(report.Write(path, []*insts.Record{r0, r1})).To(Succeed())

		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal("0: 0, 1, 2, 3, 4, 5, 6\n1: 1, 2, 3, 4, 5, 6, 7\n"))
	})

	It("writes Unset for any stage that never completed", func() {
		dir, err := os.MkdirTemp("", "report-test")
		Expect(err).NotTo(HaveOccurred())
		defer func() { _ = os.RemoveAll(dir) }()

		r0 := insts.NewRecord(insts.KindRegister, 1, 2, 3)
		r0.Stamp(insts.StageFetch, 0)

		path := filepath.Join(dir, "output.txt")
		Expect(report.Write(path, []*insts.Record{r0})).To(Succeed())

		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal("0: 0, -1, -1, -1, -1, -1, -1\n"))
	})
})

var _ = Describe("Summary", func() {
	It("computes IPC", func() {
		s := report.Summary{Cycles: 10, Instructions: 5}
		Expect(s.IPC()).To(Equal(0.5))
	})

	It("reports zero IPC for zero cycles", func() {
		s := report.Summary{}
		Expect(s.IPC()).To(Equal(float64(0)))
	})

	It("prints a human-readable breakdown", func() {
		var buf bytes.Buffer
		w := bufio.NewWriter(&buf)
		Expect(report.Fprint(w, report.Summary{Cycles: 4, Instructions: 2, RenameStalls: 1})).To(Succeed())
		Expect(buf.String()).To(ContainSubstring("cycles: 4"))
		Expect(buf.String()).To(ContainSubstring("IPC: 0.500"))
	})
})
