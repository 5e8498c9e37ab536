package trace_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/oosim/insts"
	"github.com/sarchlab/oosim/trace"
)

func writeTrace(dir, contents string) string {
	path := filepath.Join(dir, "test.in")
	Expect(os.WriteFile(path, []byte(contents), 0o644)).To(Succeed())
	return path
}

var _ = Describe("Load", func() {
	var dir string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "trace-test")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		Expect(os.RemoveAll(dir)).To(Succeed())
	})

	It("returns ErrInputNotFound for a missing file", func() {
		_, _, _, err := trace.Load(filepath.Join(dir, "does-not-exist.in"))
		Expect(err).To(MatchError(trace.ErrInputNotFound))
	})

	It("returns ErrMalformedHeader for a non-numeric header", func() {
		path := writeTrace(dir, "not,numeric\n")
		_, _, _, err := trace.Load(path)
		Expect(err).To(MatchError(trace.ErrMalformedHeader))
	})

	It("returns ErrMalformedHeader for an empty file", func() {
		path := writeTrace(dir, "")
		_, _, _, err := trace.Load(path)
		Expect(err).To(MatchError(trace.ErrMalformedHeader))
	})

	It("parses the header and every instruction line", func() {
		path := writeTrace(dir, "34,2\nR,1,2,3\nR,4,5,6\n")
		header, records, skipped, err := trace.Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(header.PhysRegCount).To(Equal(34))
		Expect(header.IssueWidth).To(Equal(2))
		Expect(records).To(HaveLen(2))
		Expect(skipped).To(BeEmpty())
		Expect(records[0].Kind).To(Equal(insts.KindRegister))
		Expect(records[0].Op1).To(Equal(1))
		Expect(records[1].Op3).To(Equal(6))
	})

	It("tolerates a space after the header comma", func() {
		path := writeTrace(dir, "34, 2\nR,1,2,3\n")
		header, _, _, err := trace.Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(header.PhysRegCount).To(Equal(34))
		Expect(header.IssueWidth).To(Equal(2))
	})

	It("skips a line with an unknown kind instead of failing", func() {
		path := writeTrace(dir, "34,2\nR,1,2,3\nX,0,0,0\nR,4,5,6\n")
		_, records, skipped, err := trace.Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(2))
		Expect(skipped).To(HaveLen(1))
		Expect(skipped[0].LineNumber).To(Equal(3))
	})

	It("skips blank lines without treating them as malformed", func() {
		path := writeTrace(dir, "34,2\nR,1,2,3\n\nR,4,5,6\n")
		_, records, skipped, err := trace.Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(2))
		Expect(skipped).To(BeEmpty())
	})
})
