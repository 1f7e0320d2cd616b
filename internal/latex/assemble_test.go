package latex

import (
	"strings"
	"testing"

	"resumetex/internal/resume"
)

func TestAssemble_Envelope(t *testing.T) {
	data := resume.ResumeData{
		Sections: []resume.Section{
			{Type: resume.TypeLongText, Title: "Summary", Content: resume.LongTextContent{Text: "hello"}},
		},
	}

	got := Assemble(data)
	if !strings.HasPrefix(got, `\documentclass`) {
		t.Errorf("document must start with the preamble:\n%s", got[:40])
	}
	if !strings.HasSuffix(got, "\\end{document}\n") {
		t.Errorf("document must end with \\end{document}")
	}
	begin := strings.Index(got, `\begin{document}`)
	body := strings.Index(got, `\section{Summary}`)
	end := strings.Index(got, `\end{document}`)
	if !(begin >= 0 && begin < body && body < end) {
		t.Fatalf("body not inside document environment: begin=%d body=%d end=%d", begin, body, end)
	}
}

func TestAssemble_SkipsEmptyFragments(t *testing.T) {
	data := resume.ResumeData{
		Sections: []resume.Section{
			{Type: resume.TypeLongText, Title: "A", Content: resume.LongTextContent{Text: "first"}},
			{Type: resume.TypeLongText, Title: "Empty", Content: resume.LongTextContent{}},
			{Type: "custom-chart", Title: "Raw", Content: resume.RawContent(`{}`)},
			{Type: resume.TypeLongText, Title: "B", Content: resume.LongTextContent{Text: "second"}},
		},
	}

	got := Assemble(data)
	if strings.Contains(got, `\section{Empty}`) || strings.Contains(got, `\section{Raw}`) {
		t.Errorf("empty fragments must be skipped:\n%s", got)
	}
	a := strings.Index(got, `\section{A}`)
	b := strings.Index(got, `\section{B}`)
	if !(a >= 0 && a < b) {
		t.Fatalf("section order lost: a=%d b=%d", a, b)
	}
	if strings.Contains(got, "\n\n\n") {
		t.Errorf("skipped sections must not leave blank runs:\n%s", got)
	}
}

func TestAssemble_Deterministic(t *testing.T) {
	data := resume.DefaultResumeData()
	first := Assemble(data)
	second := Assemble(data)
	if first != second {
		t.Fatal("same input must produce byte-identical output")
	}
}
