package latex

import (
	"strings"

	"resumetex/internal/resume"
)

// Assemble 按 sections 顺序生成全部可见片段，过滤掉空片段后
// 拼装成完整的 LaTeX 文档源码。隐藏或为空的 Section 不产生任何空行。
func Assemble(data resume.ResumeData) string {
	fragments := make([]string, 0, len(data.Sections))
	for _, section := range data.Sections {
		fragment := GenerateSection(section)
		if strings.TrimSpace(fragment) == "" {
			continue
		}
		fragments = append(fragments, fragment)
	}

	var b strings.Builder
	b.WriteString(Preamble(data.Settings))
	b.WriteString("\n\\begin{document}\n\n")
	b.WriteString(strings.Join(fragments, "\n\n"))
	b.WriteString("\n\n\\end{document}\n")
	return b.String()
}
