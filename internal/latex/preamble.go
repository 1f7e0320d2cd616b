package latex

import (
	"fmt"
	"strings"

	"resumetex/internal/resume"
)

// defaultMargins 是未指定页边距时的取值（四边统一 0.75 英寸）。
var defaultMargins = resume.MarginSides{Top: 0.75, Right: 0.75, Bottom: 0.75, Left: 0.75}

// fontPackage 把字体枚举映射到宏包指令。未知取值回落到 serif。
func fontPackage(font resume.Font) string {
	switch font {
	case resume.FontSans:
		return "\\usepackage{helvet}\n\\renewcommand{\\familydefault}{\\sfdefault}"
	case resume.FontCormorant:
		return "\\usepackage{CormorantGaramond}"
	case resume.FontCharter:
		return "\\usepackage{charter}"
	case resume.FontFira:
		return "\\usepackage[sfdefault]{FiraSans}"
	case resume.FontRoboto:
		return "\\usepackage[sfdefault]{roboto}"
	case resume.FontNoto:
		return "\\usepackage[sfdefault]{noto-sans}"
	case resume.FontSource:
		return "\\usepackage[default]{sourcesanspro}"
	default:
		return "\\usepackage{lmodern}"
	}
}

func paperOption(size resume.PaperSize) string {
	switch size {
	case resume.PaperLetter, "letterpaper":
		return "letterpaper"
	default:
		return "a4paper"
	}
}

func fontSizeOption(size string) string {
	switch size {
	case "11pt", "12pt":
		return size
	default:
		return "10pt"
	}
}

// Preamble 根据样式设置生成文档导言区，包含页面类选项、字体、
// 页边距以及正文片段依赖的 \resumeSubheading / \resumeItem 宏。
func Preamble(settings *resume.Settings) string {
	s := resume.DefaultSettings()
	if settings != nil {
		s = *settings
	}

	margins := s.Margin.Resolve(defaultMargins)

	var b strings.Builder
	fmt.Fprintf(&b, "\\documentclass[%s,%s]{article}\n\n", paperOption(s.PaperSize), fontSizeOption(s.FontSize))

	b.WriteString("\\usepackage[empty]{fullpage}\n")
	b.WriteString("\\usepackage{titlesec}\n")
	b.WriteString("\\usepackage{enumitem}\n")
	b.WriteString("\\usepackage[hidelinks]{hyperref}\n")
	b.WriteString("\\usepackage[usenames,dvipsnames]{color}\n")
	b.WriteString(fontPackage(s.Font))
	b.WriteString("\n\\usepackage[T1]{fontenc}\n")
	fmt.Fprintf(&b, "\\usepackage[top=%gin, right=%gin, bottom=%gin, left=%gin]{geometry}\n",
		margins.Top, margins.Right, margins.Bottom, margins.Left)
	if s.LineHeight > 0 {
		fmt.Fprintf(&b, "\\renewcommand{\\baselinestretch}{%g}\n", s.LineHeight)
	}
	b.WriteString("\\urlstyle{same}\n")
	b.WriteString("\\raggedbottom\n")
	b.WriteString("\\raggedright\n")
	b.WriteString("\\setlength{\\tabcolsep}{0in}\n\n")

	b.WriteString("\\titleformat{\\section}{\n" +
		"  \\vspace{-4pt}\\scshape\\raggedright\\large\n" +
		"}{}{0em}{}[\\color{black}\\titlerule \\vspace{-5pt}]\n\n")

	b.WriteString("\\newcommand{\\resumeItem}[1]{\n" +
		"  \\item\\small{\n" +
		"    {#1 \\vspace{-2pt}}\n" +
		"  }\n" +
		"}\n\n")

	b.WriteString("\\newcommand{\\resumeSubheading}[4]{\n" +
		"  \\vspace{-2pt}\\item\n" +
		"    \\begin{tabular*}{0.97\\textwidth}[t]{l@{\\extracolsep{\\fill}}r}\n" +
		"      \\textbf{#1} & #2 \\\\\n" +
		"      \\textit{\\small#3} & \\textit{\\small #4} \\\\\n" +
		"    \\end{tabular*}\\vspace{-7pt}\n" +
		"}\n")

	return b.String()
}
