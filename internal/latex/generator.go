// Package latex 将结构化简历数据转换为可编译的 LaTeX 源码。
//
// 生成是纯函数：同样的输入得到字节一致的输出。用户文本按原样嵌入，
// 不做 LaTeX 特殊字符转义（与编辑器前端的行为保持一致，属已知限制）。
package latex

import (
	"fmt"
	"strings"

	"resumetex/internal/resume"
)

// GenerateSection 为单个 Section 生成 LaTeX 片段。
// 隐藏的 Section、未知类型以及过滤后为空的内容都得到空串。
func GenerateSection(s resume.Section) string {
	if !s.Visible() {
		return ""
	}

	switch c := s.Content.(type) {
	case resume.HeaderContent:
		switch s.Type {
		case resume.TypeHeaderName:
			return generateHeaderName(c)
		case resume.TypeHeaderContact:
			return generateHeaderContact(c)
		default:
			return generateHeader(c)
		}
	case resume.LongTextContent:
		return generateLongText(s.Title, c)
	case resume.StandardListContent:
		return generateStandardList(s.Title, c)
	case resume.DetailedListContent:
		return generateDetailedList(s.Title, c)
	case resume.GroupedListContent:
		return generateGroupedList(s.Title, c)
	default:
		return ""
	}
}

// formatURL 保证链接目标带 scheme；裸域名补上 https://。
func formatURL(raw string) string {
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return "https://" + raw
}

// dateRange 渲染时间段：没有结束时间时只保留开始时间。
func dateRange(from, to string) string {
	if to == "" {
		return from
	}
	return from + " – " + to
}

func hyperlink(url, text string) string {
	return fmt.Sprintf(`\href{%s}{\underline{%s}}`, formatURL(url), text)
}

// contactParts 收集联系行的各个片段：电话、邮箱、链接集合。
// 链接集合 = 合成的 linkedin/github 链接 ∪ 显式可见的附加链接。
func contactParts(c resume.HeaderContent, fixedLabels bool) []string {
	parts := make([]string, 0, 4+len(c.Links))

	if c.Phone != "" {
		parts = append(parts, c.Phone)
	}
	if c.Email != "" {
		parts = append(parts, fmt.Sprintf(`\href{mailto:%s}{\underline{%s}}`, c.Email, c.Email))
	}
	if c.LinkedinShown() {
		text := c.Linkedin
		if fixedLabels {
			text = "LinkedIn"
		}
		parts = append(parts, hyperlink(c.Linkedin, text))
	}
	if c.GithubShown() {
		text := c.Github
		if fixedLabels {
			text = "GitHub"
		}
		parts = append(parts, hyperlink(c.Github, text))
	}
	for _, link := range c.Links {
		if !link.Visible() {
			continue
		}
		parts = append(parts, hyperlink(link.URL, link.Text))
	}

	return parts
}

func generateHeader(c resume.HeaderContent) string {
	contact := strings.Join(contactParts(c, false), ` $|$ `)

	var b strings.Builder
	b.WriteString("\\begin{center}\n")
	fmt.Fprintf(&b, "    \\textbf{\\Huge \\scshape %s} \\\\ \\vspace{1pt}\n", c.Name)
	fmt.Fprintf(&b, "    \\small %s\n", contact)
	b.WriteString("\\end{center}")
	return b.String()
}

func generateHeaderName(c resume.HeaderContent) string {
	var b strings.Builder
	b.WriteString("\\begin{center}\n")
	fmt.Fprintf(&b, "    \\textbf{\\Huge \\scshape %s}\n", c.Name)
	b.WriteString("\\end{center}")
	return b.String()
}

func generateHeaderContact(c resume.HeaderContent) string {
	contact := strings.Join(contactParts(c, true), ` $|$ `)

	var b strings.Builder
	b.WriteString("\\begin{center}\n")
	fmt.Fprintf(&b, "    \\small %s\n", contact)
	b.WriteString("\\end{center}")
	return b.String()
}

func generateLongText(title string, c resume.LongTextContent) string {
	if c.Text == "" {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\\section{%s}\n", title)
	b.WriteString("  \\begin{itemize}[leftmargin=0.15in, label={}]\n")
	b.WriteString("    \\small{\\item{\n")
	fmt.Fprintf(&b, "     %s\n", c.Text)
	b.WriteString("    }}\n")
	b.WriteString("  \\end{itemize}")
	return b.String()
}

func subheading(b *strings.Builder, title, location, subtitle, date string) {
	b.WriteString("    \\resumeSubheading\n")
	fmt.Fprintf(b, "      {%s}{%s}\n", title, location)
	fmt.Fprintf(b, "      {%s}{%s}\n", subtitle, date)
}

func generateStandardList(title string, c resume.StandardListContent) string {
	var items strings.Builder
	for _, item := range c.Items {
		if !item.Visible() {
			continue
		}
		subheading(&items, item.Title, item.Location, item.Subtitle, dateRange(item.DateFrom, item.DateTo))
		if item.Description != "" {
			fmt.Fprintf(&items, "      \\resumeItem{%s}\n", item.Description)
		}
	}
	if items.Len() == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\\section{%s}\n", title)
	b.WriteString("  \\begin{itemize}[leftmargin=0.15in, label={}]\n")
	b.WriteString(items.String())
	b.WriteString("  \\end{itemize}")
	return b.String()
}

func generateDetailedList(title string, c resume.DetailedListContent) string {
	var items strings.Builder
	for _, item := range c.Items {
		if !item.Visible() {
			continue
		}
		subheading(&items, item.Title, item.Location, item.Subtitle, dateRange(item.DateFrom, item.DateTo))
		items.WriteString("      \\begin{itemize}\n")
		for _, p := range item.Points {
			if !p.Visible() {
				continue
			}
			fmt.Fprintf(&items, "        \\resumeItem{%s}\n", p.Text)
		}
		items.WriteString("      \\end{itemize}\n")
	}
	if items.Len() == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\\section{%s}\n", title)
	b.WriteString("  \\begin{itemize}[leftmargin=0.15in, label={}]\n")
	b.WriteString(items.String())
	b.WriteString("  \\end{itemize}")
	return b.String()
}

func generateGroupedList(title string, c resume.GroupedListContent) string {
	var lines []string
	for _, group := range c.Groups {
		if !group.Visible() {
			continue
		}
		names := make([]string, 0, len(group.Items))
		for _, item := range group.Items {
			if !item.Visible() {
				continue
			}
			names = append(names, item.Name)
		}
		lines = append(lines, fmt.Sprintf("     \\textbf{%s}{: %s} \\\\", group.Category, strings.Join(names, ", ")))
	}
	if len(lines) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\\section{%s}\n", title)
	b.WriteString(" \\begin{itemize}[leftmargin=0.15in, label={}]\n")
	b.WriteString("    \\small{\\item{\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n    }}\n")
	b.WriteString(" \\end{itemize}")
	return b.String()
}
