package latex

import (
	"strings"
	"testing"

	"resumetex/internal/resume"
)

func TestPreamble_NilSettingsUsesDefaults(t *testing.T) {
	got := Preamble(nil)

	if !strings.Contains(got, `\documentclass[a4paper,10pt]{article}`) {
		t.Errorf("default document class:\n%s", got)
	}
	if !strings.Contains(got, `\usepackage[top=0.75in, right=0.75in, bottom=0.75in, left=0.75in]{geometry}`) {
		t.Errorf("default margins:\n%s", got)
	}
	if !strings.Contains(got, `\usepackage{lmodern}`) {
		t.Errorf("default font package:\n%s", got)
	}
	if strings.Contains(got, `\baselinestretch`) {
		t.Errorf("no line height set, must not emit baselinestretch:\n%s", got)
	}
}

func TestPreamble_HonorsSettings(t *testing.T) {
	s := resume.Settings{
		Font:       resume.FontFira,
		FontSize:   "11pt",
		Margin:     resume.SideMargin(resume.MarginSides{Top: 0.6, Right: 0.75, Bottom: 0.6, Left: 0.75}),
		PaperSize:  resume.PaperLetter,
		LineHeight: 1.15,
	}

	got := Preamble(&s)
	if !strings.Contains(got, `\documentclass[letterpaper,11pt]{article}`) {
		t.Errorf("document class:\n%s", got)
	}
	if !strings.Contains(got, `\usepackage[sfdefault]{FiraSans}`) {
		t.Errorf("font package:\n%s", got)
	}
	if !strings.Contains(got, `\usepackage[top=0.6in, right=0.75in, bottom=0.6in, left=0.75in]{geometry}`) {
		t.Errorf("margins:\n%s", got)
	}
	if !strings.Contains(got, `\renewcommand{\baselinestretch}{1.15}`) {
		t.Errorf("line height:\n%s", got)
	}
}

func TestPreamble_UniformMarginBroadcasts(t *testing.T) {
	s := resume.DefaultSettings()
	s.Margin = resume.UniformMargin(0.5)

	got := Preamble(&s)
	if !strings.Contains(got, `\usepackage[top=0.5in, right=0.5in, bottom=0.5in, left=0.5in]{geometry}`) {
		t.Errorf("uniform margin:\n%s", got)
	}
}

func TestPreamble_UnknownValuesFallBack(t *testing.T) {
	s := resume.Settings{Font: "comic-sans", FontSize: "13pt", PaperSize: "a5"}

	got := Preamble(&s)
	if !strings.Contains(got, `\documentclass[a4paper,10pt]{article}`) {
		t.Errorf("unknown paper/size must fall back:\n%s", got)
	}
	if !strings.Contains(got, `\usepackage{lmodern}`) {
		t.Errorf("unknown font must fall back to serif:\n%s", got)
	}
}

func TestPreamble_DefinesBodyMacros(t *testing.T) {
	got := Preamble(nil)
	for _, macro := range []string{`\newcommand{\resumeItem}`, `\newcommand{\resumeSubheading}`} {
		if !strings.Contains(got, macro) {
			t.Errorf("missing %s in preamble", macro)
		}
	}
}
