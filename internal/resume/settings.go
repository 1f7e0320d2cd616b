package resume

import (
	"encoding/json"
	"fmt"
)

// Font 是预设字体枚举，对应生成端的宏包选择表。
type Font string

const (
	FontSerif     Font = "serif"
	FontSans      Font = "sans"
	FontCormorant Font = "cormorant"
	FontCharter   Font = "charter"
	FontFira      Font = "fira"
	FontRoboto    Font = "roboto"
	FontNoto      Font = "noto"
	FontSource    Font = "source"
)

// PaperSize 是页面尺寸枚举。
type PaperSize string

const (
	PaperA4     PaperSize = "a4"
	PaperLetter PaperSize = "letter"
)

// Settings 描述文档级样式，只影响生成的导言区，不影响正文内容。
type Settings struct {
	Font       Font      `json:"font"`
	FontSize   string    `json:"fontSize"`
	Margin     Margin    `json:"margin"`
	PaperSize  PaperSize `json:"paperSize"`
	LineHeight float64   `json:"lineHeight,omitempty"`
}

// MarginSides 是按边指定的页边距（英寸）。
type MarginSides struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Margin 接受两种 JSON 形态：单个数字（四边同值）或按边对象。
type Margin struct {
	uniform *float64
	sides   *MarginSides
}

// UniformMargin 构造四边同值的 Margin。
func UniformMargin(inches float64) Margin {
	return Margin{uniform: &inches}
}

// SideMargin 构造按边指定的 Margin。
func SideMargin(sides MarginSides) Margin {
	return Margin{sides: &sides}
}

// IsZero 报告 Margin 是否从未被设置过。
func (m Margin) IsZero() bool { return m.uniform == nil && m.sides == nil }

// Resolve 把 Margin 展开成四边值；未设置时返回 fallback。
// 单个数字会广播到四边。
func (m Margin) Resolve(fallback MarginSides) MarginSides {
	switch {
	case m.sides != nil:
		return *m.sides
	case m.uniform != nil:
		v := *m.uniform
		return MarginSides{Top: v, Right: v, Bottom: v, Left: v}
	default:
		return fallback
	}
}

func (m *Margin) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		m.uniform = nil
		m.sides = nil
		return nil
	}

	var uniform float64
	if err := json.Unmarshal(data, &uniform); err == nil {
		m.uniform = &uniform
		m.sides = nil
		return nil
	}

	var sides MarginSides
	if err := json.Unmarshal(data, &sides); err != nil {
		return fmt.Errorf("decode margin: %w", err)
	}
	m.sides = &sides
	m.uniform = nil
	return nil
}

func (m Margin) MarshalJSON() ([]byte, error) {
	switch {
	case m.sides != nil:
		return json.Marshal(*m.sides)
	case m.uniform != nil:
		return json.Marshal(*m.uniform)
	default:
		return []byte("null"), nil
	}
}
