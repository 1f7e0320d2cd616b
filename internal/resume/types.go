package resume

import (
	"encoding/json"
	"fmt"
)

// SectionType 区分简历 Section 的内容模板。
type SectionType string

const (
	TypeHeader        SectionType = "header"
	TypeHeaderName    SectionType = "header-name"
	TypeHeaderContact SectionType = "header-contact"
	TypeLongText      SectionType = "long-text"
	TypeStandardList  SectionType = "standard-list"
	TypeDetailedList  SectionType = "detailed-list"
	TypeGroupedList   SectionType = "grouped-list"
)

// ResumeData 是持久化与生成共用的聚合根。
// Header 是旧版扁平 schema 的遗留字段，迁移后内容会变成普通 Section。
type ResumeData struct {
	Header   *HeaderContent `json:"header,omitempty"`
	Settings *Settings      `json:"settings,omitempty"`
	Sections []Section      `json:"sections"`
}

// Section 表示一个可独立显示、排序的简历区块。
// Content 的具体类型由 Type 决定。
type Section struct {
	ID        string      `json:"id"`
	Type      SectionType `json:"type"`
	Title     string      `json:"title"`
	IsVisible *bool       `json:"isVisible,omitempty"`
	Content   Content     `json:"content"`
}

// Visible 判断 Section 是否参与生成。缺失的 isVisible 视为可见，
// 与编辑器的 `isVisible !== false` 约定保持一致。
func (s Section) Visible() bool { return s.IsVisible == nil || *s.IsVisible }

// Content 由每种 Section 内容变体实现。
type Content interface {
	sectionContent()
}

// Link 是 Header 中的附加链接。
type Link struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	URL       string `json:"url"`
	IsVisible *bool  `json:"isVisible,omitempty"`
}

func (l Link) Visible() bool { return l.IsVisible == nil || *l.IsVisible }

// HeaderContent 同时服务于 header / header-name / header-contact 三种类型。
type HeaderContent struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Linkedin        string `json:"linkedin"`
	LinkedinVisible *bool  `json:"linkedinVisible,omitempty"`
	Github          string `json:"github"`
	GithubVisible   *bool  `json:"githubVisible,omitempty"`
	Links           []Link `json:"links,omitempty"`
}

func (HeaderContent) sectionContent() {}

// LinkedinShown 报告 linkedin 链接是否应被合成到联系行中。
func (c HeaderContent) LinkedinShown() bool {
	return c.Linkedin != "" && (c.LinkedinVisible == nil || *c.LinkedinVisible)
}

// GithubShown 报告 github 链接是否应被合成到联系行中。
func (c HeaderContent) GithubShown() bool {
	return c.Github != "" && (c.GithubVisible == nil || *c.GithubVisible)
}

// LongTextContent 是单段自由文本（如个人总结）。
type LongTextContent struct {
	Text string `json:"text"`
}

func (LongTextContent) sectionContent() {}

// StandardListItem 是简单列表的一项（教育、证书等）。
type StandardListItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	DateFrom    string `json:"dateFrom"`
	DateTo      string `json:"dateTo"`
	Location    string `json:"location"`
	Description string `json:"description,omitempty"`
	IsVisible   *bool  `json:"isVisible,omitempty"`
}

func (i StandardListItem) Visible() bool { return i.IsVisible == nil || *i.IsVisible }

type StandardListContent struct {
	Items []StandardListItem `json:"items"`
}

func (StandardListContent) sectionContent() {}

// Point 是详细列表项下的一条要点。
type Point struct {
	Text      string `json:"text"`
	IsVisible *bool  `json:"isVisible,omitempty"`
}

func (p Point) Visible() bool { return p.IsVisible == nil || *p.IsVisible }

// DetailedListItem 是带要点列表的一项（工作经历、项目）。
type DetailedListItem struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Subtitle  string  `json:"subtitle"`
	DateFrom  string  `json:"dateFrom"`
	DateTo    string  `json:"dateTo"`
	Location  string  `json:"location"`
	Points    []Point `json:"points"`
	IsVisible *bool   `json:"isVisible,omitempty"`
}

func (i DetailedListItem) Visible() bool { return i.IsVisible == nil || *i.IsVisible }

type DetailedListContent struct {
	Items []DetailedListItem `json:"items"`
}

func (DetailedListContent) sectionContent() {}

// GroupItem 是技能分组中的一个条目。
type GroupItem struct {
	Name      string `json:"name"`
	IsVisible *bool  `json:"isVisible,omitempty"`
}

func (g GroupItem) Visible() bool { return g.IsVisible == nil || *g.IsVisible }

// Group 是按类别聚合的条目集合。
type Group struct {
	ID        string      `json:"id"`
	Category  string      `json:"category"`
	Items     []GroupItem `json:"items"`
	IsVisible *bool       `json:"isVisible,omitempty"`
}

func (g Group) Visible() bool { return g.IsVisible == nil || *g.IsVisible }

type GroupedListContent struct {
	Groups []Group `json:"groups"`
}

func (GroupedListContent) sectionContent() {}

// RawContent 保留未知类型 Section 的原始 JSON，保证读写往返无损。
// 生成时未知类型渲染为空串。
type RawContent json.RawMessage

func (RawContent) sectionContent() {}

func (r RawContent) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("null"), nil
	}
	return json.RawMessage(r).MarshalJSON()
}

type sectionEnvelope struct {
	ID        string          `json:"id"`
	Type      SectionType     `json:"type"`
	Title     string          `json:"title"`
	IsVisible *bool           `json:"isVisible,omitempty"`
	Content   json.RawMessage `json:"content"`
}

// UnmarshalJSON 按 type 标签把 content 解码成对应变体。
func (s *Section) UnmarshalJSON(data []byte) error {
	var env sectionEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("decode section envelope: %w", err)
	}

	s.ID = env.ID
	s.Type = env.Type
	s.Title = env.Title
	s.IsVisible = env.IsVisible
	s.Content = decodeContent(env.Type, env.Content)
	return nil
}

func (s Section) MarshalJSON() ([]byte, error) {
	content, err := json.Marshal(s.Content)
	if err != nil {
		return nil, fmt.Errorf("encode section %q content: %w", s.ID, err)
	}
	return json.Marshal(sectionEnvelope{
		ID:        s.ID,
		Type:      s.Type,
		Title:     s.Title,
		IsVisible: s.IsVisible,
		Content:   content,
	})
}

// decodeContent 尽力把原始 JSON 解析成 type 对应的变体。
// 未知类型或形状不符时退化为 RawContent，由生成端按空片段处理。
func decodeContent(t SectionType, raw json.RawMessage) Content {
	if len(raw) == 0 {
		raw = json.RawMessage("null")
	}

	switch t {
	case TypeHeader, TypeHeaderName, TypeHeaderContact:
		var c HeaderContent
		if err := json.Unmarshal(raw, &c); err == nil {
			return c
		}
	case TypeLongText:
		var c LongTextContent
		if err := json.Unmarshal(raw, &c); err == nil {
			return c
		}
	case TypeStandardList:
		var c StandardListContent
		if err := json.Unmarshal(raw, &c); err == nil {
			return c
		}
	case TypeDetailedList:
		var c DetailedListContent
		if err := json.Unmarshal(raw, &c); err == nil {
			return c
		}
	case TypeGroupedList:
		var c GroupedListContent
		if err := json.Unmarshal(raw, &c); err == nil {
			return c
		}
	}

	return RawContent(append(json.RawMessage(nil), raw...))
}
