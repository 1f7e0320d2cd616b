package resume

import (
	"encoding/json"
)

// legacySection 描述旧版扁平 schema 中一个顶层键的迁移规则。
type legacySection struct {
	key   string
	typ   SectionType
	title string
	// mapper 把旧内容转换成当前变体；返回 error 时该键被跳过。
	mapper func(raw json.RawMessage) (Content, error)
}

// legacyOrder 同时是识别的键集合与迁移后的默认文档顺序。
var legacyOrder = []legacySection{
	{"header", TypeHeader, "Header", migrateHeader},
	{"summary", TypeLongText, "Professional Summary", migrateSummary},
	{"education", TypeStandardList, "Education", standardMapper("school", "degree")},
	{"experience", TypeDetailedList, "Experience", detailedMapper("company", "role")},
	{"projects", TypeDetailedList, "Projects", detailedMapper("name", "technologies")},
	{"skills", TypeGroupedList, "Technical Skills", migrateGroups},
	{"achievements", TypeStandardList, "Achievements", standardMapper("", "")},
	{"certifications", TypeStandardList, "Certifications", standardMapper("name", "issuer")},
}

// Migrate 把任意历史版本的持久化记录演进到当前 schema。
// 永不失败：无法识别的输入得到空 sections 的聚合，由调用方回落到默认模板。
func Migrate(raw []byte) ResumeData {
	// 版本探测：存在 sections 数组即视为当前 schema，原样返回。
	// 这是启发式判断而非结构校验，轻微过期但形状正确的记录会直接通过。
	var probe struct {
		Sections []json.RawMessage `json:"sections"`
	}
	if err := json.Unmarshal(raw, &probe); err == nil && probe.Sections != nil {
		var data ResumeData
		if err := json.Unmarshal(raw, &data); err == nil {
			return data
		}
		return ResumeData{Sections: []Section{}}
	}

	var legacy map[string]json.RawMessage
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return ResumeData{Sections: []Section{}}
	}

	visible := true
	out := ResumeData{Sections: []Section{}}
	for _, def := range legacyOrder {
		sub, ok := legacy[def.key]
		if !ok || string(sub) == "null" {
			continue
		}
		content, err := def.mapper(sub)
		if err != nil {
			// 单个键迁移失败只丢弃该 Section，不影响其余键。
			continue
		}
		out.Sections = append(out.Sections, Section{
			ID:        def.key,
			Type:      def.typ,
			Title:     def.title,
			IsVisible: &visible,
			Content:   content,
		})
	}
	return out
}

func migrateHeader(raw json.RawMessage) (Content, error) {
	var c HeaderContent
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return c, nil
}

func migrateSummary(raw json.RawMessage) (Content, error) {
	var obj struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return LongTextContent{Text: obj.Text}, nil
	}

	// 最早期的 schema 直接存字符串。
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return nil, err
	}
	return LongTextContent{Text: text}, nil
}

func migrateGroups(raw json.RawMessage) (Content, error) {
	var c GroupedListContent
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if c.Groups == nil {
		return nil, errNoLegacyItems
	}
	return c, nil
}

type migrateError string

func (e migrateError) Error() string { return string(e) }

const errNoLegacyItems = migrateError("legacy content has no items")

// remapItems 把旧字段名改写为 title/subtitle 后返回标准化的 items JSON。
func remapItems(raw json.RawMessage, titleFrom, subtitleFrom string) (json.RawMessage, error) {
	var wrapper struct {
		Items []map[string]any `json:"items"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, err
	}
	if wrapper.Items == nil {
		return nil, errNoLegacyItems
	}

	for _, item := range wrapper.Items {
		if titleFrom != "" {
			if v, ok := item[titleFrom]; ok {
				item["title"] = v
			}
		}
		if subtitleFrom != "" {
			if v, ok := item[subtitleFrom]; ok {
				item["subtitle"] = v
			}
		}
	}
	return json.Marshal(wrapper.Items)
}

func standardMapper(titleFrom, subtitleFrom string) func(json.RawMessage) (Content, error) {
	return func(raw json.RawMessage) (Content, error) {
		items, err := remapItems(raw, titleFrom, subtitleFrom)
		if err != nil {
			return nil, err
		}
		var c StandardListContent
		if err := json.Unmarshal(items, &c.Items); err != nil {
			return nil, err
		}
		return c, nil
	}
}

func detailedMapper(titleFrom, subtitleFrom string) func(json.RawMessage) (Content, error) {
	return func(raw json.RawMessage) (Content, error) {
		items, err := remapItems(raw, titleFrom, subtitleFrom)
		if err != nil {
			return nil, err
		}
		var c DetailedListContent
		if err := json.Unmarshal(items, &c.Items); err != nil {
			return nil, err
		}
		return c, nil
	}
}
