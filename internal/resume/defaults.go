package resume

import "github.com/google/uuid"

// DefaultSettings 返回一份新的默认样式。
func DefaultSettings() Settings {
	return Settings{
		Font:      FontSerif,
		FontSize:  "10pt",
		Margin:    UniformMargin(0.75),
		PaperSize: PaperA4,
	}
}

// DefaultResumeData 返回内置默认模板。
// 每次调用都构造全新值，避免并发请求间共享可变状态。
func DefaultResumeData() ResumeData {
	settings := DefaultSettings()
	visible := true

	return ResumeData{
		Settings: &settings,
		Sections: []Section{
			{
				ID:        "header",
				Type:      TypeHeader,
				Title:     "Header",
				IsVisible: &visible,
				Content: HeaderContent{
					Name:     "First Last",
					Phone:    "123-456-7890",
					Email:    "email@example.com",
					Linkedin: "linkedin.com/in/username",
					Github:   "github.com/username",
				},
			},
			{
				ID:        "summary",
				Type:      TypeLongText,
				Title:     "Professional Summary",
				IsVisible: &visible,
				Content: LongTextContent{
					Text: "Results-oriented software engineer with expertise in full-stack development. " +
						"Proven track record of delivering scalable web applications and optimizing system performance. " +
						"Passionate about learning new technologies and solving complex problems.",
				},
			},
			{
				ID:        "education",
				Type:      TypeStandardList,
				Title:     "Education",
				IsVisible: &visible,
				Content: StandardListContent{
					Items: []StandardListItem{
						{
							ID:        "1",
							Title:     "University Name",
							Subtitle:  "Bachelor of Science in Computer Science",
							Location:  "City, State",
							DateFrom:  "Aug. 2020",
							DateTo:    "May 2024",
							IsVisible: &visible,
						},
					},
				},
			},
			{
				ID:        "experience",
				Type:      TypeDetailedList,
				Title:     "Experience",
				IsVisible: &visible,
				Content: DetailedListContent{
					Items: []DetailedListItem{
						{
							ID:       "1",
							Title:    "Company Name",
							Subtitle: "Software Engineer Intern",
							Location: "City, State",
							DateFrom: "May 2023",
							DateTo:   "Aug. 2023",
							Points: []Point{
								{Text: "Developed a full-stack web application using React and Node.js.", IsVisible: &visible},
								{Text: "Optimized database queries, reducing load times by 30%.", IsVisible: &visible},
								{Text: "Collaborated with a team of 4 engineers to deliver features on time.", IsVisible: &visible},
							},
							IsVisible: &visible,
						},
					},
				},
			},
			{
				ID:        "projects",
				Type:      TypeDetailedList,
				Title:     "Projects",
				IsVisible: &visible,
				Content: DetailedListContent{
					Items: []DetailedListItem{
						{
							ID:       "1",
							Title:    "Project Name",
							Subtitle: "React, Node.js, MongoDB",
							DateFrom: "June 2023",
							DateTo:   "Present",
							Points: []Point{
								{Text: "Designed and built a scalable platform for X.", IsVisible: &visible},
								{Text: "Implemented authentication using JWT and OAuth.", IsVisible: &visible},
							},
							IsVisible: &visible,
						},
					},
				},
			},
			{
				ID:        "skills",
				Type:      TypeGroupedList,
				Title:     "Technical Skills",
				IsVisible: &visible,
				Content: GroupedListContent{
					Groups: []Group{
						{
							ID:       "1",
							Category: "Languages",
							Items: []GroupItem{
								{Name: "Go", IsVisible: &visible},
								{Name: "TypeScript", IsVisible: &visible},
								{Name: "Python", IsVisible: &visible},
							},
							IsVisible: &visible,
						},
						{
							ID:       "2",
							Category: "Frameworks",
							Items: []GroupItem{
								{Name: "React", IsVisible: &visible},
								{Name: "Node.js", IsVisible: &visible},
							},
							IsVisible: &visible,
						},
					},
				},
			},
		},
	}
}

// EmptyContent 返回某个类型的初始内容，供新建 Section 使用。
func EmptyContent(t SectionType) Content {
	visible := true

	switch t {
	case TypeHeader, TypeHeaderName, TypeHeaderContact:
		return HeaderContent{Links: []Link{}}
	case TypeLongText:
		return LongTextContent{}
	case TypeStandardList:
		return StandardListContent{Items: []StandardListItem{{
			ID:        uuid.NewString(),
			IsVisible: &visible,
		}}}
	case TypeDetailedList:
		return DetailedListContent{Items: []DetailedListItem{{
			ID:        uuid.NewString(),
			Points:    []Point{{IsVisible: &visible}},
			IsVisible: &visible,
		}}}
	case TypeGroupedList:
		return GroupedListContent{Groups: []Group{{
			ID:        uuid.NewString(),
			Items:     []GroupItem{{IsVisible: &visible}},
			IsVisible: &visible,
		}}}
	default:
		return RawContent("{}")
	}
}
