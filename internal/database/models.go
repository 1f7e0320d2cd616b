package database

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Draft 表示按固定逻辑名保存的简历草稿。
// Content 整体读写（JSONB），不做局部更新。
type Draft struct {
	gorm.Model
	Key          string         `gorm:"uniqueIndex;size:64"`
	Content      datatypes.JSON `gorm:"type:jsonb"`
	PdfObjectKey string         `gorm:"size:512"`
	Status       string         `gorm:"size:32"`
}

// Template 表示一份命名的 ResumeData 快照，可独立保存与删除。
// 列表按 updated_at 倒序返回。
type Template struct {
	gorm.Model
	Name    string         `gorm:"size:255"`
	Content datatypes.JSON `gorm:"type:jsonb"`
}
