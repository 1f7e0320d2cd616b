package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"resumetex/internal/api/middleware"
	"resumetex/internal/database"
	"resumetex/internal/resume"
	"resumetex/internal/storage"
	"resumetex/internal/tasks"
)

// DefaultDraftKey 是未显式指定 key 时使用的固定逻辑名。
const DefaultDraftKey = "default"

// DraftHandler 负责处理草稿相关的 API 请求。
type DraftHandler struct {
	db          *gorm.DB
	asynqClient *asynq.Client
	storage     *storage.Client
}

// NewDraftHandler 构造 DraftHandler。
func NewDraftHandler(db *gorm.DB, asynqClient *asynq.Client, storageClient *storage.Client) *DraftHandler {
	return &DraftHandler{
		db:          db,
		asynqClient: asynqClient,
		storage:     storageClient,
	}
}

func draftKeyFromQuery(c *gin.Context) string {
	key := strings.TrimSpace(c.Query("key"))
	if key == "" {
		return DefaultDraftKey
	}
	return key
}

// GetDraft 返回迁移到当前 schema 的草稿；没有草稿时返回内置默认模板。
func (h *DraftHandler) GetDraft(c *gin.Context) {
	key := draftKeyFromQuery(c)

	var draft database.Draft
	err := h.db.WithContext(c.Request.Context()).Where("key = ?", key).First(&draft).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusOK, resume.DefaultResumeData())
		return
	case err != nil:
		Internal(c, "failed to query draft")
		return
	}

	c.JSON(http.StatusOK, resume.Migrate(draft.Content))
}

// SaveDraft 整体替换草稿内容。
func (h *DraftHandler) SaveDraft(c *gin.Context) {
	key := draftKeyFromQuery(c)

	body, err := c.GetRawData()
	if err != nil {
		BadRequest(c, "failed to read request body")
		return
	}

	// 最小校验：必须是能解析成 ResumeData 的 JSON 对象。
	var data resume.ResumeData
	if err := json.Unmarshal(body, &data); err != nil {
		BadRequest(c, "invalid resume payload")
		return
	}

	ctx := c.Request.Context()
	draft := database.Draft{Key: key, Content: datatypes.JSON(body)}
	err = h.db.WithContext(ctx).
		Where("key = ?", key).
		Assign(map[string]any{"content": datatypes.JSON(body)}).
		FirstOrCreate(&draft).Error
	if err != nil {
		Internal(c, "failed to save draft")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Saved successfully"})
}

// CompileDraft 将编译任务入队并立即返回 202。
func (h *DraftHandler) CompileDraft(c *gin.Context) {
	key := draftKeyFromQuery(c)

	var draft database.Draft
	err := h.db.WithContext(c.Request.Context()).Where("key = ?", key).First(&draft).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		NotFound(c, "draft not found")
		return
	case err != nil:
		Internal(c, "failed to query draft")
		return
	}

	correlationID := middleware.GetCorrelationID(c)
	task, err := tasks.NewPDFCompileTask(key, correlationID)
	if err != nil {
		Internal(c, "failed to create task")
		return
	}

	info, err := h.asynqClient.Enqueue(task, asynq.MaxRetry(5))
	if err != nil {
		Internal(c, "failed to enqueue compile task")
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message": "compile request accepted",
		"task_id": info.ID,
	})
}

// GetDownloadLink 生成最近一次编译产物的预签名下载链接。
func (h *DraftHandler) GetDownloadLink(c *gin.Context) {
	key := draftKeyFromQuery(c)

	var draft database.Draft
	err := h.db.WithContext(c.Request.Context()).Where("key = ?", key).First(&draft).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		NotFound(c, "draft not found")
		return
	case err != nil:
		Internal(c, "failed to query draft")
		return
	}

	if draft.PdfObjectKey == "" {
		Conflict(c, "pdf not ready")
		return
	}

	signedURL, err := h.storage.GeneratePresignedURL(c.Request.Context(), draft.PdfObjectKey, 5*time.Minute)
	if err != nil {
		Internal(c, "failed to generate download link")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": signedURL})
}
