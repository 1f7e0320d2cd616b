package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"resumetex/internal/database"
)

// TemplateHandler 负责模板相关的 API。
type TemplateHandler struct {
	db *gorm.DB
}

func NewTemplateHandler(db *gorm.DB) *TemplateHandler {
	return &TemplateHandler{db: db}
}

type createTemplateRequest struct {
	Name string         `json:"name" binding:"required"`
	Data datatypes.JSON `json:"data" binding:"required"`
}

type templateResponse struct {
	ID          uint           `json:"id"`
	Name        string         `json:"name"`
	LastUpdated time.Time      `json:"lastUpdated"`
	Data        datatypes.JSON `json:"data"`
}

func newTemplateResponse(model database.Template) templateResponse {
	return templateResponse{
		ID:          model.ID,
		Name:        model.Name,
		LastUpdated: model.UpdatedAt,
		Data:        model.Content,
	}
}

// POST /v1/templates
// 保存一份命名的 ResumeData 快照。
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var req createTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	model := database.Template{
		Name:    req.Name,
		Content: req.Data,
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&model).Error; err != nil {
		Internal(c, "failed to create template")
		return
	}

	c.JSON(http.StatusCreated, newTemplateResponse(model))
}

// GET /v1/templates
// 列表：按最近更新时间倒序返回全部模板。
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	var templates []database.Template
	if err := h.db.WithContext(c.Request.Context()).
		Order("updated_at DESC").
		Find(&templates).Error; err != nil {
		Internal(c, "failed to list templates")
		return
	}

	items := make([]templateResponse, 0, len(templates))
	for _, t := range templates {
		items = append(items, newTemplateResponse(t))
	}
	c.JSON(http.StatusOK, items)
}

// DELETE /v1/templates/:id
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		BadRequest(c, "invalid template id")
		return
	}

	ctx := c.Request.Context()
	var model database.Template
	if err := h.db.WithContext(ctx).First(&model, uint(id)).Error; err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			NotFound(c, "template not found")
		default:
			Internal(c, "failed to query template")
		}
		return
	}

	if err := h.db.WithContext(ctx).Delete(&model).Error; err != nil {
		Internal(c, "failed to delete template")
		return
	}

	c.Status(http.StatusNoContent)
}
