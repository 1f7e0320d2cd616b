package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumetex/internal/api/middleware"
	"resumetex/internal/compiler"
	"resumetex/internal/latex"
	"resumetex/internal/resume"
)

// GenerateHandler 负责同步生成接口：输入 ResumeData，输出 LaTeX 源码或 PDF。
type GenerateHandler struct {
	compiler compiler.Compiler
	logger   *slog.Logger
}

func NewGenerateHandler(comp compiler.Compiler, logger *slog.Logger) *GenerateHandler {
	return &GenerateHandler{compiler: comp, logger: logger}
}

type generateRequest struct {
	Data       json.RawMessage `json:"data" binding:"required"`
	SourceOnly bool            `json:"source_only"`
}

type generateResponse struct {
	Source      string `json:"source"`
	PdfProduced bool   `json:"pdf_produced"`
	Message     string `json:"message,omitempty"`
}

// Generate 执行迁移 → 生成 → 可选编译。
// 编译器不可用不是请求失败：回落为返回源码并附带说明。
func (h *GenerateHandler) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	data := resume.Migrate(req.Data)
	source := latex.Assemble(data)

	if req.SourceOnly {
		c.JSON(http.StatusOK, generateResponse{
			Source:      source,
			PdfProduced: false,
		})
		return
	}

	pdf, err := h.compiler.Compile(c.Request.Context(), source)
	if err != nil {
		if errors.Is(err, compiler.ErrUnavailable) {
			h.logger.Warn("latex compiler unavailable, returning source only",
				slog.String("correlation_id", middleware.GetCorrelationID(c)),
				slog.Any("error", err),
			)
			c.JSON(http.StatusOK, generateResponse{
				Source:      source,
				PdfProduced: false,
				Message:     "latex compiler unavailable, returning source only",
			})
			return
		}
		h.logger.Error("compile latex source failed", slog.Any("error", err))
		Internal(c, "failed to generate resume")
		return
	}

	c.Data(http.StatusOK, "application/pdf", pdf)
}
