package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"resumetex/internal/compiler"
	"resumetex/internal/database"
	"resumetex/internal/errcode"
	"resumetex/internal/latex"
	"resumetex/internal/resume"
	"resumetex/internal/storage"
	"resumetex/internal/tasks"
)

// CompileTaskHandler 负责消费草稿编译任务。
type CompileTaskHandler struct {
	db          *gorm.DB
	storage     *storage.Client
	redisClient *redis.Client
	logger      *slog.Logger
	compiler    compiler.Compiler
}

// NewCompileTaskHandler 创建任务处理器。
func NewCompileTaskHandler(
	db *gorm.DB,
	storageClient *storage.Client,
	redisClient *redis.Client,
	logger *slog.Logger,
	comp compiler.Compiler,
) *CompileTaskHandler {
	return &CompileTaskHandler{
		db:          db,
		storage:     storageClient,
		redisClient: redisClient,
		logger:      logger,
		compiler:    comp,
	}
}

// ProcessTask 实现 asynq.Handler。
// 流程：加载草稿 → 迁移 → 生成 LaTeX → 编译 → 上传 → 更新状态 → 通知。
// 编译器不可用不算任务失败，按回落路径通知前端。
func (h *CompileTaskHandler) ProcessTask(ctx context.Context, t *asynq.Task) (retErr error) {
	log := h.logger

	var payload tasks.PDFCompilePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Error("unmarshal task payload failed", slog.Any("error", err))
		return err
	}

	log = log.With(
		slog.String("correlation_id", payload.CorrelationID),
		slog.String("draft_key", payload.DraftKey),
	)
	log.Info("Starting resume compile task...")

	var draft database.Draft
	if err := h.db.WithContext(ctx).Where("key = ?", payload.DraftKey).First(&draft).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("draft not found, skipping task")
			return nil
		}
		log.Error("query draft failed", slog.Any("error", err))
		return err
	}

	defer func() {
		if retErr == nil {
			return
		}
		if !isFinalAsynqAttempt(ctx) {
			return
		}

		notify := CompileNotifyMessage{
			Status:        StatusError,
			DraftKey:      payload.DraftKey,
			CorrelationID: payload.CorrelationID,
			ErrorCode:     errcode.SystemError,
			ErrorMessage:  strings.TrimSpace(retErr.Error()),
		}
		if err := h.publishCompileNotify(ctx, payload.DraftKey, notify); err != nil {
			log.Error("publish compile error notification failed", slog.Any("error", err))
		}
	}()

	data := resume.Migrate(draft.Content)
	source := latex.Assemble(data)

	pdfBytes, err := h.compiler.Compile(ctx, source)
	if err != nil {
		if !errors.Is(err, compiler.ErrUnavailable) {
			log.Error("compile latex source failed", slog.Any("error", err))
			return err
		}

		// 回落：只保留源码状态，通知前端编译器不可用。
		log.Warn("latex compiler unavailable, falling back to source only", slog.Any("error", err))
		if err := h.db.WithContext(ctx).Model(&draft).Update("status", StatusSourceOnly).Error; err != nil {
			log.Error("update draft status failed", slog.Any("error", err))
			return err
		}
		notify := CompileNotifyMessage{
			Status:        StatusSourceOnly,
			DraftKey:      payload.DraftKey,
			CorrelationID: payload.CorrelationID,
			ErrorCode:     errcode.CompilerFallback,
			ErrorMessage:  "LaTeX 编译器不可用，本次仅生成源码",
		}
		if err := h.publishCompileNotify(ctx, payload.DraftKey, notify); err != nil {
			log.Error("publish fallback notification failed", slog.Any("error", err))
			return err
		}
		return nil
	}

	objectName := fmt.Sprintf("generated-resumes/%s/%s.pdf", draft.Key, uuid.NewString())
	pdfReader := bytes.NewReader(pdfBytes)
	if _, err := h.storage.UploadFile(ctx, objectName, pdfReader, int64(len(pdfBytes)), "application/pdf"); err != nil {
		log.Error("upload pdf to minio failed", slog.Any("error", err))
		return err
	}

	previousObjectKey := draft.PdfObjectKey

	update := map[string]any{
		"pdf_object_key": objectName,
		"status":         StatusCompleted,
	}
	if err := h.db.WithContext(ctx).Model(&draft).Updates(update).Error; err != nil {
		log.Error("update draft failed", slog.Any("error", err))
		return err
	}

	// 旧产物已被替换，尽力清理；失败只记录日志，不影响任务结果。
	if previousObjectKey != "" && previousObjectKey != objectName {
		if err := h.storage.DeleteObject(ctx, previousObjectKey); err != nil {
			log.Warn("delete superseded pdf failed",
				slog.String("object_key", previousObjectKey),
				slog.Any("error", err),
			)
		}
	}

	notify := CompileNotifyMessage{
		Status:        StatusCompleted,
		DraftKey:      payload.DraftKey,
		CorrelationID: payload.CorrelationID,
		ErrorCode:     errcode.OK,
		PdfObjectKey:  objectName,
	}
	if err := h.publishCompileNotify(ctx, payload.DraftKey, notify); err != nil {
		log.Error("publish redis notification failed", slog.Any("error", err))
		return err
	}

	log.Info("resume compile task completed successfully.")
	return nil
}

// NotifyChannel 返回某个草稿的通知频道名。
func NotifyChannel(draftKey string) string {
	return fmt.Sprintf("draft_notify:%s", draftKey)
}

func (h *CompileTaskHandler) publishCompileNotify(ctx context.Context, draftKey string, notify CompileNotifyMessage) error {
	data, err := json.Marshal(notify)
	if err != nil {
		return fmt.Errorf("marshal notification payload: %w", err)
	}
	channel := NotifyChannel(draftKey)
	if err := h.redisClient.Publish(ctx, channel, data).Err(); err != nil {
		return fmt.Errorf("publish redis notification to %q: %w", channel, err)
	}
	return nil
}

func isFinalAsynqAttempt(ctx context.Context) bool {
	retryCount, ok1 := asynq.GetRetryCount(ctx)
	maxRetry, ok2 := asynq.GetMaxRetry(ctx)
	if !ok1 || !ok2 {
		return false
	}
	return retryCount >= maxRetry
}
