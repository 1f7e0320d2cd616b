package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// 任务类型常量，确保队列生产者与消费者一致。
const (
	TypePDFCompile = "pdf:compile"
)

// PDFCompilePayload 描述编译一份草稿所需的最小信息。
type PDFCompilePayload struct {
	DraftKey      string `json:"draft_key"`
	CorrelationID string `json:"correlation_id"`
}

// NewPDFCompileTask 构造一个新的草稿编译任务。
func NewPDFCompileTask(draftKey string, correlationID string) (*asynq.Task, error) {
	payload, err := json.Marshal(PDFCompilePayload{
		DraftKey:      draftKey,
		CorrelationID: correlationID,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypePDFCompile, payload), nil
}
