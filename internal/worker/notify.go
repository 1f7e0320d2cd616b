package worker

// 统一的 WebSocket 消息协议（通过 Redis Pub/Sub 转发给前端）。
// 注意：这里的字段名与前端解析保持一致。
type CompileNotifyMessage struct {
	Status        string `json:"status"`
	DraftKey      string `json:"draft_key"`
	CorrelationID string `json:"correlation_id"`
	ErrorCode     int    `json:"error_code"`
	ErrorMessage  string `json:"error_message"`
	PdfObjectKey  string `json:"pdf_object_key,omitempty"`
}

// Draft 编译状态，持久化在 Draft.Status 上。
const (
	StatusCompleted  = "completed"
	StatusSourceOnly = "source_only"
	StatusError      = "error"
)
