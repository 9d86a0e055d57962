package actionsense

import "errors"

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrEmptyText        = errors.New("text is required")
	ErrTextTooLong      = errors.New("text is too long")
	ErrInvalidPriority  = errors.New("priority must be one of 높음, 보통, 낮음")
	ErrInvalidStatus    = errors.New("status must be one of 진행 예정, 진행 중, 완료")
	ErrInvalidProgress  = errors.New("progress must be between 0 and 100")
	ErrTitleTooLong     = errors.New("title is too long")
	ErrLLMNotConfigured = errors.New("llm extractor is not configured")
)
