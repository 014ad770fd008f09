package chat

import (
	"github.com/futig/querysphere-backend/internal/entity"
	"github.com/futig/querysphere-backend/internal/pkg/formatter"
)

type MessageValidator interface {
	ValidateMessage(msg *entity.Message) error
	ValidateHighlight(index *int) error
	ValidateFormat(format entity.ResultFormat) error
}

type FormatterFactory interface {
	Create(format entity.ResultFormat) (formatter.Formatter, error)
}
