package chat

import (
	"context"

	"github.com/futig/querysphere-backend/internal/entity"
)

type ChatUsecase interface {
	RenderMessage(ctx context.Context, msg *entity.Message, highlighted *int) (*entity.RenderedMessage, error)
	ExportMessage(ctx context.Context, msg *entity.Message, format entity.ResultFormat) (*entity.ExportedAnswer, error)
	ExamplePrompts(ctx context.Context) []string
}
