package reference

import (
	"context"

	"github.com/futig/querysphere-backend/internal/entity"
)

type ReferenceUsecase interface {
	ListReferences(ctx context.Context) ([]*entity.SourceAndTitle, error)
	Invalidate(ctx context.Context)
}
