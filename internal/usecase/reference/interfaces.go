package reference

import (
	"context"

	"github.com/futig/querysphere-backend/internal/entity"
)

type MetadataRepository interface {
	ListMetadata(ctx context.Context) ([]*entity.DocMetadata, error)
}
