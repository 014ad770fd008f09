package reference

import (
	"context"
	"fmt"
	"time"

	"github.com/futig/querysphere-backend/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const referencesCacheKey = "doc-references"

// ReferenceUsecase lists the documents available for retrieval
type ReferenceUsecase struct {
	repo   MetadataRepository
	cache  *gocache.Cache
	ttl    time.Duration
	logger *zap.Logger
}

// NewUsecase creates a reference use case. A zero ttl disables caching.
func NewUsecase(
	repo MetadataRepository,
	ttl time.Duration,
	cleanupInterval time.Duration,
	logger *zap.Logger,
) *ReferenceUsecase {
	return &ReferenceUsecase{
		repo:   repo,
		cache:  gocache.New(ttl, cleanupInterval),
		ttl:    ttl,
		logger: logger,
	}
}

// ListReferences returns every distinct source/title pair in first-seen order
func (uc *ReferenceUsecase) ListReferences(ctx context.Context) ([]*entity.SourceAndTitle, error) {
	if uc.ttl > 0 {
		if cached, ok := uc.cache.Get(referencesCacheKey); ok {
			refs := cached.([]*entity.SourceAndTitle)
			ctxzap.Debug(ctx, "doc references served from cache", zap.Int("count", len(refs)))
			return refs, nil
		}
	}

	metadata, err := uc.repo.ListMetadata(ctx)
	if err != nil {
		return nil, fmt.Errorf("list document metadata: %w", err)
	}

	refs := distinctReferences(metadata)

	ctxzap.Info(ctx, "doc references loaded",
		zap.Int("chunk_count", len(metadata)),
		zap.Int("reference_count", len(refs)),
	)

	if uc.ttl > 0 {
		uc.cache.Set(referencesCacheKey, refs, uc.ttl)
	}

	return refs, nil
}

// Invalidate drops cached references, for use after re-ingestion
func (uc *ReferenceUsecase) Invalidate(ctx context.Context) {
	uc.cache.Delete(referencesCacheKey)
	ctxzap.Info(ctx, "doc references cache invalidated")
}

// distinctReferences collapses chunks of the same document, keyed on source and title
func distinctReferences(metadata []*entity.DocMetadata) []*entity.SourceAndTitle {
	seen := make(map[string]struct{}, len(metadata))
	refs := make([]*entity.SourceAndTitle, 0)

	for _, meta := range metadata {
		key := meta.Source + ":" + meta.Title
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		refs = append(refs, &entity.SourceAndTitle{
			Source: meta.Source,
			Title:  meta.Title,
		})
	}

	return refs
}
