package repository

import (
	"context"
	"fmt"

	"github.com/futig/querysphere-backend/internal/entity"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DocumentMetadataRepository reads metadata of the chunks stored by the ingestion pipeline
type DocumentMetadataRepository interface {
	ListMetadata(ctx context.Context) ([]*entity.DocMetadata, error)
}

var _ DocumentMetadataRepository = &DocumentMetadataPostgres{}

const listDocMetadataQuery = `
SELECT cmetadata
FROM langchain_pg_embedding
WHERE cmetadata IS NOT NULL
`

// DocumentMetadataPostgres implements DocumentMetadataRepository on the pgvector database
type DocumentMetadataPostgres struct {
	db *pgxpool.Pool
}

func NewDocumentMetadataPostgres(db *pgxpool.Pool) *DocumentMetadataPostgres {
	return &DocumentMetadataPostgres{db: db}
}

func (r *DocumentMetadataPostgres) ListMetadata(ctx context.Context) ([]*entity.DocMetadata, error) {
	rows, err := r.db.Query(ctx, listDocMetadataQuery)
	if err != nil {
		return nil, fmt.Errorf("query document metadata: %w", err)
	}

	raws, err := pgx.CollectRows(rows, pgx.RowTo[[]byte])
	if err != nil {
		return nil, fmt.Errorf("collect document metadata: %w", err)
	}

	return decodeMetadata(raws)
}
