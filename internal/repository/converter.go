package repository

import (
	"encoding/json"
	"fmt"

	"github.com/futig/querysphere-backend/internal/entity"
)

// decodeMetadata converts raw cmetadata JSON documents to entities
func decodeMetadata(raws [][]byte) ([]*entity.DocMetadata, error) {
	result := make([]*entity.DocMetadata, 0, len(raws))
	for i, raw := range raws {
		var meta entity.DocMetadata
		if err := json.Unmarshal(raw, &meta); err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", entity.ErrInvalidMetadata, i, err)
		}
		result = append(result, &meta)
	}
	return result, nil
}
