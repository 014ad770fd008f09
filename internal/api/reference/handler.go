package reference

import (
	"net/http"

	"github.com/futig/querysphere-backend/internal/pkg/logger"
	"github.com/futig/querysphere-backend/internal/pkg/response"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Handler struct {
	usecase ReferenceUsecase
}

func NewHandler(usecase ReferenceUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// ListReferences handles GET /doc-references
func (h *Handler) ListReferences(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListReferences")

	refs, err := h.usecase.ListReferences(ctx)
	if err != nil {
		ctxzap.Error(ctx, "failed to list doc references", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	ctxzap.Info(ctx, "doc references listed successfully", zap.Int("count", len(refs)))
	response.Success(w, refs)
}

// RefreshReferences handles POST /doc-references/refresh. It drops the cached
// list, typically after documents were re-ingested, and returns a fresh one.
func (h *Handler) RefreshReferences(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "RefreshReferences")

	h.usecase.Invalidate(ctx)

	refs, err := h.usecase.ListReferences(ctx)
	if err != nil {
		ctxzap.Error(ctx, "failed to reload doc references", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	ctxzap.Info(ctx, "doc references refreshed", zap.Int("count", len(refs)))
	response.Success(w, refs)
}
