package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/futig/querysphere-backend/internal/entity"
	"github.com/futig/querysphere-backend/internal/pkg/logger"
	"github.com/futig/querysphere-backend/internal/pkg/response"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Handler struct {
	usecase        ChatUsecase
	maxRequestSize int64
}

func NewHandler(usecase ChatUsecase, maxRequestSize int64) *Handler {
	return &Handler{
		usecase:        usecase,
		maxRequestSize: maxRequestSize,
	}
}

// RenderMessage handles POST /chat/render
func (h *Handler) RenderMessage(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "RenderMessage")

	var req entity.RenderMessageRequest
	if err := h.decode(w, r, &req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	ctx = logger.AddFields(ctx,
		zap.String("message_id", req.Message.ID),
		zap.String("role", req.Message.Role),
	)

	ctxzap.Debug(ctx, "rendering message", zap.Int("source_count", len(req.Message.Sources)))

	rendered, err := h.usecase.RenderMessage(ctx, toMessage(&req.Message), req.Highlighted)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "message rendered successfully", zap.Int("segment_count", len(rendered.Segments)))
	response.Success(w, toRenderResponse(rendered))
}

// ExportMessage handles POST /chat/export?format=markdown|pdf|docx
func (h *Handler) ExportMessage(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ExportMessage")

	formatParam := r.URL.Query().Get("format")
	if formatParam == "" {
		formatParam = string(entity.FormatMarkdown)
	}
	format := entity.ResultFormat(formatParam)
	ctx = logger.AddFields(ctx, zap.String("format", formatParam))

	var req entity.ExportMessageRequest
	if err := h.decode(w, r, &req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	exported, err := h.usecase.ExportMessage(ctx, toMessage(&req.Message), format)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "message exported successfully", zap.String("file_name", exported.FileName))
	response.Attachment(w, exported.ContentType, exported.FileName, exported.Content)
}

// ExamplePrompts handles GET /chat/examples
func (h *Handler) ExamplePrompts(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ExamplePrompts")

	prompts := h.usecase.ExamplePrompts(ctx)

	ctxzap.Debug(ctx, "example prompts listed", zap.Int("count", len(prompts)))
	response.Success(w, &entity.ExamplePromptsResponse{Prompts: prompts})
}

// Helper methods
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func (h *Handler) respondError(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		ctxzap.Error(ctx, message, zap.Error(err))
	} else {
		ctxzap.Error(ctx, message)
	}
	response.Error(w, status, message)
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrMissingField), errors.Is(err, entity.ErrInvalidParameter):
		h.respondError(ctx, w, http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, entity.ErrContentTooLong), errors.Is(err, entity.ErrTooManySources):
		h.respondError(ctx, w, http.StatusRequestEntityTooLarge, err.Error(), err)
	case errors.Is(err, entity.ErrFormatUnavailable):
		h.respondError(ctx, w, http.StatusNotImplemented, err.Error(), err)
	default:
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
