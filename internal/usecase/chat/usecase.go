package chat

import (
	"context"
	"fmt"

	"github.com/futig/querysphere-backend/internal/citation"
	"github.com/futig/querysphere-backend/internal/entity"
	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// ChatUsecase turns chat messages into renderable and exportable answers
type ChatUsecase struct {
	markerBase     int
	examplePrompts []string
	validator      MessageValidator
	formatters     FormatterFactory
	logger         *zap.Logger
}

// NewUsecase creates a new chat use case
func NewUsecase(
	markerBase int,
	examplePrompts []string,
	validator MessageValidator,
	formatters FormatterFactory,
	logger *zap.Logger,
) *ChatUsecase {
	return &ChatUsecase{
		markerBase:     markerBase,
		examplePrompts: examplePrompts,
		validator:      validator,
		formatters:     formatters,
		logger:         logger,
	}
}

// RenderMessage resolves citations of an assistant message. Other roles are
// returned as a single literal segment without sources.
func (uc *ChatUsecase) RenderMessage(
	ctx context.Context,
	msg *entity.Message,
	highlighted *int,
) (*entity.RenderedMessage, error) {
	if err := uc.validator.ValidateMessage(msg); err != nil {
		return nil, err
	}
	if err := uc.validator.ValidateHighlight(highlighted); err != nil {
		return nil, err
	}

	id := msg.ID
	if id == "" {
		id = uuid.New().String()
	}

	if msg.Role != entity.RoleAssistant {
		ctxzap.Debug(ctx, "non-assistant message rendered as plain text", zap.String("role", string(msg.Role)))
		return &entity.RenderedMessage{
			ID:       id,
			Role:     msg.Role,
			Sources:  []entity.Source{},
			Segments: plainSegments(msg.Content),

			FunctionName: msg.FunctionName,
		}, nil
	}

	d := citation.Deduplicate(msg.Sources)
	highlight := citation.HighlightFromPtr(highlighted).Within(len(d.Filtered))
	segments := citation.RenderWithCitations(
		msg.Content,
		d.Filtered,
		d.IndexMap,
		highlight,
		citation.WithMarkerBase(uc.markerBase),
	)

	ctxzap.Debug(ctx, "message rendered",
		zap.Int("source_count", len(msg.Sources)),
		zap.Int("unique_source_count", len(d.Filtered)),
		zap.Int("citation_count", countCitations(segments)),
	)

	return &entity.RenderedMessage{
		ID:          id,
		Role:        msg.Role,
		Sources:     d.Filtered,
		Highlighted: highlight.Ptr(),
		Segments:    segments,

		FunctionName: msg.FunctionName,
	}, nil
}

// ExportMessage renders an answer into a downloadable document with
// citations relabelled to their 1-based position in the source list.
func (uc *ChatUsecase) ExportMessage(
	ctx context.Context,
	msg *entity.Message,
	format entity.ResultFormat,
) (*entity.ExportedAnswer, error) {
	if err := uc.validator.ValidateFormat(format); err != nil {
		return nil, err
	}

	rendered, err := uc.RenderMessage(ctx, msg, nil)
	if err != nil {
		return nil, err
	}

	fmtr, err := uc.formatters.Create(format)
	if err != nil {
		return nil, fmt.Errorf("create formatter: %w", err)
	}

	doc := &entity.AnswerDocument{
		Body: citation.Relabel(rendered.Segments, func(index int) string {
			return fmt.Sprintf("[%d]", index+1)
		}),
		Sources: rendered.Sources,
	}

	content, err := fmtr.Format(doc)
	if err != nil {
		return nil, fmt.Errorf("format answer: %w", err)
	}

	ctxzap.Info(ctx, "answer exported",
		zap.String("format", string(format)),
		zap.Int("size", len(content)),
	)

	return &entity.ExportedAnswer{
		Content:     content,
		ContentType: fmtr.ContentType(),
		FileName:    fmt.Sprintf("answer-%s%s", rendered.ID, fmtr.FileExtension()),
	}, nil
}

// ExamplePrompts returns the starter questions shown before the first message
func (uc *ChatUsecase) ExamplePrompts(_ context.Context) []string {
	prompts := make([]string, len(uc.examplePrompts))
	copy(prompts, uc.examplePrompts)
	return prompts
}

func plainSegments(content string) []entity.Segment {
	if content == "" {
		return []entity.Segment{}
	}
	return []entity.Segment{{Kind: entity.SegmentText, Text: content}}
}

func countCitations(segments []entity.Segment) int {
	n := 0
	for _, seg := range segments {
		if seg.Kind == entity.SegmentCitation {
			n++
		}
	}
	return n
}
