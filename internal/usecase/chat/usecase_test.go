package chat

import (
	"bytes"
	"context"
	"testing"

	"github.com/futig/querysphere-backend/internal/config"
	"github.com/futig/querysphere-backend/internal/entity"
	"github.com/futig/querysphere-backend/internal/pkg/formatter"
	"github.com/futig/querysphere-backend/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestUsecase(markerBase int) *ChatUsecase {
	v := validator.NewChatValidator(config.ChatConfig{
		MaxContentLength: 1000,
		MaxSources:       10,
	})
	return NewUsecase(markerBase, []string{"What is LCEL?"}, v, formatter.NewFactory(), zap.NewNop())
}

func assistantMessage(content string) *entity.Message {
	return &entity.Message{
		ID:      "msg-1",
		Role:    entity.RoleAssistant,
		Content: content,
		Sources: []entity.Source{
			{URL: "a", Title: "A"},
			{URL: "b", Title: "B"},
			{URL: "a", Title: "A2"},
		},
	}
}

func TestRenderMessage_Assistant(t *testing.T) {
	uc := newTestUsecase(0)

	got, err := uc.RenderMessage(context.Background(), assistantMessage("X[1]Y[2]Z"), nil)
	require.NoError(t, err)

	assert.Equal(t, "msg-1", got.ID)
	assert.Equal(t, []entity.Source{{URL: "a", Title: "A"}, {URL: "b", Title: "B"}}, got.Sources)
	assert.Nil(t, got.Highlighted)
	require.Len(t, got.Segments, 5)
	assert.Equal(t, 1, got.Segments[1].Citation.Index)
	assert.Equal(t, 0, got.Segments[3].Citation.Index)
}

func TestRenderMessage_OneBasedMarkers(t *testing.T) {
	uc := newTestUsecase(1)

	got, err := uc.RenderMessage(context.Background(), assistantMessage("X[1]Y[2]Z"), nil)
	require.NoError(t, err)

	require.Len(t, got.Segments, 5)
	assert.Equal(t, "A", got.Segments[1].Citation.Source.Title)
	assert.Equal(t, "B", got.Segments[3].Citation.Source.Title)
}

func TestRenderMessage_Highlight(t *testing.T) {
	uc := newTestUsecase(0)

	one := 1
	got, err := uc.RenderMessage(context.Background(), assistantMessage("[0][1]"), &one)
	require.NoError(t, err)

	require.NotNil(t, got.Highlighted)
	assert.Equal(t, 1, *got.Highlighted)
	assert.False(t, got.Segments[0].Citation.Highlighted)
	assert.True(t, got.Segments[1].Citation.Highlighted)
}

func TestRenderMessage_HighlightPastEnd(t *testing.T) {
	uc := newTestUsecase(0)

	five := 5
	got, err := uc.RenderMessage(context.Background(), assistantMessage("[0]"), &five)
	require.NoError(t, err)

	assert.Nil(t, got.Highlighted)
	assert.False(t, got.Segments[0].Citation.Highlighted)
}

func TestRenderMessage_NegativeHighlight(t *testing.T) {
	uc := newTestUsecase(0)

	neg := -1
	_, err := uc.RenderMessage(context.Background(), assistantMessage("[0]"), &neg)
	assert.ErrorIs(t, err, entity.ErrInvalidHighlight)
}

func TestRenderMessage_UserMessageIsPlain(t *testing.T) {
	uc := newTestUsecase(0)
	msg := &entity.Message{
		Role:    entity.RoleUser,
		Content: "What does [0] mean?",
		Sources: []entity.Source{{URL: "a"}},
	}

	got, err := uc.RenderMessage(context.Background(), msg, nil)
	require.NoError(t, err)

	assert.Empty(t, got.Sources)
	assert.Equal(t, []entity.Segment{{Kind: entity.SegmentText, Text: "What does [0] mean?"}}, got.Segments)
	_, err = uuid.Parse(got.ID)
	assert.NoError(t, err, "missing id is generated")
}

func TestRenderMessage_InvalidRole(t *testing.T) {
	uc := newTestUsecase(0)

	_, err := uc.RenderMessage(context.Background(), &entity.Message{Role: "bot"}, nil)
	assert.ErrorIs(t, err, entity.ErrInvalidRole)
	assert.ErrorIs(t, err, entity.ErrInvalidParameter)
}

func TestExportMessage_Markdown(t *testing.T) {
	uc := newTestUsecase(0)

	got, err := uc.ExportMessage(context.Background(), assistantMessage("X[1]Y[2]Z[9]"), entity.FormatMarkdown)
	require.NoError(t, err)

	assert.Equal(t, "answer-msg-1.md", got.FileName)
	assert.Equal(t, "text/markdown; charset=utf-8", got.ContentType)
	assert.Contains(t, string(got.Content), "X[2]Y[1]Z[9]")
	assert.Contains(t, string(got.Content), "1. [A](a)\n2. [B](b)\n")
}

func TestExportMessage_PDF(t *testing.T) {
	uc := newTestUsecase(0)

	got, err := uc.ExportMessage(context.Background(), assistantMessage("answer [0]"), entity.FormatPDF)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(got.Content, []byte("%PDF-")))
}

func TestExportMessage_InvalidFormat(t *testing.T) {
	uc := newTestUsecase(0)

	_, err := uc.ExportMessage(context.Background(), assistantMessage("x"), "html")
	assert.ErrorIs(t, err, entity.ErrInvalidFormat)
}

func TestExamplePrompts_ReturnsCopy(t *testing.T) {
	uc := newTestUsecase(0)

	prompts := uc.ExamplePrompts(context.Background())
	prompts[0] = "changed"

	assert.Equal(t, []string{"What is LCEL?"}, uc.ExamplePrompts(context.Background()))
}
