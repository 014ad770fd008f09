package entity

import "time"

type ResultFormat string

const (
	FormatMarkdown ResultFormat = "markdown"
	FormatDOCX     ResultFormat = "docx"
	FormatPDF      ResultFormat = "pdf"
)

func (f ResultFormat) IsValid() bool {
	switch f {
	case FormatMarkdown, FormatDOCX, FormatPDF:
		return true
	default:
		return false
	}
}

type SourceDTO struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

type FunctionCallDTO struct {
	Name string `json:"name"`
}

type MessageDTO struct {
	ID           string           `json:"id,omitempty"`
	CreatedAt    *time.Time       `json:"createdAt,omitempty"`
	Role         string           `json:"role"`
	Content      string           `json:"content"`
	RunID        string           `json:"runId,omitempty"`
	Name         string           `json:"name,omitempty"`
	FunctionCall *FunctionCallDTO `json:"function_call,omitempty"`
	Sources      []SourceDTO      `json:"sources,omitempty"`
}

type RenderMessageRequest struct {
	Message     MessageDTO `json:"message"`
	Highlighted *int       `json:"highlighted,omitempty"`
}

type ExportMessageRequest struct {
	Message MessageDTO `json:"message"`
}

type RenderedSourceDTO struct {
	Index       int    `json:"index"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Highlighted bool   `json:"highlighted"`
}

type SegmentDTO struct {
	Type        string     `json:"type"`
	Text        string     `json:"text"`
	SourceIndex *int       `json:"source_index,omitempty"`
	Source      *SourceDTO `json:"source,omitempty"`
	Highlighted bool       `json:"highlighted,omitempty"`
}

type RenderMessageResponse struct {
	ID           string              `json:"id"`
	Role         string              `json:"role"`
	ShowSources  bool                `json:"show_sources"`
	Sources      []RenderedSourceDTO `json:"sources"`
	Highlighted  *int                `json:"highlighted"`
	Segments     []SegmentDTO        `json:"segments"`
	FunctionCall *FunctionCallDTO    `json:"function_call,omitempty"`
}

type ExamplePromptsResponse struct {
	Prompts []string `json:"prompts"`
}
