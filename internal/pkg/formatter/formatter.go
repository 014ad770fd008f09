package formatter

import (
	"fmt"
	"strings"

	"github.com/futig/querysphere-backend/internal/entity"
)

const (
	defaultTitle   = "Answer"
	sourcesHeading = "Sources"
)

type Formatter interface {
	Format(doc *entity.AnswerDocument) ([]byte, error)
	ContentType() string
	FileExtension() string
}

type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) Create(format entity.ResultFormat) (Formatter, error) {
	switch format {
	case entity.FormatMarkdown:
		return NewMarkdownFormatter(), nil
	case entity.FormatDOCX:
		return NewDOCXFormatter(), nil
	case entity.FormatPDF:
		return NewPDFFormatter(), nil
	default:
		return nil, fmt.Errorf("%w: %q", entity.ErrInvalidFormat, format)
	}
}

func titleOf(doc *entity.AnswerDocument) string {
	if doc.Title == "" {
		return defaultTitle
	}
	return doc.Title
}

// sourceLine renders the numbered entry used by every format's source list.
func sourceLine(i int, src entity.Source) string {
	if src.Title == "" {
		return fmt.Sprintf("[%d] %s", i+1, src.URL)
	}
	return fmt.Sprintf("[%d] %s - %s", i+1, src.Title, src.URL)
}

// paragraphs splits a body on blank lines. Single newlines stay inside a paragraph.
func paragraphs(body string) []string {
	body = strings.ReplaceAll(body, "\r\n", "\n")

	var out []string
	for _, p := range strings.Split(body, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
