package validator

import (
	"fmt"
	"unicode/utf8"

	"github.com/futig/querysphere-backend/internal/config"
	"github.com/futig/querysphere-backend/internal/entity"
)

// Validator validates chat messages before rendering
type Validator struct {
	cfg config.ChatConfig
}

func NewChatValidator(cfg config.ChatConfig) *Validator {
	return &Validator{cfg: cfg}
}

func (v *Validator) ValidateMessage(msg *entity.Message) error {
	if msg.Role == "" {
		return fmt.Errorf("%w: role", entity.ErrMissingField)
	}
	if !msg.Role.IsValid() {
		return fmt.Errorf("%w: %q (allowed: system, user, assistant, function)", entity.ErrInvalidRole, msg.Role)
	}

	if n := utf8.RuneCountInString(msg.Content); n > v.cfg.MaxContentLength {
		return fmt.Errorf("%w: %d characters (max %d)", entity.ErrContentTooLong, n, v.cfg.MaxContentLength)
	}

	if len(msg.Sources) > v.cfg.MaxSources {
		return fmt.Errorf("%w: maximum %d sources allowed, got %d", entity.ErrTooManySources, v.cfg.MaxSources, len(msg.Sources))
	}

	for i, src := range msg.Sources {
		if src.URL == "" {
			return fmt.Errorf("%w: sources[%d].url", entity.ErrMissingField, i)
		}
	}

	return nil
}

// ValidateHighlight rejects negative indexes. Indexes past the source list are
// accepted and later treated as no highlight.
func (v *Validator) ValidateHighlight(index *int) error {
	if index != nil && *index < 0 {
		return fmt.Errorf("%w: %d", entity.ErrInvalidHighlight, *index)
	}
	return nil
}

func (v *Validator) ValidateFormat(format entity.ResultFormat) error {
	if !format.IsValid() {
		return fmt.Errorf("%w: %q (allowed: markdown, docx, pdf)", entity.ErrInvalidFormat, format)
	}
	return nil
}
