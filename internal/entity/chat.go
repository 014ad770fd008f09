package entity

import "time"

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleFunction  Role = "function"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant, RoleFunction:
		return true
	default:
		return false
	}
}

// Source is a retrieved document cited by an answer. Identity is the URL.
type Source struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// Message is a single chat turn as produced by the chat backend.
type Message struct {
	ID        string
	CreatedAt *time.Time
	Role      Role
	Content   string
	RunID     string
	Name      string
	Sources   []Source

	// FunctionName is set on function-call turns.
	FunctionName string
}

type SegmentKind string

const (
	SegmentText     SegmentKind = "text"
	SegmentCitation SegmentKind = "citation"
)

// Segment is one piece of a rendered answer. For citation segments Text holds
// the raw marker as it appeared in the content.
type Segment struct {
	Kind     SegmentKind
	Text     string
	Citation *Citation
}

// Citation is an inline reference to a deduplicated source.
type Citation struct {
	Source      Source
	Index       int
	Highlighted bool
}

// RenderedMessage is a message with its citations resolved against the
// deduplicated source list.
type RenderedMessage struct {
	ID          string
	Role        Role
	Sources     []Source
	Highlighted *int
	Segments    []Segment

	FunctionName string
}

// AnswerDocument is the exportable form of a resolved answer.
type AnswerDocument struct {
	Title   string
	Body    string
	Sources []Source
}

type ExportedAnswer struct {
	Content     []byte
	ContentType string
	FileName    string
}
