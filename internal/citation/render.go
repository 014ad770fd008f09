package citation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/futig/querysphere-backend/internal/entity"
)

// markerPattern matches [1], [^1] and [^1^].
var markerPattern = regexp.MustCompile(`\[\^?(\d+)\^?\]`)

type renderConfig struct {
	markerBase int
}

type RenderOpt func(*renderConfig)

// WithMarkerBase sets the number written in the marker for the first source.
// The chat backend numbers documents from 0, which is the default.
func WithMarkerBase(base int) RenderOpt {
	return func(c *renderConfig) {
		c.markerBase = base
	}
}

// RenderWithCitations splits content into literal text and citation segments.
// Markers that do not resolve to a source are left in the surrounding text.
func RenderWithCitations(
	content string,
	filtered []entity.Source,
	indexMap IndexMap,
	highlight Highlight,
	opts ...RenderOpt,
) []entity.Segment {
	cfg := &renderConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	segments := make([]entity.Segment, 0)
	prevIndex := 0

	for _, loc := range markerPattern.FindAllStringSubmatchIndex(content, -1) {
		start, end := loc[0], loc[1]

		resolved, ok := resolveMarker(content[loc[2]:loc[3]], indexMap, cfg.markerBase)
		if !ok || resolved >= len(filtered) {
			continue
		}

		segments = appendText(segments, content[prevIndex:start])
		segments = append(segments, entity.Segment{
			Kind: entity.SegmentCitation,
			Text: content[start:end],
			Citation: &entity.Citation{
				Source:      filtered[resolved],
				Index:       resolved,
				Highlighted: highlight.Is(resolved),
			},
		})
		prevIndex = end
	}

	return appendText(segments, content[prevIndex:])
}

// Render deduplicates sources and renders content against them.
func Render(content string, sources []entity.Source, highlight Highlight, opts ...RenderOpt) (Deduplicated, []entity.Segment) {
	d := Deduplicate(sources)
	return d, RenderWithCitations(content, d.Filtered, d.IndexMap, highlight, opts...)
}

// Reconstruct joins segments back into the content they were rendered from.
func Reconstruct(segments []entity.Segment) string {
	var sb strings.Builder
	for _, seg := range segments {
		sb.WriteString(seg.Text)
	}
	return sb.String()
}

// Relabel joins segments, replacing every citation with the label returned
// for its deduplicated index.
func Relabel(segments []entity.Segment, label func(index int) string) string {
	var sb strings.Builder
	for _, seg := range segments {
		if seg.Kind == entity.SegmentCitation && seg.Citation != nil {
			sb.WriteString(label(seg.Citation.Index))
			continue
		}
		sb.WriteString(seg.Text)
	}
	return sb.String()
}

func resolveMarker(digits string, indexMap IndexMap, base int) (int, bool) {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return indexMap.Resolve(n - base)
}

func appendText(segments []entity.Segment, text string) []entity.Segment {
	if text == "" {
		return segments
	}
	return append(segments, entity.Segment{
		Kind: entity.SegmentText,
		Text: text,
	})
}
