package citation

import (
	"fmt"
	"testing"

	"github.com/futig/querysphere-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var abaSources = []entity.Source{
	{URL: "a", Title: "A"},
	{URL: "b", Title: "B"},
	{URL: "a", Title: "A2"},
}

func textSeg(s string) entity.Segment {
	return entity.Segment{Kind: entity.SegmentText, Text: s}
}

func citeSeg(marker string, src entity.Source, idx int, highlighted bool) entity.Segment {
	return entity.Segment{
		Kind: entity.SegmentCitation,
		Text: marker,
		Citation: &entity.Citation{
			Source:      src,
			Index:       idx,
			Highlighted: highlighted,
		},
	}
}

func TestRenderWithCitations_ZeroBased(t *testing.T) {
	d := Deduplicate(abaSources)

	got := RenderWithCitations("X[1]Y[2]Z", d.Filtered, d.IndexMap, NoHighlight())

	want := []entity.Segment{
		textSeg("X"),
		citeSeg("[1]", entity.Source{URL: "b", Title: "B"}, 1, false),
		textSeg("Y"),
		citeSeg("[2]", entity.Source{URL: "a", Title: "A"}, 0, false),
		textSeg("Z"),
	}
	assert.Equal(t, want, got)
}

func TestRenderWithCitations_OneBased(t *testing.T) {
	d := Deduplicate(abaSources)

	got := RenderWithCitations("X[1]Y[2]Z", d.Filtered, d.IndexMap, NoHighlight(), WithMarkerBase(1))

	want := []entity.Segment{
		textSeg("X"),
		citeSeg("[1]", entity.Source{URL: "a", Title: "A"}, 0, false),
		textSeg("Y"),
		citeSeg("[2]", entity.Source{URL: "b", Title: "B"}, 1, false),
		textSeg("Z"),
	}
	assert.Equal(t, want, got)
}

func TestRenderWithCitations_OneBasedZeroMarker(t *testing.T) {
	d := Deduplicate(abaSources)

	got := RenderWithCitations("see [0]", d.Filtered, d.IndexMap, NoHighlight(), WithMarkerBase(1))

	assert.Equal(t, []entity.Segment{textSeg("see [0]")}, got)
}

func TestRenderWithCitations_CaretForms(t *testing.T) {
	d := Deduplicate(abaSources)

	got := RenderWithCitations("p[^0] q[0^] r[^1^]", d.Filtered, d.IndexMap, NoHighlight())

	require.Len(t, got, 6)
	assert.Equal(t, "[^0]", got[1].Text)
	assert.Equal(t, 0, got[1].Citation.Index)
	assert.Equal(t, "[0^]", got[3].Text)
	assert.Equal(t, 0, got[3].Citation.Index)
	assert.Equal(t, "[^1^]", got[5].Text)
	assert.Equal(t, 1, got[5].Citation.Index)
}

func TestRenderWithCitations_UnresolvedMarker(t *testing.T) {
	d := Deduplicate(abaSources)

	got := RenderWithCitations("before [99] after", d.Filtered, d.IndexMap, NoHighlight())

	assert.Equal(t, []entity.Segment{textSeg("before [99] after")}, got)
}

func TestRenderWithCitations_UnresolvedBetweenResolved(t *testing.T) {
	d := Deduplicate(abaSources)

	got := RenderWithCitations("a[0]b[7]c[1]d", d.Filtered, d.IndexMap, NoHighlight())

	want := []entity.Segment{
		textSeg("a"),
		citeSeg("[0]", entity.Source{URL: "a", Title: "A"}, 0, false),
		textSeg("b[7]c"),
		citeSeg("[1]", entity.Source{URL: "b", Title: "B"}, 1, false),
		textSeg("d"),
	}
	assert.Equal(t, want, got)
}

func TestRenderWithCitations_OverflowingDigits(t *testing.T) {
	d := Deduplicate(abaSources)
	content := "huge [99999999999999999999999999] marker"

	got := RenderWithCitations(content, d.Filtered, d.IndexMap, NoHighlight())

	assert.Equal(t, []entity.Segment{textSeg(content)}, got)
}

func TestRenderWithCitations_EmptySources(t *testing.T) {
	d := Deduplicate(nil)

	got := RenderWithCitations("Hello", d.Filtered, d.IndexMap, NoHighlight())

	assert.Empty(t, d.Filtered)
	assert.Equal(t, []entity.Segment{textSeg("Hello")}, got)
}

func TestRenderWithCitations_EmptyContent(t *testing.T) {
	d := Deduplicate(abaSources)

	got := RenderWithCitations("", d.Filtered, d.IndexMap, NoHighlight())

	assert.Empty(t, got)
}

func TestRenderWithCitations_MarkupPassThrough(t *testing.T) {
	d := Deduplicate(abaSources)

	got := RenderWithCitations("<b>bold</b> &amp; [0]<i>x</i>", d.Filtered, d.IndexMap, NoHighlight())

	require.Len(t, got, 3)
	assert.Equal(t, "<b>bold</b> &amp; ", got[0].Text)
	assert.Equal(t, "<i>x</i>", got[2].Text)
}

func TestRenderWithCitations_Highlight(t *testing.T) {
	d := Deduplicate(abaSources)

	got := RenderWithCitations("[0][1][2]", d.Filtered, d.IndexMap, HighlightAt(0))

	require.Len(t, got, 3)
	assert.True(t, got[0].Citation.Highlighted)
	assert.False(t, got[1].Citation.Highlighted)
	assert.True(t, got[2].Citation.Highlighted, "duplicate url shares the canonical highlight")
}

func TestRenderWithCitations_Reconstruct(t *testing.T) {
	d := Deduplicate(abaSources)
	contents := []string{
		"",
		"plain text",
		"X[1]Y[2]Z",
		"[0]",
		"[^0^][^1][2^][3][99]tail",
		"unicode ✓ [1] ünïcødé [0]",
		"[[0]]",
		"[] [^] [a] [1",
	}

	for _, content := range contents {
		t.Run(fmt.Sprintf("%q", content), func(t *testing.T) {
			for _, base := range []int{0, 1} {
				segs := RenderWithCitations(content, d.Filtered, d.IndexMap, NoHighlight(), WithMarkerBase(base))
				assert.Equal(t, content, Reconstruct(segs))
			}
		})
	}
}

func TestRender(t *testing.T) {
	d, segs := Render("A[2]", abaSources, NoHighlight())

	assert.Len(t, d.Filtered, 2)
	require.Len(t, segs, 2)
	assert.Equal(t, entity.Source{URL: "a", Title: "A"}, segs[1].Citation.Source)
}

func TestRelabel(t *testing.T) {
	d := Deduplicate(abaSources)
	segs := RenderWithCitations("X[1]Y[^2^]Z[9]", d.Filtered, d.IndexMap, NoHighlight())

	got := Relabel(segs, func(index int) string {
		return fmt.Sprintf("[%d]", index+1)
	})

	assert.Equal(t, "X[2]Y[1]Z[9]", got)
}
