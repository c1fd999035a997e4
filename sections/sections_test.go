package sections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitTwoSections(t *testing.T) {
	got := Split("# A\nfoo\n## B\nbar")
	require.Len(t, got, 2)
	assert.Equal(t, Section{Level: 1, Title: "A", Body: "foo"}, got[0])
	assert.Equal(t, Section{Level: 2, Title: "B", Body: "bar"}, got[1])
}

func TestSplitEmptyInput(t *testing.T) {
	assert.Empty(t, Split(""))
	assert.Empty(t, Split("   \n\t  \n"))
}

func TestSplitNoHeadings(t *testing.T) {
	got := Split("just a paragraph\nwith two lines")
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Level)
	assert.Equal(t, "Analysis", got[0].Title)
	assert.Equal(t, "just a paragraph\nwith two lines", got[0].Body)
}

func TestSplitNormalizesCRLF(t *testing.T) {
	got := Split("# A\r\nfoo\r\n## B\r\nbar")
	require.Len(t, got, 2)
	assert.Equal(t, "foo", got[0].Body)
	assert.Equal(t, "bar", got[1].Body)
}

func TestSplitStripsClosingMarkers(t *testing.T) {
	got := Split("## Overview ##\nbody text")
	require.Len(t, got, 1)
	assert.Equal(t, "Overview", got[0].Title)
	assert.Equal(t, "body text", got[0].Body)
}

func TestSplitTrimsBodies(t *testing.T) {
	got := Split("# A\n\nfoo\n\n\n# B\n\nbar\n")
	require.Len(t, got, 2)
	assert.Equal(t, "foo", got[0].Body)
	assert.Equal(t, "bar", got[1].Body)
}

func TestSplitLastSectionRunsToEnd(t *testing.T) {
	got := Split("# Only\nline one\nline two")
	require.Len(t, got, 1)
	assert.Equal(t, "line one\nline two", got[0].Body)
}

func TestSplitHeadingWithEmptyBody(t *testing.T) {
	got := Split("# A\n# B\ncontent")
	require.Len(t, got, 2)
	assert.Equal(t, "", got[0].Body)
	assert.Equal(t, "content", got[1].Body)
}

func TestSplitPreservesDepthAsMetadata(t *testing.T) {
	got := Split("### Deep\nx\n###### Deepest\ny")
	require.Len(t, got, 2)
	assert.Equal(t, 3, got[0].Level)
	assert.Equal(t, 6, got[1].Level)
}

func TestSplitKeepsSourceOrder(t *testing.T) {
	got := Split("## Later letters first\nz\n## Alpha\na")
	require.Len(t, got, 2)
	assert.Equal(t, "Later letters first", got[0].Title)
	assert.Equal(t, "Alpha", got[1].Title)
}
