package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlidesIdentical(t *testing.T) {
	change := Slides([]string{"a", "b"}, []string{"a", "b"})
	assert.True(t, change.Empty())
	assert.Equal(t, 2, change.Kept)
	assert.Equal(t, "no slide changes", change.String())
}

func TestSlidesAddedAndRemoved(t *testing.T) {
	change := Slides([]string{"a", "b", "c"}, []string{"a", "c", "d"})
	assert.Equal(t, []string{"b"}, change.Removed)
	assert.Equal(t, []string{"d"}, change.Added)
	assert.Equal(t, 2, change.Kept)
	assert.Equal(t, "+1 -1 slides", change.String())
}

func TestSlidesFromEmpty(t *testing.T) {
	change := Slides(nil, []string{"intro", "outro"})
	assert.Equal(t, []string{"intro", "outro"}, change.Added)
	assert.Empty(t, change.Removed)
	assert.Zero(t, change.Kept)
}

func TestUnifiedIdentical(t *testing.T) {
	assert.Empty(t, Unified([]string{"a"}, []string{"a"}, "before", "after"))
	assert.Empty(t, Unified(nil, nil, "before", "after"))
}

func TestUnifiedMarksChanges(t *testing.T) {
	out := Unified([]string{"a", "b"}, []string{"a", "c"}, "deck.yaml (old)", "deck.yaml")
	require.True(t, strings.HasPrefix(out, "--- deck.yaml (old)\n+++ deck.yaml\n@@ -1,2 +1,2 @@\n"))
	assert.Contains(t, out, "\n a\n")
	assert.Contains(t, out, "\n-b\n")
	assert.Contains(t, out, "\n+c\n")
}

func TestUnifiedTruncatesLongOutput(t *testing.T) {
	var after []string
	for i := 0; i < maxUnifiedLines+10; i++ {
		after = append(after, strings.Repeat("x", i+1))
	}
	out := Unified(nil, after, "a", "b")
	assert.Contains(t, out, "(diff truncated)")
	assert.Len(t, strings.Split(strings.TrimSuffix(out, "\n"), "\n"), maxUnifiedLines+1)
}
