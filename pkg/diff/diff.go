// Package diff compares slide id lists across deck reloads.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const maxUnifiedLines = 200

// Change summarises how a deck's slide ids moved between two versions.
type Change struct {
	Added   []string
	Removed []string
	Kept    int
}

// Empty reports whether no slide was added or removed.
func (c Change) Empty() bool {
	return len(c.Added) == 0 && len(c.Removed) == 0
}

func (c Change) String() string {
	if c.Empty() {
		return "no slide changes"
	}
	return fmt.Sprintf("+%d -%d slides", len(c.Added), len(c.Removed))
}

// Slides diffs two ordered id lists line by line. A moved id shows up as
// both removed and added.
func Slides(before, after []string) Change {
	var change Change
	for _, d := range lineDiff(before, after) {
		ids := splitLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			change.Kept += len(ids)
		case diffmatchpatch.DiffDelete:
			change.Removed = append(change.Removed, ids...)
		case diffmatchpatch.DiffInsert:
			change.Added = append(change.Added, ids...)
		}
	}
	return change
}

// Unified renders the id lists as a unified diff body. Identical lists
// render as the empty string. Long output is truncated.
func Unified(before, after []string, beforeLabel, afterLabel string) string {
	diffs := lineDiff(before, after)
	if len(diffs) == 0 || (len(diffs) == 1 && diffs[0].Type == diffmatchpatch.DiffEqual) {
		return ""
	}

	lines := []string{
		"--- " + beforeLabel,
		"+++ " + afterLabel,
		fmt.Sprintf("@@ -1,%d +1,%d @@", len(before), len(after)),
	}
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, id := range splitLines(d.Text) {
			lines = append(lines, prefix+id)
		}
	}

	if len(lines) > maxUnifiedLines {
		lines = append(lines[:maxUnifiedLines], "... (diff truncated) ...")
	}
	return strings.Join(lines, "\n") + "\n"
}

func lineDiff(before, after []string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(joinLines(before), joinLines(after))
	diffs := dmp.DiffMain(a, b, false)
	return dmp.DiffCharsToLines(diffs, lines)
}

func joinLines(ids []string) string {
	if len(ids) == 0 {
		return ""
	}
	return strings.Join(ids, "\n") + "\n"
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
