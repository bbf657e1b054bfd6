package diff

import (
	"strings"
	"unicode/utf8"

	"github.com/Tomas-vilte/MatePR/internal/domain/models"
)

// TruncateByLines bounds a diff to at most maxLines lines in a single pass.
// The returned text is exactly the consumed prefix, including the terminator
// of the last counted line, or the remainder when the text ends mid-line.
func TruncateByLines(text string, maxLines int) models.PreparedDiff {
	if maxLines <= 0 {
		return models.PreparedDiff{
			Text:          "",
			AnalyzedLines: 0,
			Truncated:     len(text) > 0,
		}
	}

	idx := 0
	lines := 0
	for idx < len(text) && lines < maxLines {
		nl := strings.IndexByte(text[idx:], '\n')
		if nl < 0 {
			// Trailing content without a terminator still counts as a line.
			idx = len(text)
			lines++
			break
		}
		idx += nl + 1
		lines++
	}

	return models.PreparedDiff{
		Text:          text[:idx],
		AnalyzedLines: lines,
		Truncated:     idx < len(text),
	}
}

// TruncateByChars applies the generation path's character budget on top of an
// already line-truncated diff. The cut is a hard one, no line boundary is
// respected, but it backs off to a rune boundary so the outbound payload is
// never left with a split multibyte sequence; the two budgets exist because
// the interactive report and the outbound payload are sized independently.
func TruncateByChars(prepared models.PreparedDiff, maxChars int) models.AIPreparedDiff {
	out := models.AIPreparedDiff{PreparedDiff: prepared}

	if maxChars > 0 && len(prepared.Text) > maxChars {
		cut := maxChars
		for cut > 0 && !utf8.RuneStart(prepared.Text[cut]) {
			cut--
		}
		out.Text = prepared.Text[:cut]
		out.TruncatedByChars = true
		out.Truncated = true
	}

	return out
}
