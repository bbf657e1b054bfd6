package diff

import (
	"strings"

	"github.com/Tomas-vilte/MatePR/internal/domain/models"
)

// Structural diff lines that never count as content.
var headerPrefixes = []string{"diff ", "index ", "--- ", "+++ ", "@@"}

// CountStats counts added and removed content lines in a (possibly truncated)
// diff. This is a line-prefix heuristic, not a hunk parser: every content line
// inside a hunk counts exactly once.
func CountStats(text string) models.DiffStats {
	var stats models.DiffStats

	for _, line := range strings.Split(text, "\n") {
		if isHeaderLine(line) {
			continue
		}
		if strings.HasPrefix(line, "+") {
			stats.AddedLines++
		} else if strings.HasPrefix(line, "-") {
			stats.RemovedLines++
		}
	}

	return stats
}

func isHeaderLine(line string) bool {
	for _, prefix := range headerPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
