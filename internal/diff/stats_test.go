package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountStats(t *testing.T) {
	t.Run("ignores structural headers and counts content lines", func(t *testing.T) {
		text := "diff a b\n" +
			"index 123..456 100644\n" +
			"--- a\n" +
			"+++ b\n" +
			"@@ -1,2 +1,3 @@\n" +
			"+x\n" +
			"-y\n" +
			" unchanged\n"

		stats := CountStats(text)

		assert.Equal(t, 1, stats.AddedLines)
		assert.Equal(t, 1, stats.RemovedLines)
	})

	t.Run("empty diff counts nothing", func(t *testing.T) {
		stats := CountStats("")

		assert.Equal(t, 0, stats.AddedLines)
		assert.Equal(t, 0, stats.RemovedLines)
	})

	t.Run("every content line counts once", func(t *testing.T) {
		text := "+one\n+two\n-gone\n+three\n"

		stats := CountStats(text)

		assert.Equal(t, 3, stats.AddedLines)
		assert.Equal(t, 1, stats.RemovedLines)
	})
}
