package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tomas-vilte/MatePR/internal/changeset"
	"github.com/Tomas-vilte/MatePR/internal/classify"
	"github.com/Tomas-vilte/MatePR/internal/diff"
	"github.com/Tomas-vilte/MatePR/internal/domain/models"
)

func TestAssemble(t *testing.T) {
	t.Run("staged report end to end", func(t *testing.T) {
		// Arrange
		records := changeset.ParsePorcelainStatus("A  api/routes/users.ts\nM  README.md\n")
		set := changeset.Merge(records, nil)
		diffText := "diff --git a/api/routes/users.ts b/api/routes/users.ts\n" +
			"+const a = 1\n" +
			"+const b = 2\n" +
			"-const gone = 0\n"
		prepared := diff.TruncateByLines(diffText, 2000)
		stats := diff.CountStats(prepared.Text)
		class := classify.Classify(set)

		// Act
		result := Assemble(set, stats, prepared, class, Options{Source: SourceStaged})
		markdown := result.Markdown()

		// Assert
		assert.Contains(t, markdown, "## Summary\n")
		assert.Contains(t, markdown, "- Staged changes in 2 files.\n")
		assert.Contains(t, markdown, "- +2 / -1 lines.\n")
		assert.Contains(t, markdown, "- Risk: Low.\n")
		assert.Contains(t, markdown, "- 1 added, 1 modified.\n")
		assert.Contains(t, markdown, "api/ (1)")
		assert.Contains(t, markdown, "root files (1)")
		assert.NotContains(t, markdown, "## Files changed")
		assert.NotContains(t, markdown, "Diff truncated")
	})

	t.Run("sections keep the fixed order", func(t *testing.T) {
		set := models.ChangeSet{Records: []models.ChangeRecord{
			{Status: models.StatusModified, DisplayPath: "src/a.go", MergeKey: "src/a.go"},
		}}
		class := classify.Classify(set)

		markdown := Assemble(set, models.DiffStats{}, models.PreparedDiff{}, class, Options{}).Markdown()

		titles := []string{
			"## Summary",
			"## Changes",
			"## Release Notes",
			"## Testing",
			"## Risk / Impact",
			"## Rollout / Backout",
		}
		last := -1
		for _, title := range titles {
			idx := strings.Index(markdown, title+"\n")
			require.Greater(t, idx, last, "%s out of order", title)
			last = idx
		}
	})

	t.Run("branch summary names the base and the files section lists records", func(t *testing.T) {
		set := models.ChangeSet{Records: []models.ChangeRecord{
			{Status: models.StatusRenamed, DisplayPath: "old.go -> new.go", MergeKey: "new.go"},
		}}
		class := classify.Classify(set)

		markdown := Assemble(set, models.DiffStats{AddedLines: 3, RemovedLines: 3}, models.PreparedDiff{}, class, Options{
			Source:       SourceBranch,
			BaseBranch:   "main",
			IncludeFiles: true,
		}).Markdown()

		assert.Contains(t, markdown, "- Changes against main in 1 file.\n")
		assert.Contains(t, markdown, "## Files changed\n")
		assert.Contains(t, markdown, "- renamed: old.go -> new.go\n")
	})

	t.Run("truncation adds a summary note", func(t *testing.T) {
		set := models.ChangeSet{Records: []models.ChangeRecord{
			{Status: models.StatusModified, DisplayPath: "big.go", MergeKey: "big.go"},
		}}
		prepared := models.PreparedDiff{Truncated: true, AnalyzedLines: 2000}
		class := classify.Classify(set)

		markdown := Assemble(set, models.DiffStats{}, prepared, class, Options{}).Markdown()

		assert.Contains(t, markdown, "- Diff truncated: only the first 2000 lines were analyzed.\n")
	})

	t.Run("risk section spells out level and areas", func(t *testing.T) {
		set := models.ChangeSet{Records: []models.ChangeRecord{
			{Status: models.StatusModified, DisplayPath: "migrations/001.sql", MergeKey: "migrations/001.sql"},
		}}
		class := classify.Classify(set)

		markdown := Assemble(set, models.DiffStats{}, models.PreparedDiff{}, class, Options{}).Markdown()

		assert.Contains(t, markdown, "- Risk: High (database).\n")
		assert.Contains(t, markdown, "- Level: High.\n")
		assert.Contains(t, markdown, "- Areas: database.\n")
	})

	t.Run("no risk areas reads none detected", func(t *testing.T) {
		set := models.ChangeSet{Records: []models.ChangeRecord{
			{Status: models.StatusModified, DisplayPath: "src/a.go", MergeKey: "src/a.go"},
		}}
		class := classify.Classify(set)

		markdown := Assemble(set, models.DiffStats{}, models.PreparedDiff{}, class, Options{}).Markdown()

		assert.Contains(t, markdown, "- Areas: none detected.\n")
	})

	t.Run("rendered report ends with a blank line", func(t *testing.T) {
		set := models.ChangeSet{}
		class := classify.Classify(set)

		markdown := Assemble(set, models.DiffStats{}, models.PreparedDiff{}, class, Options{}).Markdown()

		assert.True(t, strings.HasSuffix(markdown, "\n"))
		assert.Contains(t, markdown, "- No file changes detected.\n")
	})
}
