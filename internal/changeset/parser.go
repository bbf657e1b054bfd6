package changeset

import (
	"strings"

	"github.com/Tomas-vilte/MatePR/internal/domain/models"
)

// ParsePorcelainStatus turns `git status --porcelain` output into normalized
// change records. Only the staged column is considered: lines whose index
// status is a space or '?' (unstaged/untracked) are skipped.
func ParsePorcelainStatus(out string) []models.ChangeRecord {
	records := make([]models.ChangeRecord, 0)

	for _, line := range strings.Split(out, "\n") {
		if len(line) < 3 {
			continue
		}

		code := line[0]
		if code == ' ' || code == '?' {
			continue
		}

		status := statusFromCode(code)
		field := strings.TrimSpace(line[3:])

		var record models.ChangeRecord
		var ok bool
		if status == models.StatusRenamed {
			// The path field carries "old -> new"; the arrow never appears
			// in other statuses.
			oldPath, newPath := splitRenameField(field)
			record, ok = newRecord(status, oldPath, newPath)
		} else {
			record, ok = newRecord(status, field, "")
		}

		if ok {
			records = append(records, record)
		}
	}

	return records
}

// ParseNameStatus turns `git diff --name-status` output into normalized change
// records. Fields are separated by runs of tab characters.
func ParseNameStatus(out string) []models.ChangeRecord {
	records := make([]models.ChangeRecord, 0)

	for _, line := range strings.Split(out, "\n") {
		fields := splitTabs(line)
		if len(fields) == 0 {
			continue
		}

		code := byte('M')
		if len(fields[0]) > 0 {
			code = fields[0][0]
		}
		status := statusFromCode(code)

		var record models.ChangeRecord
		var ok bool
		if status == models.StatusRenamed {
			record, ok = newRecord(status, fieldAt(fields, 1), fieldAt(fields, 2))
		} else {
			record, ok = newRecord(status, fieldAt(fields, 1), "")
		}

		if ok {
			records = append(records, record)
		}
	}

	return records
}

// statusFromCode maps a one-character git status code. Copies count as
// additions; anything unknown counts as a modification.
func statusFromCode(code byte) models.ChangeStatus {
	switch code {
	case 'A', 'C':
		return models.StatusAdded
	case 'D':
		return models.StatusDeleted
	case 'R':
		return models.StatusRenamed
	default:
		return models.StatusModified
	}
}

// newRecord builds a record from raw path fields, applying trimming,
// de-quoting and the empty-drop rule. For non-renames only oldPath is used.
func newRecord(status models.ChangeStatus, oldPath, newPath string) (models.ChangeRecord, bool) {
	oldPath = dequote(strings.TrimSpace(oldPath))
	newPath = dequote(strings.TrimSpace(newPath))

	if status == models.StatusRenamed {
		if oldPath == "" && newPath == "" {
			return models.ChangeRecord{}, false
		}
		display := oldPath + " -> " + newPath
		key := newPath
		if key == "" {
			key = oldPath
		}
		if key == "" {
			key = display
		}
		return models.ChangeRecord{Status: status, DisplayPath: display, MergeKey: key}, true
	}

	if oldPath == "" {
		return models.ChangeRecord{}, false
	}
	return models.ChangeRecord{Status: status, DisplayPath: oldPath, MergeKey: oldPath}, true
}

// splitRenameField splits "old -> new" on the first arrow.
func splitRenameField(field string) (string, string) {
	if idx := strings.Index(field, "->"); idx >= 0 {
		return field[:idx], field[idx+2:]
	}
	return field, ""
}

// dequote strips a single pair of surrounding double quotes, as git emits for
// paths with special characters.
func dequote(path string) string {
	if len(path) >= 2 && strings.HasPrefix(path, `"`) && strings.HasSuffix(path, `"`) {
		return path[1 : len(path)-1]
	}
	return path
}

// splitTabs splits on runs of tabs, dropping empty fields.
func splitTabs(line string) []string {
	parts := strings.Split(line, "\t")
	fields := parts[:0]
	for _, part := range parts {
		if part != "" {
			fields = append(fields, part)
		}
	}
	return fields
}

func fieldAt(fields []string, idx int) string {
	if idx < len(fields) {
		return fields[idx]
	}
	return ""
}
