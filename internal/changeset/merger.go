package changeset

import "github.com/Tomas-vilte/MatePR/internal/domain/models"

// Merge combines change records from two sources into one change set, unique
// by merge key, preserving first-seen order. The first occurrence of a key
// wins: a record from secondary never overrides one already added from
// primary. Callers pass committed-range records as primary and working-tree
// records as secondary so that history-reported statuses take precedence.
func Merge(primary, secondary []models.ChangeRecord) models.ChangeSet {
	seen := make(map[string]struct{}, len(primary)+len(secondary))
	records := make([]models.ChangeRecord, 0, len(primary)+len(secondary))

	add := func(record models.ChangeRecord) {
		if _, exists := seen[record.MergeKey]; exists {
			return
		}
		seen[record.MergeKey] = struct{}{}
		records = append(records, record)
	}

	for _, record := range primary {
		add(record)
	}
	for _, record := range secondary {
		add(record)
	}

	return models.ChangeSet{Records: records}
}
